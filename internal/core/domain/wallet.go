package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the stored balance of exactly one user or merchant account.
// Balance is only ever changed by the wallet manager together with a ledger entry.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Direction of a ledger entry relative to the wallet.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// LedgerCategory classifies the business event behind a ledger entry.
type LedgerCategory string

const (
	CategoryTopup       LedgerCategory = "TOPUP"
	CategoryCashIn      LedgerCategory = "CASH_IN"
	CategoryPayment     LedgerCategory = "PAYMENT"
	CategorySale        LedgerCategory = "SALE"
	CategoryPlatformFee LedgerCategory = "PLATFORM_FEE"
	CategoryAdjustment  LedgerCategory = "ADJUSTMENT"
)

// ReferenceType names the record a ledger entry points back to.
type ReferenceType string

const (
	ReferenceTopupRequest    ReferenceType = "TOPUP_REQUEST"
	ReferenceExternalPayment ReferenceType = "EXTERNAL_PAYMENT"
	ReferenceOrder           ReferenceType = "ORDER"
	ReferenceManual          ReferenceType = "MANUAL"
)

// LedgerStatus is always COMPLETED for persisted entries; entries are
// written in the same unit as the balance change or not at all.
type LedgerStatus string

const LedgerStatusCompleted LedgerStatus = "COMPLETED"

// LedgerEntry is an immutable record of one balance-changing event.
type LedgerEntry struct {
	ID            uuid.UUID       `json:"id"`
	WalletID      uuid.UUID       `json:"wallet_id"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	Direction     Direction       `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Category      LedgerCategory  `json:"category"`
	ReferenceID   string          `json:"reference_id"`
	ReferenceType ReferenceType   `json:"reference_type"`
	Status        LedgerStatus    `json:"status"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SignedAmount returns the amount as it contributes to the wallet balance.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Direction == DirectionDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Reference identifies the business record behind a wallet mutation.
type Reference struct {
	ID          string
	Type        ReferenceType
	Category    LedgerCategory
	Description string
}

// Mutation is the outcome of one debit or credit.
type Mutation struct {
	Wallet        *Wallet         `json:"wallet"`
	Entry         *LedgerEntry    `json:"entry"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}
