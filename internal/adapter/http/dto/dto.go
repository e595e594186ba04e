package dto

import "github.com/shopspring/decimal"

// Money amounts travel as JSON strings with two decimals ("139.80") or as
// numbers on input; decimal.Decimal accepts both.

// TopupCreateRequest is the request body for opening a top-up request.
type TopupCreateRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Method string           `json:"method" binding:"required,max=32,safe_id"`
}

// VerifyTopupRequest is sent by a partner once the external transfer has arrived.
type VerifyTopupRequest struct {
	ReferenceCode string `json:"reference_code" binding:"required,ref_code"`
}

// CashInCodeRequest asks for a cash-in code covering a cart's checkout total.
// Amount is optional; when given it must equal that total.
type CashInCodeRequest struct {
	CartID string           `json:"cart_id" binding:"required,uuid"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// LedgerQuery holds the allow-listed filters of a ledger listing.
type LedgerQuery struct {
	Direction     string `form:"direction" binding:"omitempty,oneof=CREDIT DEBIT"`
	Category      string `form:"category" binding:"omitempty,oneof=TOPUP CASH_IN PAYMENT SALE PLATFORM_FEE ADJUSTMENT"`
	ReferenceType string `form:"reference_type" binding:"omitempty,oneof=TOPUP_REQUEST EXTERNAL_PAYMENT ORDER MANUAL"`
	From          string `form:"from"` // RFC 3339
	To            string `form:"to"`   // RFC 3339
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=created_at amount"`
	Order         string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	OwnerID  string `json:"owner_id"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// LedgerEntryResponse is one ledger line.
type LedgerEntryResponse struct {
	ID            string `json:"id"`
	Direction     string `json:"direction"`
	Amount        string `json:"amount"`
	BalanceBefore string `json:"balance_before"`
	BalanceAfter  string `json:"balance_after"`
	Category      string `json:"category"`
	ReferenceID   string `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
	Status        string `json:"status"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// TotalsResponse lists every checkout figure.
type TotalsResponse struct {
	Subtotal         string `json:"subtotal"`
	Discount         string `json:"discount"`
	AdjustedSubtotal string `json:"adjusted_subtotal"`
	DeliveryFee      string `json:"delivery_fee"`
	ServiceFee       string `json:"service_fee"`
	Tax              string `json:"tax"`
	Total            string `json:"total"`
}

// SettlementResponse is the outcome of paying a checkout from the wallet.
type SettlementResponse struct {
	OrderID    string         `json:"order_id"`
	AttemptID  string         `json:"attempt_id"`
	NewBalance string         `json:"new_balance"`
	Totals     TotalsResponse `json:"totals"`
	Replayed   bool           `json:"replayed"`
}

// TopupResponse describes a top-up request.
type TopupResponse struct {
	ID            string  `json:"id"`
	ReferenceCode string  `json:"reference_code"`
	Amount        string  `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	Instructions  string  `json:"instructions,omitempty"`
	ExpiresAt     string  `json:"expires_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// PartnerResponse is the public view of a partner agent.
type PartnerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// CashInResponse describes a cash-in code.
type CashInResponse struct {
	PaymentCode            string            `json:"payment_code"`
	CartID                 string            `json:"cart_id"`
	Amount                 string            `json:"amount"`
	WalletBalanceAtRequest string            `json:"wallet_balance_at_request,omitempty"`
	Status                 string            `json:"status"`
	ExpiresAt              string            `json:"expires_at"`
	CompletedAt            *string           `json:"completed_at,omitempty"`
	Partners               []PartnerResponse `json:"partners,omitempty"`
}

// WalletStatusResponse reports whether a wallet accepts mutations.
type WalletStatusResponse struct {
	OwnerID  string `json:"owner_id"`
	IsActive bool   `json:"is_active"`
}

// ReconciliationResponse compares a stored balance with its ledger.
type ReconciliationResponse struct {
	OwnerID   string `json:"owner_id"`
	Balance   string `json:"balance"`
	LedgerSum string `json:"ledger_sum"`
	Entries   int64  `json:"entries"`
	Drift     string `json:"drift"`
	Balanced  bool   `json:"balanced"`
}
