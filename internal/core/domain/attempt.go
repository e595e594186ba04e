package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttemptStatus tracks a checkout payment through Initiated, Authorized and
// then Settled or Failed.
type AttemptStatus string

const (
	AttemptInitiated  AttemptStatus = "INITIATED"
	AttemptAuthorized AttemptStatus = "AUTHORIZED"
	AttemptSettled    AttemptStatus = "SETTLED"
	AttemptFailed     AttemptStatus = "FAILED"
)

// IsTerminal returns true if the attempt is in a final state.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptSettled || s == AttemptFailed
}

// PaymentAttempt records the figures a checkout was settled (or refused) with.
// The stored totals are the calculator output and serve as the audit subtotal.
type PaymentAttempt struct {
	ID                uuid.UUID       `json:"id"`
	CartID            uuid.UUID       `json:"cart_id"`
	OrderID           uuid.UUID       `json:"order_id"`
	PayerID           uuid.UUID       `json:"payer_id"`
	PayeeID           uuid.UUID       `json:"payee_id"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Discount          decimal.Decimal `json:"discount"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	ServiceFee        decimal.Decimal `json:"service_fee"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	MerchantShare     decimal.Decimal `json:"merchant_share"`
	PlatformShare     decimal.Decimal `json:"platform_share"`
	PayerBalanceAfter decimal.Decimal `json:"payer_balance_after"`
	Status            AttemptStatus   `json:"status"`
	FailureCode       *string         `json:"failure_code,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ApplyTotals copies the calculator figures onto the attempt.
func (a *PaymentAttempt) ApplyTotals(t Totals, merchantShare, platformShare decimal.Decimal) {
	a.Subtotal = t.Subtotal
	a.Discount = t.Discount
	a.DeliveryFee = t.DeliveryFee
	a.ServiceFee = t.ServiceFee
	a.Tax = t.Tax
	a.Total = t.Total
	a.MerchantShare = merchantShare
	a.PlatformShare = platformShare
}
