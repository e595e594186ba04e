package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementResult is what a repeated payment request for the same cart returns.
type SettlementResult struct {
	OrderID    uuid.UUID       `json:"order_id"`
	AttemptID  uuid.UUID       `json:"attempt_id"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Totals     Totals          `json:"totals"`
	Replayed   bool            `json:"replayed"`
}

// BuildSettlementKey constructs the idempotency cache key of a checkout.
func BuildSettlementKey(payerID, cartID uuid.UUID) string {
	return "settlement:" + payerID.String() + ":" + cartID.String()
}
