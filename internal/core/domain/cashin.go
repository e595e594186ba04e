package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExternalPaymentStatus is the lifecycle state of a cash-in code.
type ExternalPaymentStatus string

const (
	ExternalPaymentPending    ExternalPaymentStatus = "PENDING"
	ExternalPaymentProcessing ExternalPaymentStatus = "PROCESSING"
	ExternalPaymentCompleted  ExternalPaymentStatus = "COMPLETED"
	ExternalPaymentExpired    ExternalPaymentStatus = "EXPIRED"
	ExternalPaymentCancelled  ExternalPaymentStatus = "CANCELLED"
)

// ExternalPayment is a short-lived cash-in code presented at a partner agent.
type ExternalPayment struct {
	ID                     uuid.UUID             `json:"id"`
	PaymentCode            string                `json:"payment_code"`
	UserID                 uuid.UUID             `json:"user_id"`
	CartID                 uuid.UUID             `json:"cart_id"`
	Amount                 decimal.Decimal       `json:"amount"`
	WalletBalanceAtRequest decimal.Decimal       `json:"wallet_balance_at_request"`
	Status                 ExternalPaymentStatus `json:"status"`
	PartnerID              *uuid.UUID            `json:"partner_id,omitempty"`
	ExpiresAt              time.Time             `json:"expires_at"`
	CompletedAt            *time.Time            `json:"completed_at,omitempty"`
	CreatedAt              time.Time             `json:"created_at"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

// IsLive reports whether the code still holds its value in the live namespace.
func (p *ExternalPayment) IsLive(now time.Time) bool {
	return (p.Status == ExternalPaymentPending || p.Status == ExternalPaymentProcessing) &&
		p.ExpiresAt.After(now)
}

// EffectiveStatus reports live-status payments past their deadline as EXPIRED.
func (p *ExternalPayment) EffectiveStatus(now time.Time) ExternalPaymentStatus {
	if (p.Status == ExternalPaymentPending || p.Status == ExternalPaymentProcessing) &&
		!p.ExpiresAt.After(now) {
		return ExternalPaymentExpired
	}
	return p.Status
}
