package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopupStatus is the lifecycle state of a top-up request.
type TopupStatus string

const (
	TopupStatusPending   TopupStatus = "PENDING"
	TopupStatusCompleted TopupStatus = "COMPLETED"
	TopupStatusExpired   TopupStatus = "EXPIRED"
	TopupStatusCancelled TopupStatus = "CANCELLED"
)

// TopupRequest is a pending external transfer awaiting confirmation by reference code.
type TopupRequest struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	ReferenceCode string          `json:"reference_code"`
	Status        TopupStatus     `json:"status"`
	ExpiresAt     time.Time       `json:"expires_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	LedgerEntryID *uuid.UUID      `json:"ledger_entry_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsLive reports whether the request can still be verified at now.
func (t *TopupRequest) IsLive(now time.Time) bool {
	return t.Status == TopupStatusPending && t.ExpiresAt.After(now)
}

// EffectiveStatus reports PENDING requests past their deadline as EXPIRED.
func (t *TopupRequest) EffectiveStatus(now time.Time) TopupStatus {
	if t.Status == TopupStatusPending && !t.ExpiresAt.After(now) {
		return TopupStatusExpired
	}
	return t.Status
}
