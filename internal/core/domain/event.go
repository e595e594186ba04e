package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names a committed wallet-side event.
type EventType string

const (
	EventTopupRequested  EventType = "topup.requested"
	EventTopupCompleted  EventType = "topup.completed"
	EventCashInRequested EventType = "cashin.requested"
	EventCashInCompleted EventType = "cashin.completed"
	EventPaymentSettled  EventType = "payment.settled"
	EventPaymentFailed   EventType = "payment.failed"
)

// Event is published after the unit of work that produced it has committed.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       EventType       `json:"type"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
	Balance    *string         `json:"balance,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
