package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTopupCreate  AuditAction = "TOPUP_CREATE"
	AuditActionTopupVerify  AuditAction = "TOPUP_VERIFY"
	AuditActionTopupCancel  AuditAction = "TOPUP_CANCEL"
	AuditActionCashInCode   AuditAction = "CASHIN_CODE"
	AuditActionCashInRedeem AuditAction = "CASHIN_REDEEM"
	AuditActionCashInCancel AuditAction = "CASHIN_CANCEL"
	AuditActionPayment      AuditAction = "PAYMENT"
	AuditActionDeactivate   AuditAction = "WALLET_DEACTIVATE"
)

// AuditLog records a single money-moving request.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
