package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartnerStatus represents the state of a partner agent account.
type PartnerStatus string

const (
	PartnerStatusActive    PartnerStatus = "ACTIVE"
	PartnerStatusSuspended PartnerStatus = "SUSPENDED"
)

// Partner is an external agent that confirms top-ups or redeems cash-in codes.
// Partners authenticate with an access key and an HMAC secret.
type Partner struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	AccessKey     string        `json:"-"`
	SecretKeyEnc  string        `json:"-"` // Encrypted, never expose
	Status        PartnerStatus `json:"-"`
	AcceptsCashIn bool          `json:"-"`
	Location      string        `json:"location,omitempty"`
	CreatedAt     time.Time     `json:"-"`
}

// IsActive returns true if the partner may call partner endpoints.
func (p *Partner) IsActive() bool {
	return p.Status == PartnerStatusActive
}
