package service

import (
	"context"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates the audit trail for money-moving requests.
// With a nil repo entries only reach the log.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log writes entry in the background. The write outlives the request but
// not the audit timeout.
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	rec := *entry
	bg := context.WithoutCancel(ctx)
	go s.write(bg, &rec)
}

func (s *auditService) write(ctx context.Context, entry *domain.AuditLog) {
	evt := s.log.Info().
		Str("action", string(entry.Action)).
		Str("resource", entry.ResourceType+"/"+entry.ResourceID).
		Str("ip", entry.IPAddress)
	if entry.ActorID != nil {
		evt = evt.Stringer("actor_id", entry.ActorID)
	}
	evt.Msg("audit")

	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, auditWriteTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).
			Str("action", string(entry.Action)).
			Stringer("audit_id", entry.ID).
			Msg("audit entry not persisted")
	}
}
