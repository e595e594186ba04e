package service

import (
	"context"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// eventSink publishes committed events best-effort. A failed publish is
// logged and counted; the committed unit stands.
type eventSink struct {
	publisher ports.EventPublisher
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

func newEventSink(publisher ports.EventPublisher, m *metrics.Metrics, log zerolog.Logger) eventSink {
	return eventSink{publisher: publisher, metrics: m, log: log}
}

func (s eventSink) emit(ctx context.Context, typ domain.EventType, ownerID uuid.UUID, amount decimal.Decimal, reference string, balance *decimal.Decimal) {
	if s.publisher == nil {
		return
	}
	evt := domain.Event{
		ID:         uuid.New(),
		Type:       typ,
		OwnerID:    ownerID,
		Amount:     amount,
		Reference:  reference,
		OccurredAt: time.Now().UTC(),
	}
	if balance != nil {
		b := balance.StringFixed(domain.MoneyScale)
		evt.Balance = &b
	}

	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.metrics.EventPublished(string(typ), "error")
		s.log.Warn().Err(err).Str("event_type", string(typ)).Str("reference", reference).Msg("failed to publish event")
		return
	}
	s.metrics.EventPublished(string(typ), "ok")
}
