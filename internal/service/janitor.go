package service

import (
	"context"
	"fmt"
	"time"

	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const sweepTimeout = 30 * time.Second

// Janitor periodically marks past-deadline top-up requests and cash-in codes
// EXPIRED. Reads already treat them as expired; the sweep only tidies the
// stored status.
type Janitor struct {
	topupRepo   ports.TopupRepository
	paymentRepo ports.ExternalPaymentRepository
	cron        *cron.Cron
	metrics     *metrics.Metrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewJanitor creates a Janitor. Call Start to schedule it.
func NewJanitor(topupRepo ports.TopupRepository, paymentRepo ports.ExternalPaymentRepository, m *metrics.Metrics, log zerolog.Logger) *Janitor {
	return &Janitor{
		topupRepo:   topupRepo,
		paymentRepo: paymentRepo,
		cron:        cron.New(),
		metrics:     m,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Sweep expires overdue records of both kinds once.
func (j *Janitor) Sweep(ctx context.Context) error {
	now := j.now()

	topups, err := j.topupRepo.ExpireOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("expire topups: %w", err)
	}
	j.metrics.Expired("topup", topups)

	codes, err := j.paymentRepo.ExpireOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("expire cash-in codes: %w", err)
	}
	j.metrics.Expired("cashin", codes)

	if topups > 0 || codes > 0 {
		j.log.Info().Int64("topups", topups).Int64("cashin_codes", codes).Msg("expired overdue requests")
	}
	return nil
}

// Start schedules Sweep with a cron spec such as "@every 5m".
func (j *Janitor) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if err := j.Sweep(ctx); err != nil {
			j.log.Error().Err(err).Msg("expiry sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid janitor schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	j.log.Info().Str("schedule", schedule).Msg("expiry janitor started")
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
