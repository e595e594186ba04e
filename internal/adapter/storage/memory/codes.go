package memory

import (
	"context"
	"fmt"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TopupRepo implements ports.TopupRepository. A reference code may be held
// by at most one PENDING request, mirroring the partial unique index.
type TopupRepo struct {
	s *Store
}

// Topups returns the store's top-up repository.
func (s *Store) Topups() *TopupRepo {
	return &TopupRepo{s: s}
}

func copyTopup(t *domain.TopupRequest) *domain.TopupRequest {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Create inserts a pending request inside the unit.
func (r *TopupRepo) Create(_ context.Context, _ pgx.Tx, t *domain.TopupRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, held := range r.s.topups {
		if held.ReferenceCode == t.ReferenceCode && held.Status == domain.TopupStatusPending {
			return domain.ErrCodeTaken
		}
	}
	r.s.topups = append(r.s.topups, copyTopup(t))
	n := len(r.s.topups) - 1
	r.s.onRollback(func() { r.s.topups = r.s.topups[:n] })
	return nil
}

func (r *TopupRepo) setStatus(t *domain.TopupRequest, status domain.TopupStatus, at time.Time) {
	prev := *t
	t.Status = status
	t.UpdatedAt = at
	r.s.onRollback(func() { *t = prev })
}

// ReleaseStaleCode expires a past-deadline PENDING holder of code.
func (r *TopupRepo) ReleaseStaleCode(_ context.Context, _ pgx.Tx, code string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.topups {
		if t.ReferenceCode == code && t.Status == domain.TopupStatusPending && !t.ExpiresAt.After(now) {
			r.setStatus(t, domain.TopupStatusExpired, now)
		}
	}
	return nil
}

// IsCodeLive reports whether a pending, unexpired request holds code.
func (r *TopupRepo) IsCodeLive(_ context.Context, code string, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.topups {
		if t.ReferenceCode == code && t.IsLive(now) {
			return true, nil
		}
	}
	return false, nil
}

// GetByReference fetches the most recent request issued under code.
func (r *TopupRepo) GetByReference(_ context.Context, code string) (*domain.TopupRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := len(r.s.topups) - 1; i >= 0; i-- {
		if r.s.topups[i].ReferenceCode == code {
			return copyTopup(r.s.topups[i]), nil
		}
	}
	return nil, nil
}

// GetLiveByReferenceForUpdate reads the live request holding code inside the unit.
func (r *TopupRepo) GetLiveByReferenceForUpdate(_ context.Context, _ pgx.Tx, code string, now time.Time) (*domain.TopupRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.topups {
		if t.ReferenceCode == code && t.IsLive(now) {
			return copyTopup(t), nil
		}
	}
	return nil, nil
}

func (r *TopupRepo) byID(id uuid.UUID) *domain.TopupRequest {
	for _, t := range r.s.topups {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// MarkCompleted records the credit that completed a pending request.
func (r *TopupRepo) MarkCompleted(_ context.Context, _ pgx.Tx, id uuid.UUID, ledgerEntryID uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t := r.byID(id)
	if t == nil || t.Status != domain.TopupStatusPending {
		return fmt.Errorf("topup request not pending: %s", id)
	}
	prev := *t
	t.Status = domain.TopupStatusCompleted
	t.CompletedAt = &at
	t.LedgerEntryID = &ledgerEntryID
	t.UpdatedAt = at
	r.s.onRollback(func() { *t = prev })
	return nil
}

// UpdateStatus moves a request to a terminal status.
func (r *TopupRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.TopupStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t := r.byID(id)
	if t == nil {
		return fmt.Errorf("topup request not found: %s", id)
	}
	r.setStatus(t, status, time.Now().UTC())
	return nil
}

// ExpireOverdue marks every past-deadline PENDING request EXPIRED.
func (r *TopupRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	r.s.autocommit(func() {
		for _, t := range r.s.topups {
			if t.Status == domain.TopupStatusPending && !t.ExpiresAt.After(now) {
				t.Status = domain.TopupStatusExpired
				t.UpdatedAt = now
				n++
			}
		}
	})
	return n, nil
}

// ExternalPaymentRepo implements ports.ExternalPaymentRepository. A payment
// code may be held by at most one PENDING or PROCESSING payment.
type ExternalPaymentRepo struct {
	s *Store
}

// ExternalPayments returns the store's cash-in repository.
func (s *Store) ExternalPayments() *ExternalPaymentRepo {
	return &ExternalPaymentRepo{s: s}
}

func copyPayment(p *domain.ExternalPayment) *domain.ExternalPayment {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func holdsCode(p *domain.ExternalPayment) bool {
	return p.Status == domain.ExternalPaymentPending || p.Status == domain.ExternalPaymentProcessing
}

// Create inserts a pending payment inside the unit.
func (r *ExternalPaymentRepo) Create(_ context.Context, _ pgx.Tx, p *domain.ExternalPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, held := range r.s.payments {
		if held.PaymentCode == p.PaymentCode && holdsCode(held) {
			return domain.ErrCodeTaken
		}
	}
	r.s.payments = append(r.s.payments, copyPayment(p))
	n := len(r.s.payments) - 1
	r.s.onRollback(func() { r.s.payments = r.s.payments[:n] })
	return nil
}

func (r *ExternalPaymentRepo) update(p *domain.ExternalPayment, fn func(*domain.ExternalPayment)) {
	prev := *p
	fn(p)
	r.s.onRollback(func() { *p = prev })
}

// ReleaseStaleCode expires past-deadline live holders of code.
func (r *ExternalPaymentRepo) ReleaseStaleCode(_ context.Context, _ pgx.Tx, code string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.PaymentCode == code && holdsCode(p) && !p.ExpiresAt.After(now) {
			r.update(p, func(p *domain.ExternalPayment) {
				p.Status = domain.ExternalPaymentExpired
				p.UpdatedAt = now
			})
		}
	}
	return nil
}

// IsCodeLive reports whether a live, unexpired payment holds code.
func (r *ExternalPaymentRepo) IsCodeLive(_ context.Context, code string, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.PaymentCode == code && p.IsLive(now) {
			return true, nil
		}
	}
	return false, nil
}

// GetLatestByCode fetches the most recent payment issued under code.
func (r *ExternalPaymentRepo) GetLatestByCode(_ context.Context, code string) (*domain.ExternalPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := len(r.s.payments) - 1; i >= 0; i-- {
		if r.s.payments[i].PaymentCode == code {
			return copyPayment(r.s.payments[i]), nil
		}
	}
	return nil, nil
}

// GetLiveByCodeForUpdate reads the live payment holding code inside the unit.
func (r *ExternalPaymentRepo) GetLiveByCodeForUpdate(_ context.Context, _ pgx.Tx, code string, now time.Time) (*domain.ExternalPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.PaymentCode == code && p.IsLive(now) {
			return copyPayment(p), nil
		}
	}
	return nil, nil
}

func (r *ExternalPaymentRepo) byID(id uuid.UUID) *domain.ExternalPayment {
	for _, p := range r.s.payments {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// MarkProcessing records that a partner agent has started handling the code.
func (r *ExternalPaymentRepo) MarkProcessing(_ context.Context, _ pgx.Tx, id uuid.UUID, partnerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.byID(id)
	if p == nil || p.Status != domain.ExternalPaymentPending {
		return fmt.Errorf("external payment not pending: %s", id)
	}
	r.update(p, func(p *domain.ExternalPayment) {
		p.Status = domain.ExternalPaymentProcessing
		p.PartnerID = &partnerID
		p.UpdatedAt = time.Now().UTC()
	})
	return nil
}

// MarkCompleted records the redemption of a live payment.
func (r *ExternalPaymentRepo) MarkCompleted(_ context.Context, _ pgx.Tx, id uuid.UUID, partnerID uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.byID(id)
	if p == nil || !holdsCode(p) {
		return fmt.Errorf("external payment not live: %s", id)
	}
	r.update(p, func(p *domain.ExternalPayment) {
		p.Status = domain.ExternalPaymentCompleted
		p.PartnerID = &partnerID
		p.CompletedAt = &at
		p.UpdatedAt = at
	})
	return nil
}

// UpdateStatus moves a payment to a terminal status.
func (r *ExternalPaymentRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.ExternalPaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.byID(id)
	if p == nil {
		return fmt.Errorf("external payment not found: %s", id)
	}
	r.update(p, func(p *domain.ExternalPayment) {
		p.Status = status
		p.UpdatedAt = time.Now().UTC()
	})
	return nil
}

// ExpireOverdue marks every past-deadline live payment EXPIRED.
func (r *ExternalPaymentRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	r.s.autocommit(func() {
		for _, p := range r.s.payments {
			if holdsCode(p) && !p.ExpiresAt.After(now) {
				p.Status = domain.ExternalPaymentExpired
				p.UpdatedAt = now
				n++
			}
		}
	})
	return n, nil
}

// TopupsOf returns copies of every top-up request of userID.
func (s *Store) TopupsOf(userID uuid.UUID) []domain.TopupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TopupRequest
	for _, t := range s.topups {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out
}
