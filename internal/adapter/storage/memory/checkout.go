package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PutCart stores a cart snapshot, replacing any previous one with the same ID.
// Carts belong to the order subsystem; this is how they get into the store.
func (s *Store) PutCart(c domain.CartSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Items = append([]domain.CartItem(nil), c.Items...)
	s.carts[c.ID] = &c
}

// PutOrder stores the order placed for a cart.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.CartID] = &o
}

// Order returns a copy of the order placed for cartID.
func (s *Store) Order(cartID uuid.UUID) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[cartID]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

// Attempts returns copies of every payment attempt recorded for cartID.
func (s *Store) Attempts(cartID uuid.UUID) []domain.PaymentAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PaymentAttempt
	for _, a := range s.attempts {
		if a.CartID == cartID {
			out = append(out, *a)
		}
	}
	return out
}

// CartRepo implements ports.CartRepository.
type CartRepo struct {
	s *Store
}

// Carts returns the store's cart repository.
func (s *Store) Carts() *CartRepo {
	return &CartRepo{s: s}
}

func (r *CartRepo) load(cartID uuid.UUID) *domain.CartSnapshot {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.carts[cartID]
	if !ok {
		return nil
	}
	cp := *c
	cp.Items = append([]domain.CartItem(nil), c.Items...)
	return &cp
}

// GetSnapshot reads a cart outside any unit of work.
func (r *CartRepo) GetSnapshot(_ context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	return r.load(cartID), nil
}

// GetSnapshotTx reads a cart inside the unit.
func (r *CartRepo) GetSnapshotTx(_ context.Context, _ pgx.Tx, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	return r.load(cartID), nil
}

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	s *Store
}

// Orders returns the store's order repository.
func (s *Store) Orders() *OrderRepo {
	return &OrderRepo{s: s}
}

// GetByCartIDForUpdate reads the order placed for a cart inside the unit.
func (r *OrderRepo) GetByCartIDForUpdate(_ context.Context, _ pgx.Tx, cartID uuid.UUID) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[cartID]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

// MarkPaid sets payment status PAID and confirms a PENDING unpaid order.
func (r *OrderRepo) MarkPaid(_ context.Context, _ pgx.Tx, orderID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID != orderID {
			continue
		}
		if o.PaymentStatus != domain.PaymentStatusUnpaid || o.Status != domain.OrderStatusPending {
			break
		}
		prev := *o
		o.PaymentStatus = domain.PaymentStatusPaid
		o.Status = domain.OrderStatusConfirmed
		r.s.onRollback(func() { *o = prev })
		return nil
	}
	return fmt.Errorf("order not payable: %s", orderID)
}

// PaymentAttemptRepo implements ports.PaymentAttemptRepository. A cart may
// have at most one SETTLED attempt.
type PaymentAttemptRepo struct {
	s *Store
}

// PaymentAttempts returns the store's payment attempt repository.
func (s *Store) PaymentAttempts() *PaymentAttemptRepo {
	return &PaymentAttemptRepo{s: s}
}

func (r *PaymentAttemptRepo) settled(cartID uuid.UUID) *domain.PaymentAttempt {
	for _, a := range r.s.attempts {
		if a.CartID == cartID && a.Status == domain.AttemptSettled {
			c := *a
			return &c
		}
	}
	return nil
}

// Create inserts an attempt inside the unit.
func (r *PaymentAttemptRepo) Create(_ context.Context, _ pgx.Tx, a *domain.PaymentAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.Status == domain.AttemptSettled && r.settled(a.CartID) != nil {
		return fmt.Errorf("cart %s already settled: %w", a.CartID, domain.ErrAlreadySettled)
	}
	c := *a
	r.s.attempts = append(r.s.attempts, &c)
	n := len(r.s.attempts) - 1
	r.s.onRollback(func() { r.s.attempts = r.s.attempts[:n] })
	return nil
}

// Record inserts an attempt outside any unit of work.
func (r *PaymentAttemptRepo) Record(_ context.Context, a *domain.PaymentAttempt) error {
	c := *a
	r.s.autocommit(func() {
		r.s.attempts = append(r.s.attempts, &c)
	})
	return nil
}

// GetSettledByCart fetches the settled attempt of a cart, if any.
func (r *PaymentAttemptRepo) GetSettledByCart(_ context.Context, cartID uuid.UUID) (*domain.PaymentAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.settled(cartID), nil
}

// GetSettledByCartTx is GetSettledByCart inside the unit.
func (r *PaymentAttemptRepo) GetSettledByCartTx(_ context.Context, _ pgx.Tx, cartID uuid.UUID) (*domain.PaymentAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.settled(cartID), nil
}

// PutPartner stores a partner agent.
func (s *Store) PutPartner(p domain.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners[p.ID] = &p
}

// PartnerRepo implements ports.PartnerRepository.
type PartnerRepo struct {
	s *Store
}

// Partners returns the store's partner repository.
func (s *Store) Partners() *PartnerRepo {
	return &PartnerRepo{s: s}
}

// GetByID fetches a partner by ID.
func (r *PartnerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.partners[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

// GetByAccessKey fetches a partner by its public access key.
func (r *PartnerRepo) GetByAccessKey(_ context.Context, accessKey string) (*domain.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.partners {
		if p.AccessKey == accessKey {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

// ListCashInPartners lists active partners that accept cash-in codes, by name.
func (r *PartnerRepo) ListCashInPartners(_ context.Context) ([]domain.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Partner{}
	for _, p := range r.s.partners {
		if p.AcceptsCashIn && p.IsActive() {
			out = append(out, *p)
		}
	}
	sortPartners(out)
	return out, nil
}

func sortPartners(ps []domain.Partner) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	s *Store
}

// Audits returns the store's audit repository.
func (s *Store) Audits() *AuditRepo {
	return &AuditRepo{s: s}
}

// Create appends an audit log.
func (r *AuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	c := *log
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, c)
	return nil
}

// AuditLogs returns copies of every stored audit log.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditLog(nil), s.audits...)
}
