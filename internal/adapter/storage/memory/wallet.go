package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	s *Store
}

// Wallets returns the store's wallet repository.
func (s *Store) Wallets() *WalletRepo {
	return &WalletRepo{s: s}
}

func newWallet(ownerID uuid.UUID, currency string) *domain.Wallet {
	now := time.Now().UTC()
	return &domain.Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Balance:   decimal.Zero,
		Currency:  currency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func copyWallet(w *domain.Wallet) *domain.Wallet {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

// GetOrCreate inserts a zero-balance wallet unless the owner already has one.
func (r *WalletRepo) GetOrCreate(_ context.Context, ownerID uuid.UUID, currency string) (*domain.Wallet, error) {
	var w *domain.Wallet
	r.s.autocommit(func() {
		if _, ok := r.s.wallets[ownerID]; !ok {
			r.s.wallets[ownerID] = newWallet(ownerID, currency)
		}
		w = copyWallet(r.s.wallets[ownerID])
	})
	return w, nil
}

// GetByOwnerID fetches a wallet by owner.
func (r *WalletRepo) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyWallet(r.s.wallets[ownerID]), nil
}

// EnsureTx creates the owner's wallet inside the unit when absent.
func (r *WalletRepo) EnsureTx(_ context.Context, _ pgx.Tx, ownerID uuid.UUID, currency string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wallets[ownerID]; ok {
		return nil
	}
	r.s.wallets[ownerID] = newWallet(ownerID, currency)
	r.s.onRollback(func() { delete(r.s.wallets, ownerID) })
	return nil
}

// GetByOwnerIDForUpdate reads a wallet inside the unit.
func (r *WalletRepo) GetByOwnerIDForUpdate(_ context.Context, _ pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeLockFailure(); err != nil {
		return nil, err
	}
	return copyWallet(r.s.wallets[ownerID]), nil
}

// UpdateBalance writes a wallet's new balance inside the unit.
func (r *WalletRepo) UpdateBalance(_ context.Context, _ pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.wallets {
		if w.ID != walletID {
			continue
		}
		prev, prevAt := w.Balance, w.UpdatedAt
		w.Balance = balance
		w.UpdatedAt = time.Now().UTC()
		r.s.onRollback(func() { w.Balance, w.UpdatedAt = prev, prevAt })
		return nil
	}
	return fmt.Errorf("wallet not found: %s", walletID)
}

// SetActive flips the active flag.
func (r *WalletRepo) SetActive(_ context.Context, ownerID uuid.UUID, active bool) error {
	var err error
	r.s.autocommit(func() {
		w, ok := r.s.wallets[ownerID]
		if !ok {
			err = fmt.Errorf("wallet not found for owner: %s", ownerID)
			return
		}
		w.IsActive = active
		w.UpdatedAt = time.Now().UTC()
	})
	return err
}

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	s *Store
}

// Ledger returns the store's ledger repository.
func (s *Store) Ledger() *LedgerRepo {
	return &LedgerRepo{s: s}
}

// Create appends a ledger entry inside the unit.
func (r *LedgerRepo) Create(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *e
	r.s.ledger = append(r.s.ledger, &c)
	n := len(r.s.ledger) - 1
	r.s.onRollback(func() { r.s.ledger = r.s.ledger[:n] })
	return nil
}

// List filters, sorts and pages an owner's entries the way the SQL store does.
func (r *LedgerRepo) List(_ context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	r.s.mu.Lock()
	matched := make([]domain.LedgerEntry, 0)
	for _, e := range r.s.ledger {
		if matchesLedger(e, params) {
			matched = append(matched, *e)
		}
	}
	r.s.mu.Unlock()

	less := func(a, b domain.LedgerEntry) bool {
		if params.SortBy == ports.LedgerSortAmount && !a.Amount.Equal(b.Amount) {
			return a.Amount.LessThan(b.Amount)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if params.Descending {
			return less(matched[j], matched[i])
		}
		return less(matched[i], matched[j])
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 || start >= len(matched) {
		return []domain.LedgerEntry{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchesLedger(e *domain.LedgerEntry, p ports.LedgerListParams) bool {
	switch {
	case e.OwnerID != p.OwnerID:
		return false
	case p.Direction != nil && e.Direction != *p.Direction:
		return false
	case p.Category != nil && e.Category != *p.Category:
		return false
	case p.ReferenceType != nil && e.ReferenceType != *p.ReferenceType:
		return false
	case p.From != nil && e.CreatedAt.Before(*p.From):
		return false
	case p.To != nil && e.CreatedAt.After(*p.To):
		return false
	}
	return true
}

// SumSigned returns the signed sum and count of a wallet's entries.
func (r *LedgerRepo) SumSigned(_ context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := decimal.Zero
	var n int64
	for _, e := range r.s.ledger {
		if e.WalletID == walletID {
			sum = sum.Add(e.SignedAmount())
			n++
		}
	}
	return sum, n, nil
}
