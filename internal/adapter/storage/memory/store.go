// Package memory is an in-process implementation of every storage port.
// It backs the service and HTTP tests; cmd/api always runs on Postgres.
//
// Units of work are serialized: Begin takes a store-wide lock that Commit or
// Rollback releases, so a unit always sees the effects of every unit that
// committed before it. Writes made inside a unit are undone on Rollback.
// Reads outside a unit are not isolated from a unit in flight.
package memory

import (
	"context"
	"errors"
	"sync"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errLockTimeout = errors.New("canceling statement due to lock timeout")

// Store holds every table.
type Store struct {
	txMu sync.Mutex // held for the life of a unit of work
	mu   sync.Mutex // guards the fields below

	undo []func()

	wallets  map[uuid.UUID]*domain.Wallet // by owner
	ledger   []*domain.LedgerEntry
	topups   []*domain.TopupRequest
	payments []*domain.ExternalPayment
	carts    map[uuid.UUID]*domain.CartSnapshot
	orders   map[uuid.UUID]*domain.Order // by cart
	attempts []*domain.PaymentAttempt
	partners map[uuid.UUID]*domain.Partner
	audits   []domain.AuditLog

	lockFailures int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		wallets:  make(map[uuid.UUID]*domain.Wallet),
		carts:    make(map[uuid.UUID]*domain.CartSnapshot),
		orders:   make(map[uuid.UUID]*domain.Order),
		partners: make(map[uuid.UUID]*domain.Partner),
	}
}

// Begin starts a unit of work. It blocks while another unit is open.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	s.mu.Lock()
	s.undo = nil
	s.mu.Unlock()
	return &Tx{store: s}, nil
}

// FailNextLocks makes the next n wallet row locks fail with a retryable
// store error, the way a lock timeout surfaces from Postgres.
func (s *Store) FailNextLocks(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockFailures = n
}

// onRollback registers fn to run if the open unit rolls back.
// The caller holds s.mu.
func (s *Store) onRollback(fn func()) {
	s.undo = append(s.undo, fn)
}

// autocommit runs fn as a single-statement unit of work.
func (s *Store) autocommit(fn func()) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Store) takeLockFailure() error {
	if s.lockFailures == 0 {
		return nil
	}
	s.lockFailures--
	return apperror.ErrTransientStore(errLockTimeout)
}

// Tx is a unit of work on a Store. Only Commit and Rollback are meaningful;
// repositories ignore the handle because units never overlap.
type Tx struct {
	pgx.Tx
	store *Store
	done  bool
}

// Commit keeps every write of the unit.
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	t.store.undo = nil
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

// Rollback undoes the unit's writes in reverse order. It is a no-op after Commit.
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	for i := len(t.store.undo) - 1; i >= 0; i-- {
		t.store.undo[i]()
	}
	t.store.undo = nil
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memory"
}
