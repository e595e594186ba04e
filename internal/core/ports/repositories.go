package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	// GetOrCreate inserts a zero-balance wallet if none exists and returns the stored row.
	GetOrCreate(ctx context.Context, ownerID uuid.UUID, currency string) (*domain.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	// EnsureTx creates the wallet inside tx when absent, without locking.
	EnsureTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, currency string) error
	GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
	SetActive(ctx context.Context, ownerID uuid.UUID, active bool) error
}

// LedgerRepository persists the append-only ledger.
type LedgerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	List(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	// SumSigned returns Σ(credits) − Σ(debits) and the entry count of a wallet.
	SumSigned(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error)
}

// LedgerSortField is an allow-listed ORDER BY column.
type LedgerSortField string

const (
	LedgerSortCreatedAt LedgerSortField = "created_at"
	LedgerSortAmount    LedgerSortField = "amount"
)

// LedgerListParams holds filter + pagination for listing ledger entries.
// Only the fields below can be filtered or sorted on.
type LedgerListParams struct {
	OwnerID       uuid.UUID
	Direction     *domain.Direction
	Category      *domain.LedgerCategory
	ReferenceType *domain.ReferenceType
	From          *time.Time
	To            *time.Time
	SortBy        LedgerSortField
	Descending    bool
	Page          int
	PageSize      int
}

// TopupRepository persists top-up requests.
type TopupRepository interface {
	// Create returns domain.ErrCodeTaken when the reference code is held by a live request.
	Create(ctx context.Context, tx pgx.Tx, req *domain.TopupRequest) error
	// ReleaseStaleCode expires a past-deadline PENDING holder of code so it can be reissued.
	ReleaseStaleCode(ctx context.Context, tx pgx.Tx, code string, now time.Time) error
	IsCodeLive(ctx context.Context, code string, now time.Time) (bool, error)
	GetByReference(ctx context.Context, code string) (*domain.TopupRequest, error)
	GetLiveByReferenceForUpdate(ctx context.Context, tx pgx.Tx, code string, now time.Time) (*domain.TopupRequest, error)
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, ledgerEntryID uuid.UUID, at time.Time) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TopupStatus) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ExternalPaymentRepository persists cash-in codes.
type ExternalPaymentRepository interface {
	// Create returns domain.ErrCodeTaken when the code is held by a live payment.
	Create(ctx context.Context, tx pgx.Tx, p *domain.ExternalPayment) error
	ReleaseStaleCode(ctx context.Context, tx pgx.Tx, code string, now time.Time) error
	IsCodeLive(ctx context.Context, code string, now time.Time) (bool, error)
	// GetLatestByCode returns the most recent payment issued under code.
	GetLatestByCode(ctx context.Context, code string) (*domain.ExternalPayment, error)
	GetLiveByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string, now time.Time) (*domain.ExternalPayment, error)
	MarkProcessing(ctx context.Context, tx pgx.Tx, id uuid.UUID, partnerID uuid.UUID) error
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, partnerID uuid.UUID, at time.Time) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ExternalPaymentStatus) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// CartRepository reads cart snapshots owned by the order subsystem.
type CartRepository interface {
	GetSnapshot(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error)
	GetSnapshotTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.CartSnapshot, error)
}

// OrderRepository writes the payment flag of orders owned by the order subsystem.
type OrderRepository interface {
	GetByCartIDForUpdate(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.Order, error)
	MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
}

// PaymentAttemptRepository persists checkout payment attempts.
type PaymentAttemptRepository interface {
	Create(ctx context.Context, tx pgx.Tx, a *domain.PaymentAttempt) error
	// Record stores an attempt outside any unit of work (used for FAILED attempts).
	Record(ctx context.Context, a *domain.PaymentAttempt) error
	GetSettledByCart(ctx context.Context, cartID uuid.UUID) (*domain.PaymentAttempt, error)
	GetSettledByCartTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.PaymentAttempt, error)
}

// PartnerRepository defines persistence operations for partner agents.
type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Partner, error)
	ListCashInPartners(ctx context.Context) ([]domain.Partner, error)
}

// AuditRepository persists audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
