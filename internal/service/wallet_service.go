package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerPageSize = 20
	maxLedgerPageSize     = 100
)

// WalletServiceImpl implements ports.WalletService. It is the only code path
// that changes a wallet balance, and every change writes one ledger entry in
// the same unit of work.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	transactor ports.DBTransactor
	currency   string
	retry      retrier
	metrics    *metrics.Metrics
	log        zerolog.Logger
	now        func() time.Time
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	currency string,
	retry RetryPolicy,
	m *metrics.Metrics,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		transactor: transactor,
		currency:   currency,
		retry:      newRetrier(retry, m, log),
		metrics:    m,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreate returns the owner's wallet, creating an empty one on first access.
func (s *WalletServiceImpl) GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetOrCreate(ctx, ownerID, s.currency)
	if err != nil {
		return nil, storeErr("get or create wallet", err)
	}
	return w, nil
}

// GetBalance returns the current balance and currency of the owner's wallet.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, string, error) {
	w, err := s.GetOrCreate(ctx, ownerID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return w.Balance, w.Currency, nil
}

// Debit removes req.Amount from the owner's wallet in its own unit of work.
func (s *WalletServiceImpl) Debit(ctx context.Context, req ports.MutationRequest) (*domain.Mutation, error) {
	if !domain.IsPositiveMoney(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	return retryValue(ctx, s.retry, "wallet.debit", func() (*domain.Mutation, error) {
		return s.inUnit(ctx, func(tx pgx.Tx) (*domain.Mutation, error) {
			return s.DebitTx(ctx, tx, req)
		})
	})
}

// Credit adds req.Amount to the owner's wallet in its own unit of work.
func (s *WalletServiceImpl) Credit(ctx context.Context, req ports.MutationRequest) (*domain.Mutation, error) {
	if !domain.IsPositiveMoney(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	return retryValue(ctx, s.retry, "wallet.credit", func() (*domain.Mutation, error) {
		return s.inUnit(ctx, func(tx pgx.Tx) (*domain.Mutation, error) {
			return s.CreditTx(ctx, tx, req)
		})
	})
}

// DebitTx debits inside the caller's unit of work. The caller commits.
func (s *WalletServiceImpl) DebitTx(ctx context.Context, tx pgx.Tx, req ports.MutationRequest) (*domain.Mutation, error) {
	return s.observe(domain.DirectionDebit, req, func() (*domain.Mutation, error) {
		return s.mutate(ctx, tx, req, domain.DirectionDebit)
	})
}

// CreditTx credits inside the caller's unit of work. The caller commits.
func (s *WalletServiceImpl) CreditTx(ctx context.Context, tx pgx.Tx, req ports.MutationRequest) (*domain.Mutation, error) {
	return s.observe(domain.DirectionCredit, req, func() (*domain.Mutation, error) {
		return s.mutate(ctx, tx, req, domain.DirectionCredit)
	})
}

// LockTx creates missing wallets and locks them in ascending owner-id order.
func (s *WalletServiceImpl) LockTx(ctx context.Context, tx pgx.Tx, ownerIDs []uuid.UUID) (map[uuid.UUID]*domain.Wallet, error) {
	ordered := make([]uuid.UUID, 0, len(ownerIDs))
	seen := make(map[uuid.UUID]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i][:], ordered[j][:]) < 0
	})

	locked := make(map[uuid.UUID]*domain.Wallet, len(ordered))
	for _, id := range ordered {
		w, err := s.lock(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = w
	}
	return locked, nil
}

// Deactivate marks the owner's wallet inactive. Balance and ledger are kept.
func (s *WalletServiceImpl) Deactivate(ctx context.Context, ownerID uuid.UUID) error {
	w, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return storeErr("get wallet", err)
	}
	if w == nil {
		return apperror.ErrNotFound("wallet")
	}
	if err := s.walletRepo.SetActive(ctx, ownerID, false); err != nil {
		return storeErr("deactivate wallet", err)
	}
	s.log.Info().Str("owner_id", ownerID.String()).Msg("wallet deactivated")
	return nil
}

// ListLedger returns one page of the owner's ledger.
func (s *WalletServiceImpl) ListLedger(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	switch params.SortBy {
	case "":
		params.SortBy = ports.LedgerSortCreatedAt
	case ports.LedgerSortCreatedAt, ports.LedgerSortAmount:
	default:
		return nil, 0, apperror.Validation(fmt.Sprintf("unsupported sort field %q", params.SortBy))
	}
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return nil, 0, apperror.Validation("from must not be after to")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultLedgerPageSize
	}
	if params.PageSize > maxLedgerPageSize {
		params.PageSize = maxLedgerPageSize
	}

	entries, total, err := s.ledgerRepo.List(ctx, params)
	if err != nil {
		return nil, 0, storeErr("list ledger", err)
	}
	return entries, total, nil
}

// Reconcile compares the stored balance with the signed sum of the ledger.
func (s *WalletServiceImpl) Reconcile(ctx context.Context, ownerID uuid.UUID) (*ports.Reconciliation, error) {
	w, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, storeErr("get wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	sum, count, err := s.ledgerRepo.SumSigned(ctx, w.ID)
	if err != nil {
		return nil, storeErr("sum ledger", err)
	}

	drift := w.Balance.Sub(sum)
	rec := &ports.Reconciliation{
		OwnerID:   ownerID,
		Balance:   w.Balance,
		LedgerSum: sum,
		Entries:   count,
		Drift:     drift,
		Balanced:  drift.IsZero(),
	}
	if !rec.Balanced {
		s.log.Error().
			Str("owner_id", ownerID.String()).
			Str("balance", w.Balance.String()).
			Str("ledger_sum", sum.String()).
			Msg("wallet balance drifted from ledger")
	}
	return rec, nil
}

func (s *WalletServiceImpl) inUnit(ctx context.Context, fn func(pgx.Tx) (*domain.Mutation, error)) (*domain.Mutation, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	m, err := fn(dbTx)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}
	return m, nil
}

func (s *WalletServiceImpl) lock(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	if err := s.walletRepo.EnsureTx(ctx, tx, ownerID, s.currency); err != nil {
		return nil, storeErr("ensure wallet", err)
	}
	w, err := s.walletRepo.GetByOwnerIDForUpdate(ctx, tx, ownerID)
	if err != nil {
		return nil, storeErr("lock wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return w, nil
}

func (s *WalletServiceImpl) mutate(ctx context.Context, tx pgx.Tx, req ports.MutationRequest, dir domain.Direction) (*domain.Mutation, error) {
	if !domain.IsPositiveMoney(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.lock(ctx, tx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !wallet.IsActive {
		return nil, apperror.ErrWalletInactive()
	}

	before := wallet.Balance
	var after decimal.Decimal
	switch dir {
	case domain.DirectionDebit:
		if before.LessThan(req.Amount) {
			return nil, apperror.ErrInsufficientFunds().WithDetails(map[string]any{
				"balance":  before.StringFixed(domain.MoneyScale),
				"required": req.Amount.StringFixed(domain.MoneyScale),
			})
		}
		after = before.Sub(req.Amount)
	default:
		after = before.Add(req.Amount)
	}

	if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.ID, after); err != nil {
		return nil, storeErr("update balance", err)
	}

	now := s.now()
	entry := &domain.LedgerEntry{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		OwnerID:       wallet.OwnerID,
		Direction:     dir,
		Amount:        req.Amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Category:      req.Reference.Category,
		ReferenceID:   req.Reference.ID,
		ReferenceType: req.Reference.Type,
		Status:        domain.LedgerStatusCompleted,
		Description:   req.Reference.Description,
		CreatedAt:     now,
	}
	if err := s.ledgerRepo.Create(ctx, tx, entry); err != nil {
		return nil, storeErr("create ledger entry", err)
	}

	wallet.Balance = after
	wallet.UpdatedAt = now

	s.log.Info().
		Str("owner_id", req.OwnerID.String()).
		Str("direction", string(dir)).
		Str("amount", req.Amount.StringFixed(domain.MoneyScale)).
		Str("balance_after", after.StringFixed(domain.MoneyScale)).
		Str("reference", req.Reference.ID).
		Msg("wallet mutated")

	return &domain.Mutation{
		Wallet:        wallet,
		Entry:         entry,
		BalanceBefore: before,
		BalanceAfter:  after,
	}, nil
}

func (s *WalletServiceImpl) observe(dir domain.Direction, req ports.MutationRequest, fn func() (*domain.Mutation, error)) (*domain.Mutation, error) {
	m, err := fn()
	outcome := "ok"
	if err != nil {
		outcome = errorCode(err)
	}
	s.metrics.ObserveMutation(string(dir), string(req.Reference.Category), outcome)
	return m, err
}
