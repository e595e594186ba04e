package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/internal/core/ports/mocks"
	"delivery-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalEq matches a decimal.Decimal by value, ignoring its scale.
type decimalEq struct{ want decimal.Decimal }

func decEq(s string) gomock.Matcher { return decimalEq{want: dec(s)} }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "equals " + m.want.String() }

type walletTestDeps struct {
	svc        *WalletServiceImpl
	walletRepo *mocks.MockWalletRepository
	ledgerRepo *mocks.MockLedgerRepository
	transactor *mocks.MockDBTransactor
}

func setupWalletService(t *testing.T, policy RetryPolicy) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewWalletService(d.walletRepo, d.ledgerRepo, d.transactor, "USD", policy, nil, zerolog.Nop())
	return d
}

func activeWallet(ownerID uuid.UUID, balance string) *domain.Wallet {
	return &domain.Wallet{ID: uuid.New(), OwnerID: ownerID, Balance: dec(balance), Currency: "USD", IsActive: true}
}

func debitRequest(ownerID uuid.UUID, amount string) ports.MutationRequest {
	return ports.MutationRequest{
		OwnerID: ownerID,
		Amount:  dec(amount),
		Reference: domain.Reference{
			ID:       "ORDER-001",
			Type:     domain.ReferenceOrder,
			Category: domain.CategoryPayment,
		},
	}
}

// ==================== Debit / Credit ====================

func TestWalletService_Debit_Success(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	w := activeWallet(ownerID, "2000.75")
	tx := &mockTx{}

	var written *domain.LedgerEntry
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil)
	d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decEq("1750.25")).Return(nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			written = e
			return nil
		})

	m, err := d.svc.Debit(ctx, debitRequest(ownerID, "250.50"))
	require.NoError(t, err)
	assert.Equal(t, "2000.75", m.BalanceBefore.StringFixed(2))
	assert.Equal(t, "1750.25", m.BalanceAfter.StringFixed(2))

	require.NotNil(t, written)
	assert.Equal(t, domain.DirectionDebit, written.Direction)
	assert.Equal(t, "250.50", written.Amount.StringFixed(2))
	assert.Equal(t, "2000.75", written.BalanceBefore.StringFixed(2))
	assert.Equal(t, "1750.25", written.BalanceAfter.StringFixed(2))
	assert.Equal(t, domain.LedgerStatusCompleted, written.Status)
	assert.Equal(t, "ORDER-001", written.ReferenceID)
	assert.Equal(t, w.ID, written.WalletID)
}

func TestWalletService_Credit_Success(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	w := activeWallet(ownerID, "0")
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil)
	d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decEq("100")).Return(nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	m, err := d.svc.Credit(ctx, debitRequest(ownerID, "100"))
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionCredit, m.Entry.Direction)
	assert.Equal(t, "100.00", m.Wallet.Balance.StringFixed(2))
}

func TestWalletService_Debit_InvalidAmount(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})

	for _, amount := range []string{"0", "-5", "1.005"} {
		_, err := d.svc.Debit(context.Background(), debitRequest(uuid.New(), amount))
		require.Error(t, err, amount)
		assert.True(t, apperror.HasCode(err, "PAY_002"), amount)
	}
}

func TestWalletService_Debit_InsufficientFunds(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil)
	d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(activeWallet(ownerID, "10"), nil)
	// No UpdateBalance, no ledger entry.

	_, err := d.svc.Debit(ctx, debitRequest(ownerID, "10.01"))
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_001", appErr.Code)
	assert.Equal(t, "10.00", appErr.Details["balance"])
	assert.Equal(t, "10.01", appErr.Details["required"])
}

func TestWalletService_Debit_WalletInactive(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}
	w := activeWallet(ownerID, "100")
	w.IsActive = false

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil)
	d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(w, nil)

	_, err := d.svc.Debit(ctx, debitRequest(ownerID, "1"))
	assert.True(t, apperror.HasCode(err, "WAL_001"))
}

func TestWalletService_Debit_LedgerFailureIsInternal(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	w := activeWallet(ownerID, "100")
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil)
	d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decEq("99")).Return(nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.Debit(ctx, debitRequest(ownerID, "1"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "SYS_001"))
	assert.Contains(t, err.Error(), "disk full")
}

func TestWalletService_Debit_RetriesTransientFailure(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{InitialInterval: time.Millisecond, MaxElapsed: time.Second})
	ctx := context.Background()
	ownerID := uuid.New()
	w := activeWallet(ownerID, "100")
	tx := &mockTx{}

	gomock.InOrder(
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil),
		d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil),
		d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).
			Return(nil, apperror.ErrTransientStore(errors.New("lock timeout"))),
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil),
		d.walletRepo.EXPECT().EnsureTx(ctx, tx, ownerID, "USD").Return(nil),
		d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, ownerID).Return(w, nil),
		d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decEq("60")).Return(nil),
		d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil),
	)

	m, err := d.svc.Debit(ctx, debitRequest(ownerID, "40"))
	require.NoError(t, err)
	assert.Equal(t, "60.00", m.BalanceAfter.StringFixed(2))
}

func TestWalletService_Debit_BeginFailure(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()

	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("pool closed"))

	_, err := d.svc.Debit(ctx, debitRequest(uuid.New(), "1"))
	assert.True(t, apperror.HasCode(err, "SYS_001"))
}

// ==================== LockTx ====================

func TestWalletService_LockTx_AscendingOrder(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	tx := &mockTx{}

	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	mid := uuid.MustParse("7fffffff-0000-0000-0000-000000000000")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	gomock.InOrder(
		d.walletRepo.EXPECT().EnsureTx(ctx, tx, low, "USD").Return(nil),
		d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, low).Return(activeWallet(low, "0"), nil),
		d.walletRepo.EXPECT().EnsureTx(ctx, tx, mid, "USD").Return(nil),
		d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, mid).Return(activeWallet(mid, "0"), nil),
		d.walletRepo.EXPECT().EnsureTx(ctx, tx, high, "USD").Return(nil),
		d.walletRepo.EXPECT().GetByOwnerIDForUpdate(ctx, tx, high).Return(activeWallet(high, "0"), nil),
	)

	locked, err := d.svc.LockTx(ctx, tx, []uuid.UUID{high, low, mid, low})
	require.NoError(t, err)
	assert.Len(t, locked, 3)
	assert.Equal(t, mid, locked[mid].OwnerID)
}

// ==================== Reads ====================

func TestWalletService_GetBalance_CreatesWallet(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()

	d.walletRepo.EXPECT().GetOrCreate(ctx, ownerID, "USD").Return(activeWallet(ownerID, "0"), nil)

	balance, currency, err := d.svc.GetBalance(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.Equal(t, "USD", currency)
}

func TestWalletService_Deactivate(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()

	d.walletRepo.EXPECT().GetByOwnerID(ctx, ownerID).Return(activeWallet(ownerID, "5"), nil)
	d.walletRepo.EXPECT().SetActive(ctx, ownerID, false).Return(nil)
	require.NoError(t, d.svc.Deactivate(ctx, ownerID))

	missing := uuid.New()
	d.walletRepo.EXPECT().GetByOwnerID(ctx, missing).Return(nil, nil)
	assert.True(t, apperror.HasCode(d.svc.Deactivate(ctx, missing), "PAY_004"))
}

func TestWalletService_ListLedger_Defaults(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()

	d.ledgerRepo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, maxLedgerPageSize, p.PageSize)
			assert.Equal(t, ports.LedgerSortCreatedAt, p.SortBy)
			return []domain.LedgerEntry{{ID: uuid.New()}}, 1, nil
		})

	entries, total, err := d.svc.ListLedger(ctx, ports.LedgerListParams{OwnerID: ownerID, PageSize: 1000})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(1), total)
}

func TestWalletService_ListLedger_RejectsUnknownSort(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})

	_, _, err := d.svc.ListLedger(context.Background(), ports.LedgerListParams{SortBy: "balance; DROP TABLE wallets"})
	assert.True(t, apperror.HasCode(err, "VAL_001"))
}

func TestWalletService_Reconcile(t *testing.T) {
	d := setupWalletService(t, RetryPolicy{})
	ctx := context.Background()
	ownerID := uuid.New()
	w := activeWallet(ownerID, "1750.25")

	d.walletRepo.EXPECT().GetByOwnerID(ctx, ownerID).Return(w, nil).Times(2)
	d.ledgerRepo.EXPECT().SumSigned(ctx, w.ID).Return(dec("1750.25"), int64(2), nil)
	d.ledgerRepo.EXPECT().SumSigned(ctx, w.ID).Return(dec("1750.00"), int64(2), nil)

	rec, err := d.svc.Reconcile(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, rec.Balanced)

	rec, err = d.svc.Reconcile(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, rec.Balanced)
	assert.Equal(t, "0.25", rec.Drift.StringFixed(2))
}
