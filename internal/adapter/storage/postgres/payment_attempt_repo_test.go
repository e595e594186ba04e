package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAttempt(status domain.AttemptStatus) *domain.PaymentAttempt {
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := &domain.PaymentAttempt{
		ID:                uuid.New(),
		CartID:            uuid.New(),
		OrderID:           uuid.New(),
		PayerID:           uuid.New(),
		PayeeID:           uuid.New(),
		PayerBalanceAfter: decimal.RequireFromString("1860.20"),
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	a.ApplyTotals(domain.Totals{
		Subtotal:         decimal.RequireFromString("100"),
		Discount:         decimal.Zero,
		AdjustedSubtotal: decimal.RequireFromString("100"),
		DeliveryFee:      decimal.RequireFromString("15"),
		ServiceFee:       decimal.RequireFromString("5"),
		Tax:              decimal.RequireFromString("19.80"),
		Total:            decimal.RequireFromString("139.80"),
	}, decimal.RequireFromString("100"), decimal.RequireFromString("39.80"))
	return a
}

func attemptArgMatchers(a *domain.PaymentAttempt) []any {
	return []any{
		a.ID, a.CartID, a.OrderID, a.PayerID, a.PayeeID, a.Subtotal, a.Discount, a.DeliveryFee,
		a.ServiceFee, a.Tax, a.Total, a.MerchantShare, a.PlatformShare, a.PayerBalanceAfter,
		a.Status, a.FailureCode, a.CreatedAt, a.UpdatedAt,
	}
}

func TestPaymentAttemptRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentAttemptRepo(mock)
	a := newTestAttempt(domain.AttemptSettled)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payment_attempts").
		WithArgs(attemptArgMatchers(a)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentAttemptRepo_Create_SecondSettlement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentAttemptRepo(mock)
	a := newTestAttempt(domain.AttemptSettled)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payment_attempts").
		WithArgs(attemptArgMatchers(a)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_payment_attempts_settled_cart"})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, a)
	assert.True(t, errors.Is(err, domain.ErrAlreadySettled))
}

func TestPaymentAttemptRepo_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentAttemptRepo(mock)
	a := newTestAttempt(domain.AttemptFailed)
	code := "PAY_001"
	a.FailureCode = &code

	mock.ExpectExec("INSERT INTO payment_attempts").
		WithArgs(attemptArgMatchers(a)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Record(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentAttemptRepo_GetSettledByCart(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentAttemptRepo(mock)
	a := newTestAttempt(domain.AttemptSettled)

	mock.ExpectQuery("SELECT .+ FROM payment_attempts WHERE cart_id = \\$1 AND status = \\$2").
		WithArgs(a.CartID, domain.AttemptSettled).
		WillReturnRows(pgxmock.NewRows([]string{"id", "cart_id", "order_id", "payer_id", "payee_id", "subtotal",
			"discount", "delivery_fee", "service_fee", "tax", "total", "merchant_share", "platform_share",
			"payer_balance_after", "status", "failure_code", "created_at", "updated_at"}).
			AddRow(attemptArgMatchers(a)...))

	got, err := repo.GetSettledByCart(context.Background(), a.CartID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "139.80", got.Total.StringFixed(2))
	assert.Nil(t, got.FailureCode)
}

func TestPaymentAttemptRepo_GetSettledByCart_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentAttemptRepo(mock)
	cartID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM payment_attempts").
		WithArgs(cartID, domain.AttemptSettled).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.GetSettledByCart(context.Background(), cartID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
