package postgres

import (
	"context"
	"errors"
	"fmt"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attemptColumns = `id, cart_id, order_id, payer_id, payee_id, subtotal, discount, delivery_fee,
		service_fee, tax, total, merchant_share, platform_share, payer_balance_after,
		status, failure_code, created_at, updated_at`

// PaymentAttemptRepo implements ports.PaymentAttemptRepository.
type PaymentAttemptRepo struct {
	pool Pool
}

// NewPaymentAttemptRepo creates a new PaymentAttemptRepo.
func NewPaymentAttemptRepo(pool Pool) *PaymentAttemptRepo {
	return &PaymentAttemptRepo{pool: pool}
}

const insertAttempt = `INSERT INTO payment_attempts (` + attemptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

func attemptArgs(a *domain.PaymentAttempt) []any {
	return []any{
		a.ID, a.CartID, a.OrderID, a.PayerID, a.PayeeID, a.Subtotal, a.Discount, a.DeliveryFee,
		a.ServiceFee, a.Tax, a.Total, a.MerchantShare, a.PlatformShare, a.PayerBalanceAfter,
		a.Status, a.FailureCode, a.CreatedAt, a.UpdatedAt,
	}
}

// Create inserts an attempt within a database transaction. A second SETTLED
// attempt for the same cart violates uq_payment_attempts_settled_cart.
func (r *PaymentAttemptRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.PaymentAttempt) error {
	if _, err := tx.Exec(ctx, insertAttempt, attemptArgs(a)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cart %s already settled: %w", a.CartID, domain.ErrAlreadySettled)
		}
		return ClassifyError(fmt.Errorf("insert payment attempt: %w", err))
	}
	return nil
}

// Record inserts an attempt outside any unit of work.
func (r *PaymentAttemptRepo) Record(ctx context.Context, a *domain.PaymentAttempt) error {
	if _, err := r.pool.Exec(ctx, insertAttempt, attemptArgs(a)...); err != nil {
		return fmt.Errorf("record payment attempt: %w", err)
	}
	return nil
}

// GetSettledByCart fetches the settled attempt of a cart, if any.
func (r *PaymentAttemptRepo) GetSettledByCart(ctx context.Context, cartID uuid.UUID) (*domain.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts WHERE cart_id = $1 AND status = $2`

	a, err := scanAttempt(r.pool.QueryRow(ctx, query, cartID, domain.AttemptSettled))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("get settled attempt: %w", err))
	}
	return a, nil
}

// GetSettledByCartTx is GetSettledByCart inside tx.
func (r *PaymentAttemptRepo) GetSettledByCartTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts WHERE cart_id = $1 AND status = $2`

	a, err := scanAttempt(tx.QueryRow(ctx, query, cartID, domain.AttemptSettled))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("get settled attempt: %w", err))
	}
	return a, nil
}

func scanAttempt(row pgx.Row) (*domain.PaymentAttempt, error) {
	a := &domain.PaymentAttempt{}
	err := row.Scan(
		&a.ID, &a.CartID, &a.OrderID, &a.PayerID, &a.PayeeID, &a.Subtotal, &a.Discount, &a.DeliveryFee,
		&a.ServiceFee, &a.Tax, &a.Total, &a.MerchantShare, &a.PlatformShare, &a.PayerBalanceAfter,
		&a.Status, &a.FailureCode, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}
