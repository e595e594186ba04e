package postgres

import (
	"context"
	"errors"
	"fmt"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartRepo implements ports.CartRepository over the order subsystem's tables.
type CartRepo struct {
	pool Pool
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(pool Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// GetSnapshot reads a cart and its items outside any unit of work.
func (r *CartRepo) GetSnapshot(ctx context.Context, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	return loadCart(ctx, r.pool, cartID)
}

// GetSnapshotTx reads a cart and its items inside tx, sharing its snapshot.
func (r *CartRepo) GetSnapshotTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	return loadCart(ctx, tx, cartID)
}

func loadCart(ctx context.Context, q queryer, cartID uuid.UUID) (*domain.CartSnapshot, error) {
	cart := &domain.CartSnapshot{}
	err := q.QueryRow(ctx,
		`SELECT id, user_id, merchant_id, is_active, discount FROM carts WHERE id = $1`, cartID,
	).Scan(&cart.ID, &cart.UserID, &cart.MerchantID, &cart.IsActive, &cart.Discount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, ClassifyError(fmt.Errorf("get cart: %w", err))
	}

	rows, err := q.Query(ctx,
		`SELECT product_id, name, unit_price, quantity, is_active FROM cart_items WHERE cart_id = $1 ORDER BY id`, cartID)
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("list cart items: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity, &it.IsActive); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}
	return cart, nil
}

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByCartIDForUpdate locks the order placed for a cart. Concurrent payment
// attempts for the same checkout serialize on this lock.
func (r *OrderRepo) GetByCartIDForUpdate(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, cart_id, user_id, merchant_id, status, payment_status
		FROM orders WHERE cart_id = $1 FOR UPDATE`

	o := &domain.Order{}
	err := tx.QueryRow(ctx, query, cartID).Scan(&o.ID, &o.CartID, &o.UserID, &o.MerchantID, &o.Status, &o.PaymentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, ClassifyError(fmt.Errorf("lock order: %w", err))
	}
	return o, nil
}

// MarkPaid sets payment_status PAID and moves the order from PENDING to
// CONFIRMED. Orders in any other state are not payable.
func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	query := `UPDATE orders SET payment_status = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND payment_status = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query,
		domain.PaymentStatusPaid, domain.OrderStatusConfirmed,
		orderID, domain.PaymentStatusUnpaid, domain.OrderStatusPending,
	)
	if err != nil {
		return ClassifyError(fmt.Errorf("mark order paid: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not payable: %s", orderID)
	}
	return nil
}
