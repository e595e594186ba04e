package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const externalPaymentColumns = `id, payment_code, user_id, cart_id, amount, wallet_balance_at_request,
		status, partner_id, expires_at, completed_at, created_at, updated_at`

// liveStatuses are the statuses covered by the live payment-code unique index.
var liveStatuses = []string{string(domain.ExternalPaymentPending), string(domain.ExternalPaymentProcessing)}

// ExternalPaymentRepo implements ports.ExternalPaymentRepository.
type ExternalPaymentRepo struct {
	pool Pool
}

// NewExternalPaymentRepo creates a new ExternalPaymentRepo.
func NewExternalPaymentRepo(pool Pool) *ExternalPaymentRepo {
	return &ExternalPaymentRepo{pool: pool}
}

// Create inserts a pending cash-in payment. A clash on the live code index is
// reported as domain.ErrCodeTaken.
func (r *ExternalPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.ExternalPayment) error {
	query := `INSERT INTO external_payments (` + externalPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.PaymentCode, p.UserID, p.CartID, p.Amount, p.WalletBalanceAtRequest,
		p.Status, p.PartnerID, p.ExpiresAt, p.CompletedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeTaken
		}
		return ClassifyError(fmt.Errorf("insert external payment: %w", err))
	}
	return nil
}

// ReleaseStaleCode expires live-status holders of code whose deadline has passed.
func (r *ExternalPaymentRepo) ReleaseStaleCode(ctx context.Context, tx pgx.Tx, code string, now time.Time) error {
	query := `UPDATE external_payments SET status = $1, updated_at = $2
		WHERE payment_code = $3 AND status = ANY($4) AND expires_at <= $2`

	if _, err := tx.Exec(ctx, query, domain.ExternalPaymentExpired, now, code, liveStatuses); err != nil {
		return ClassifyError(fmt.Errorf("release stale payment code: %w", err))
	}
	return nil
}

// IsCodeLive reports whether a live, unexpired payment holds code.
func (r *ExternalPaymentRepo) IsCodeLive(ctx context.Context, code string, now time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM external_payments
		WHERE payment_code = $1 AND status = ANY($2) AND expires_at > $3)`

	var live bool
	if err := r.pool.QueryRow(ctx, query, code, liveStatuses, now).Scan(&live); err != nil {
		return false, ClassifyError(fmt.Errorf("check payment code: %w", err))
	}
	return live, nil
}

// GetLatestByCode fetches the most recent payment issued under code.
func (r *ExternalPaymentRepo) GetLatestByCode(ctx context.Context, code string) (*domain.ExternalPayment, error) {
	query := `SELECT ` + externalPaymentColumns + ` FROM external_payments
		WHERE payment_code = $1 ORDER BY created_at DESC LIMIT 1`

	p, err := scanExternalPayment(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("get external payment: %w", err))
	}
	return p, nil
}

// GetLiveByCodeForUpdate locks the live, unexpired payment holding code.
// This MUST be called within a transaction.
func (r *ExternalPaymentRepo) GetLiveByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string, now time.Time) (*domain.ExternalPayment, error) {
	query := `SELECT ` + externalPaymentColumns + ` FROM external_payments
		WHERE payment_code = $1 AND status = ANY($2) AND expires_at > $3 FOR UPDATE`

	p, err := scanExternalPayment(tx.QueryRow(ctx, query, code, liveStatuses, now))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("lock external payment: %w", err))
	}
	return p, nil
}

// MarkProcessing records that a partner agent has started handling the code.
func (r *ExternalPaymentRepo) MarkProcessing(ctx context.Context, tx pgx.Tx, id uuid.UUID, partnerID uuid.UUID) error {
	query := `UPDATE external_payments SET status = $1, partner_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := tx.Exec(ctx, query, domain.ExternalPaymentProcessing, partnerID, id, domain.ExternalPaymentPending)
	if err != nil {
		return ClassifyError(fmt.Errorf("claim external payment: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("external payment not pending: %s", id)
	}
	return nil
}

// MarkCompleted records the redemption of a live payment.
func (r *ExternalPaymentRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, partnerID uuid.UUID, at time.Time) error {
	query := `UPDATE external_payments SET status = $1, partner_id = $2, completed_at = $3, updated_at = $3
		WHERE id = $4 AND status = ANY($5)`

	tag, err := tx.Exec(ctx, query, domain.ExternalPaymentCompleted, partnerID, at, id, liveStatuses)
	if err != nil {
		return ClassifyError(fmt.Errorf("complete external payment: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("external payment not live: %s", id)
	}
	return nil
}

// UpdateStatus moves a payment to a terminal status.
func (r *ExternalPaymentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ExternalPaymentStatus) error {
	query := `UPDATE external_payments SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return ClassifyError(fmt.Errorf("update external payment status: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("external payment not found: %s", id)
	}
	return nil
}

// ExpireOverdue marks every past-deadline live payment EXPIRED.
func (r *ExternalPaymentRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE external_payments SET status = $1, updated_at = $2 WHERE status = ANY($3) AND expires_at <= $2`

	tag, err := r.pool.Exec(ctx, query, domain.ExternalPaymentExpired, now, liveStatuses)
	if err != nil {
		return 0, ClassifyError(fmt.Errorf("expire external payments: %w", err))
	}
	return tag.RowsAffected(), nil
}

func scanExternalPayment(row pgx.Row) (*domain.ExternalPayment, error) {
	p := &domain.ExternalPayment{}
	err := row.Scan(
		&p.ID, &p.PaymentCode, &p.UserID, &p.CartID, &p.Amount, &p.WalletBalanceAtRequest,
		&p.Status, &p.PartnerID, &p.ExpiresAt, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
