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

const topupColumns = `id, user_id, amount, method, reference_code, status, expires_at,
		completed_at, ledger_entry_id, created_at, updated_at`

// TopupRepo implements ports.TopupRepository.
type TopupRepo struct {
	pool Pool
}

// NewTopupRepo creates a new TopupRepo.
func NewTopupRepo(pool Pool) *TopupRepo {
	return &TopupRepo{pool: pool}
}

// Create inserts a pending request. A clash on the live reference-code index
// is reported as domain.ErrCodeTaken so the caller can draw a new code.
func (r *TopupRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TopupRequest) error {
	query := `INSERT INTO topup_requests (` + topupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.UserID, t.Amount, t.Method, t.ReferenceCode, t.Status, t.ExpiresAt,
		t.CompletedAt, t.LedgerEntryID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeTaken
		}
		return ClassifyError(fmt.Errorf("insert topup request: %w", err))
	}
	return nil
}

// ReleaseStaleCode expires a PENDING holder of code whose deadline has passed.
func (r *TopupRepo) ReleaseStaleCode(ctx context.Context, tx pgx.Tx, code string, now time.Time) error {
	query := `UPDATE topup_requests SET status = $1, updated_at = $2
		WHERE reference_code = $3 AND status = $4 AND expires_at <= $2`

	if _, err := tx.Exec(ctx, query, domain.TopupStatusExpired, now, code, domain.TopupStatusPending); err != nil {
		return ClassifyError(fmt.Errorf("release stale topup code: %w", err))
	}
	return nil
}

// IsCodeLive reports whether a pending, unexpired request holds code.
func (r *TopupRepo) IsCodeLive(ctx context.Context, code string, now time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM topup_requests
		WHERE reference_code = $1 AND status = $2 AND expires_at > $3)`

	var live bool
	if err := r.pool.QueryRow(ctx, query, code, domain.TopupStatusPending, now).Scan(&live); err != nil {
		return false, ClassifyError(fmt.Errorf("check topup code: %w", err))
	}
	return live, nil
}

// GetByReference fetches the most recent request issued under code.
func (r *TopupRepo) GetByReference(ctx context.Context, code string) (*domain.TopupRequest, error) {
	query := `SELECT ` + topupColumns + ` FROM topup_requests
		WHERE reference_code = $1 ORDER BY created_at DESC LIMIT 1`

	t, err := scanTopup(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("get topup by reference: %w", err))
	}
	return t, nil
}

// GetLiveByReferenceForUpdate locks the pending, unexpired request holding code.
// This MUST be called within a transaction.
func (r *TopupRepo) GetLiveByReferenceForUpdate(ctx context.Context, tx pgx.Tx, code string, now time.Time) (*domain.TopupRequest, error) {
	query := `SELECT ` + topupColumns + ` FROM topup_requests
		WHERE reference_code = $1 AND status = $2 AND expires_at > $3 FOR UPDATE`

	t, err := scanTopup(tx.QueryRow(ctx, query, code, domain.TopupStatusPending, now))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("lock topup request: %w", err))
	}
	return t, nil
}

// MarkCompleted records the credit that completed the request.
func (r *TopupRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, ledgerEntryID uuid.UUID, at time.Time) error {
	query := `UPDATE topup_requests SET status = $1, completed_at = $2, ledger_entry_id = $3, updated_at = $2
		WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query, domain.TopupStatusCompleted, at, ledgerEntryID, id, domain.TopupStatusPending)
	if err != nil {
		return ClassifyError(fmt.Errorf("complete topup request: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topup request not pending: %s", id)
	}
	return nil
}

// UpdateStatus moves a request to a terminal status.
func (r *TopupRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TopupStatus) error {
	query := `UPDATE topup_requests SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return ClassifyError(fmt.Errorf("update topup status: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topup request not found: %s", id)
	}
	return nil
}

// ExpireOverdue marks every past-deadline PENDING request EXPIRED.
func (r *TopupRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE topup_requests SET status = $1, updated_at = $2 WHERE status = $3 AND expires_at <= $2`

	tag, err := r.pool.Exec(ctx, query, domain.TopupStatusExpired, now, domain.TopupStatusPending)
	if err != nil {
		return 0, ClassifyError(fmt.Errorf("expire topup requests: %w", err))
	}
	return tag.RowsAffected(), nil
}

func scanTopup(row pgx.Row) (*domain.TopupRequest, error) {
	t := &domain.TopupRequest{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Method, &t.ReferenceCode, &t.Status, &t.ExpiresAt,
		&t.CompletedAt, &t.LedgerEntryID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
