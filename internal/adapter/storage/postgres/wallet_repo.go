package postgres

import (
	"context"
	"errors"
	"fmt"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, owner_id, balance, currency, is_active, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// GetOrCreate inserts a zero-balance wallet unless the owner already has one,
// then reads the stored row. Concurrent first access converges on one row
// through the owner_id unique constraint.
func (r *WalletRepo) GetOrCreate(ctx context.Context, ownerID uuid.UUID, currency string) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (id, owner_id, balance, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, 0, $3, TRUE, NOW(), NOW())
		ON CONFLICT (owner_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, uuid.New(), ownerID, currency); err != nil {
		return nil, ClassifyError(fmt.Errorf("insert wallet: %w", err))
	}

	w, err := r.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("wallet for owner %s vanished after insert", ownerID)
	}
	return w, nil
}

// GetByOwnerID fetches a wallet by owner (non-locking read).
func (r *WalletRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("get wallet by owner: %w", err))
	}
	return w, nil
}

// EnsureTx creates the owner's wallet inside tx when absent.
func (r *WalletRepo) EnsureTx(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, currency string) error {
	query := `INSERT INTO wallets (id, owner_id, balance, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, 0, $3, TRUE, NOW(), NOW())
		ON CONFLICT (owner_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, uuid.New(), ownerID, currency); err != nil {
		return ClassifyError(fmt.Errorf("ensure wallet: %w", err))
	}
	return nil
}

// GetByOwnerIDForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("lock wallet: %w", err))
	}
	return w, nil
}

// UpdateBalance writes a wallet's new balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		return ClassifyError(fmt.Errorf("update wallet balance: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// SetActive flips the active flag. Balance and ledger are left untouched.
func (r *WalletRepo) SetActive(ctx context.Context, ownerID uuid.UUID, active bool) error {
	query := `UPDATE wallets SET is_active = $1, updated_at = NOW() WHERE owner_id = $2`

	tag, err := r.pool.Exec(ctx, query, active, ownerID)
	if err != nil {
		return ClassifyError(fmt.Errorf("set wallet active: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found for owner: %s", ownerID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(&w.ID, &w.OwnerID, &w.Balance, &w.Currency, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
