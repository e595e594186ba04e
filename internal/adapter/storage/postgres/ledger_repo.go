package postgres

import (
	"context"
	"fmt"
	"strings"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, wallet_id, owner_id, direction, amount, balance_before, balance_after,
		category, reference_id, reference_type, status, description, created_at`

// ledgerSortColumns is the allow-list of sortable fields. User input never
// reaches the ORDER BY clause directly.
var ledgerSortColumns = map[ports.LedgerSortField]string{
	ports.LedgerSortCreatedAt: "created_at",
	ports.LedgerSortAmount:    "amount",
}

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *LedgerRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.WalletID, e.OwnerID, e.Direction, e.Amount, e.BalanceBefore, e.BalanceAfter,
		e.Category, e.ReferenceID, e.ReferenceType, e.Status, e.Description, e.CreatedAt,
	)
	if err != nil {
		return ClassifyError(fmt.Errorf("insert ledger entry: %w", err))
	}
	return nil
}

// List fetches an owner's ledger entries with allow-listed filters, sorting and pagination.
func (r *LedgerRepo) List(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argIdx))
	args = append(args, params.OwnerID)
	argIdx++

	if params.Direction != nil {
		conditions = append(conditions, fmt.Sprintf("direction = $%d", argIdx))
		args = append(args, *params.Direction)
		argIdx++
	}
	if params.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *params.Category)
		argIdx++
	}
	if params.ReferenceType != nil {
		conditions = append(conditions, fmt.Sprintf("reference_type = $%d", argIdx))
		args = append(args, *params.ReferenceType)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ledger_entries %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, ClassifyError(fmt.Errorf("count ledger entries: %w", err))
	}

	sortCol, ok := ledgerSortColumns[params.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	direction := "ASC"
	if params.Descending {
		direction = "DESC"
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM ledger_entries %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		ledgerColumns, where, sortCol, direction, direction, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, ClassifyError(fmt.Errorf("list ledger entries: %w", err))
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := scanLedgerEntry(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, total, nil
}

// SumSigned returns the signed sum and count of a wallet's ledger entries.
func (r *LedgerRepo) SumSigned(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END), 0),
		COUNT(*)
		FROM ledger_entries WHERE wallet_id = $1`

	var sum decimal.Decimal
	var count int64
	if err := r.pool.QueryRow(ctx, query, walletID).Scan(&sum, &count); err != nil {
		return decimal.Zero, 0, ClassifyError(fmt.Errorf("sum ledger entries: %w", err))
	}
	return sum, count, nil
}

func scanLedgerEntry(row pgx.Row, e *domain.LedgerEntry) error {
	return row.Scan(
		&e.ID, &e.WalletID, &e.OwnerID, &e.Direction, &e.Amount, &e.BalanceBefore, &e.BalanceAfter,
		&e.Category, &e.ReferenceID, &e.ReferenceType, &e.Status, &e.Description, &e.CreatedAt,
	)
}
