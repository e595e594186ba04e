package postgres

import (
	"context"
	"errors"
	"fmt"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const partnerColumns = `id, name, access_key, secret_key_enc, status, accepts_cash_in, location, created_at`

// PartnerRepo implements ports.PartnerRepository.
type PartnerRepo struct {
	pool Pool
}

// NewPartnerRepo creates a new PartnerRepo.
func NewPartnerRepo(pool Pool) *PartnerRepo {
	return &PartnerRepo{pool: pool}
}

// GetByID fetches a partner by its UUID.
func (r *PartnerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

	p, err := scanPartner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get partner by id: %w", err)
	}
	return p, nil
}

// GetByAccessKey fetches a partner by its HMAC access key.
func (r *PartnerRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE access_key = $1`

	p, err := scanPartner(r.pool.QueryRow(ctx, query, accessKey))
	if err != nil {
		return nil, fmt.Errorf("get partner by access key: %w", err)
	}
	return p, nil
}

// ListCashInPartners returns active partners that accept cash-in codes, by name.
func (r *PartnerRepo) ListCashInPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners
		WHERE status = $1 AND accepts_cash_in = TRUE ORDER BY name`

	rows, err := r.pool.Query(ctx, query, domain.PartnerStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list cash-in partners: %w", err)
	}
	defer rows.Close()

	partners := []domain.Partner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner row: %w", err)
		}
		partners = append(partners, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partner rows: %w", err)
	}
	return partners, nil
}

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	p := &domain.Partner{}
	err := row.Scan(&p.ID, &p.Name, &p.AccessKey, &p.SecretKeyEnc, &p.Status, &p.AcceptsCashIn, &p.Location, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
