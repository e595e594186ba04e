package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartner(name string) *domain.Partner {
	return &domain.Partner{
		ID:            uuid.New(),
		Name:          name,
		AccessKey:     "pk_" + uuid.New().String()[:16],
		SecretKeyEnc:  "encrypted_secret_key_data",
		Status:        domain.PartnerStatusActive,
		AcceptsCashIn: true,
		Location:      "Main St kiosk",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func partnerColumnNames() []string {
	return []string{"id", "name", "access_key", "secret_key_enc", "status", "accepts_cash_in", "location", "created_at"}
}

func partnerRow(rows *pgxmock.Rows, p *domain.Partner) *pgxmock.Rows {
	return rows.AddRow(p.ID, p.Name, p.AccessKey, p.SecretKeyEnc, p.Status, p.AcceptsCashIn, p.Location, p.CreatedAt)
}

func TestPartnerRepo_GetByAccessKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPartnerRepo(mock)
	p := newTestPartner("Corner Agent")

	mock.ExpectQuery("SELECT .+ FROM partners WHERE access_key").
		WithArgs(p.AccessKey).
		WillReturnRows(partnerRow(pgxmock.NewRows(partnerColumnNames()), p))

	got, err := repo.GetByAccessKey(context.Background(), p.AccessKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, got.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPartnerRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM partners WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPartnerRepo_ListCashInPartners(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPartnerRepo(mock)
	a, b := newTestPartner("Alpha Agent"), newTestPartner("Bravo Agent")

	rows := pgxmock.NewRows(partnerColumnNames())
	partnerRow(rows, a)
	partnerRow(rows, b)
	mock.ExpectQuery("SELECT .+ FROM partners .+ accepts_cash_in = TRUE ORDER BY name").
		WithArgs(domain.PartnerStatusActive).
		WillReturnRows(rows)

	got, err := repo.ListCashInPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha Agent", got[0].Name)
	assert.Equal(t, "Bravo Agent", got[1].Name)
}

func TestPartnerRepo_ListCashInPartners_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPartnerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM partners").
		WithArgs(domain.PartnerStatusActive).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.ListCashInPartners(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list cash-in partners")
}
