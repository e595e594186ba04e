package service

import (
	"context"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const acceptedPartnersKey = "cashin:partners"

// PartnerDirectoryImpl serves the accepted cash-in partner list from an
// in-process cache, refreshing from the store once the entry expires.
type PartnerDirectoryImpl struct {
	partnerRepo ports.PartnerRepository
	cache       *cache.Cache
	log         zerolog.Logger
}

// NewPartnerDirectory creates a PartnerDirectoryImpl whose entries live for ttl.
func NewPartnerDirectory(partnerRepo ports.PartnerRepository, ttl time.Duration, log zerolog.Logger) *PartnerDirectoryImpl {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PartnerDirectoryImpl{
		partnerRepo: partnerRepo,
		cache:       cache.New(ttl, 2*ttl),
		log:         log,
	}
}

// AcceptedPartners returns the active partners that take cash-in codes.
func (d *PartnerDirectoryImpl) AcceptedPartners(ctx context.Context) ([]domain.Partner, error) {
	if v, found := d.cache.Get(acceptedPartnersKey); found {
		return v.([]domain.Partner), nil
	}

	all, err := d.partnerRepo.ListCashInPartners(ctx)
	if err != nil {
		return nil, storeErr("list cash-in partners", err)
	}
	accepted := make([]domain.Partner, 0, len(all))
	for _, p := range all {
		if p.IsActive() && p.AcceptsCashIn {
			accepted = append(accepted, p)
		}
	}

	d.cache.Set(acceptedPartnersKey, accepted, cache.DefaultExpiration)
	d.log.Debug().Int("partners", len(accepted)).Msg("refreshed cash-in partner list")
	return accepted, nil
}

// AcceptsCashIn reports whether the partner is active and takes cash-in
// codes. Money-moving calls use this instead of the cached list.
func (d *PartnerDirectoryImpl) AcceptsCashIn(ctx context.Context, partnerID uuid.UUID) (bool, error) {
	p, err := d.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return false, storeErr("get partner", err)
	}
	return p != nil && p.IsActive() && p.AcceptsCashIn, nil
}

// Invalidate drops the cached list.
func (d *PartnerDirectoryImpl) Invalidate() {
	d.cache.Delete(acceptedPartnersKey)
}
