package service

import (
	"context"
	"errors"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	cartRepo ports.CartRepository
	fees     domain.FeeConfig
	log      zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(cartRepo ports.CartRepository, fees domain.FeeConfig, log zerolog.Logger) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{cartRepo: cartRepo, fees: fees, log: log}
}

// Totals loads the user's cart and prices it.
func (s *CheckoutServiceImpl) Totals(ctx context.Context, userID, cartID uuid.UUID) (*domain.Totals, error) {
	cart, err := s.cartRepo.GetSnapshot(ctx, cartID)
	if err != nil {
		return nil, storeErr("load cart", err)
	}
	return s.price(cart, userID)
}

// TotalsTx loads the cart inside tx and prices it.
func (s *CheckoutServiceImpl) TotalsTx(ctx context.Context, tx pgx.Tx, userID, cartID uuid.UUID) (*domain.CartSnapshot, *domain.Totals, error) {
	cart, err := s.cartRepo.GetSnapshotTx(ctx, tx, cartID)
	if err != nil {
		return nil, nil, storeErr("load cart", err)
	}
	totals, err := s.price(cart, userID)
	if err != nil {
		return nil, nil, err
	}
	return cart, totals, nil
}

// price refuses carts of other users as not found, so cart ids cannot be probed.
func (s *CheckoutServiceImpl) price(cart *domain.CartSnapshot, userID uuid.UUID) (*domain.Totals, error) {
	if cart == nil || cart.UserID != userID {
		return nil, apperror.ErrNotFound("cart")
	}
	totals, err := domain.CalculateTotals(cart, s.fees)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return nil, apperror.ErrEmptyCart()
		}
		return nil, apperror.InternalError(err)
	}
	return &totals, nil
}
