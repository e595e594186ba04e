package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultIdempotencyTTL = 24 * time.Hour

// SettlementPolicy configures how a checkout total is split.
type SettlementPolicy struct {
	// PlatformOwnerID receives fees and tax. uuid.Nil credits the merchant
	// with the whole total.
	PlatformOwnerID uuid.UUID
	IdempotencyTTL  time.Duration
}

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	orderRepo   ports.OrderRepository
	attemptRepo ports.PaymentAttemptRepository
	checkout    ports.CheckoutService
	wallet      ports.WalletService
	idempCache  ports.IdempotencyCache
	transactor  ports.DBTransactor
	policy      SettlementPolicy
	retry       retrier
	events      eventSink
	metrics     *metrics.Metrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	orderRepo ports.OrderRepository,
	attemptRepo ports.PaymentAttemptRepository,
	checkout ports.CheckoutService,
	wallet ports.WalletService,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	policy SettlementPolicy,
	retry RetryPolicy,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *PaymentServiceImpl {
	if policy.IdempotencyTTL <= 0 {
		policy.IdempotencyTTL = defaultIdempotencyTTL
	}
	return &PaymentServiceImpl{
		orderRepo:   orderRepo,
		attemptRepo: attemptRepo,
		checkout:    checkout,
		wallet:      wallet,
		idempCache:  idempCache,
		transactor:  transactor,
		policy:      policy,
		retry:       newRetrier(retry, m, log),
		events:      newEventSink(publisher, m, log),
		metrics:     m,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Process settles the user's checkout: the payer is debited the recomputed
// total and the merchant (and platform) credited in one unit. Repeating the
// call for a settled cart returns the original result without moving money.
func (s *PaymentServiceImpl) Process(ctx context.Context, userID, cartID uuid.UUID) (*domain.SettlementResult, error) {
	key := domain.BuildSettlementKey(userID, cartID)

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		var res domain.SettlementResult
		if err := json.Unmarshal(cached, &res); err == nil {
			res.Replayed = true
			s.metrics.ObserveSettlement("replayed")
			return &res, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding unreadable cached settlement")
	}

	// Layer 2: DB settled attempt
	prior, err := s.attemptRepo.GetSettledByCart(ctx, cartID)
	if err != nil {
		return nil, storeErr("check settled attempt", err)
	}
	if prior != nil {
		if prior.PayerID != userID {
			return nil, apperror.ErrNotFound("order")
		}
		s.metrics.ObserveSettlement("replayed")
		return replayAttempt(prior), nil
	}

	var draft domain.PaymentAttempt
	result, err := retryValue(ctx, s.retry, "payment.process", func() (*domain.SettlementResult, error) {
		draft = domain.PaymentAttempt{}
		return s.settle(ctx, userID, cartID, &draft)
	})
	if err != nil {
		s.metrics.ObserveSettlement(errorCode(err))
		s.recordFailure(ctx, &draft, err)
		return nil, err
	}
	if result.Replayed {
		s.metrics.ObserveSettlement("replayed")
		return result, nil
	}

	// Post-process: cache in Redis (best-effort)
	if body, err := json.Marshal(result); err == nil {
		if err := s.idempCache.Set(ctx, key, body, s.policy.IdempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to cache settlement in redis")
		}
	}

	s.metrics.ObserveSettlement("settled")
	s.log.Info().
		Str("order_id", result.OrderID.String()).
		Str("payer_id", userID.String()).
		Str("total", result.Totals.Total.StringFixed(domain.MoneyScale)).
		Msg("checkout settled")
	s.events.emit(ctx, domain.EventPaymentSettled, userID, result.Totals.Total, result.OrderID.String(), &result.NewBalance)

	return result, nil
}

// settle runs one settlement unit. draft collects the figures known so far
// so a failure can be recorded after rollback.
func (s *PaymentServiceImpl) settle(ctx context.Context, userID, cartID uuid.UUID, draft *domain.PaymentAttempt) (*domain.SettlementResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByCartIDForUpdate(ctx, dbTx, cartID)
	if err != nil {
		return nil, storeErr("lock order", err)
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.ErrNotFound("order")
	}
	if order.PaymentStatus == domain.PaymentStatusPaid {
		prior, err := s.attemptRepo.GetSettledByCartTx(ctx, dbTx, cartID)
		if err != nil {
			return nil, storeErr("get settled attempt", err)
		}
		if prior == nil {
			return nil, apperror.ErrConflict("order is already paid")
		}
		return replayAttempt(prior), nil
	}
	if order.Status != domain.OrderStatusPending {
		return nil, apperror.ErrConflict("order is not awaiting payment").
			WithDetails(map[string]any{"order_status": order.Status})
	}

	// Initiated: totals are always recomputed from the stored cart.
	cart, totals, err := s.checkout.TotalsTx(ctx, dbTx, userID, cartID)
	if err != nil {
		return nil, err
	}

	merchantShare, platformShare := totals.MerchantShare(), totals.PlatformShare()
	owners := []uuid.UUID{userID, cart.MerchantID}
	withPlatform := s.policy.PlatformOwnerID != uuid.Nil && platformShare.IsPositive()
	if withPlatform {
		owners = append(owners, s.policy.PlatformOwnerID)
	} else {
		merchantShare, platformShare = totals.Total, decimal.Zero
	}

	now := s.now()
	*draft = domain.PaymentAttempt{
		ID:        uuid.New(),
		CartID:    cartID,
		OrderID:   order.ID,
		PayerID:   userID,
		PayeeID:   cart.MerchantID,
		Status:    domain.AttemptInitiated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	draft.ApplyTotals(*totals, merchantShare, platformShare)

	// Authorized: every wallet of the split is locked in a fixed order.
	locked, err := s.wallet.LockTx(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}
	draft.PayerBalanceAfter = locked[userID].Balance
	draft.Status = domain.AttemptAuthorized

	orderRef := order.ID.String()
	debit, err := s.wallet.DebitTx(ctx, dbTx, ports.MutationRequest{
		OwnerID:   userID,
		Amount:    totals.Total,
		Reference: domain.Reference{ID: orderRef, Type: domain.ReferenceOrder, Category: domain.CategoryPayment, Description: "Order payment"},
	})
	if err != nil {
		return nil, err
	}
	if merchantShare.IsPositive() {
		if _, err := s.wallet.CreditTx(ctx, dbTx, ports.MutationRequest{
			OwnerID:   cart.MerchantID,
			Amount:    merchantShare,
			Reference: domain.Reference{ID: orderRef, Type: domain.ReferenceOrder, Category: domain.CategorySale, Description: "Order sale"},
		}); err != nil {
			return nil, err
		}
	}
	if withPlatform {
		if _, err := s.wallet.CreditTx(ctx, dbTx, ports.MutationRequest{
			OwnerID:   s.policy.PlatformOwnerID,
			Amount:    platformShare,
			Reference: domain.Reference{ID: orderRef, Type: domain.ReferenceOrder, Category: domain.CategoryPlatformFee, Description: "Delivery, service fee and tax"},
		}); err != nil {
			return nil, err
		}
	}

	attempt := *draft
	attempt.Status = domain.AttemptSettled
	attempt.PayerBalanceAfter = debit.BalanceAfter
	if err := s.attemptRepo.Create(ctx, dbTx, &attempt); err != nil {
		if errors.Is(err, domain.ErrAlreadySettled) {
			return nil, apperror.ErrConflict("checkout already settled")
		}
		return nil, storeErr("create payment attempt", err)
	}
	if err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID); err != nil {
		return nil, storeErr("mark order paid", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	return &domain.SettlementResult{
		OrderID:    order.ID,
		AttemptID:  attempt.ID,
		NewBalance: debit.BalanceAfter,
		Totals:     *totals,
	}, nil
}

// recordFailure stores a FAILED attempt once the unit has rolled back.
// Failures before the order and totals were known leave nothing to record.
func (s *PaymentServiceImpl) recordFailure(ctx context.Context, draft *domain.PaymentAttempt, cause error) {
	if draft.ID == uuid.Nil {
		return
	}
	code := errorCode(cause)
	failed := *draft
	failed.ID = uuid.New()
	failed.Status = domain.AttemptFailed
	failed.FailureCode = &code
	failed.UpdatedAt = s.now()

	if err := s.attemptRepo.Record(ctx, &failed); err != nil {
		s.log.Warn().Err(err).Str("cart_id", failed.CartID.String()).Msg("failed to record failed payment attempt")
		return
	}
	s.log.Info().
		Str("cart_id", failed.CartID.String()).
		Str("payer_id", failed.PayerID.String()).
		Str("failure_code", code).
		Msg("checkout payment failed")
	s.events.emit(ctx, domain.EventPaymentFailed, failed.PayerID, failed.Total, failed.OrderID.String(), nil)
}

func replayAttempt(a *domain.PaymentAttempt) *domain.SettlementResult {
	return &domain.SettlementResult{
		OrderID:    a.OrderID,
		AttemptID:  a.ID,
		NewBalance: a.PayerBalanceAfter,
		Totals: domain.Totals{
			Subtotal:         a.Subtotal,
			Discount:         a.Discount,
			AdjustedSubtotal: domain.RoundMoney(decimal.Max(a.Subtotal.Sub(a.Discount), decimal.Zero)),
			DeliveryFee:      a.DeliveryFee,
			ServiceFee:       a.ServiceFee,
			Tax:              a.Tax,
			Total:            a.Total,
		},
		Replayed: true,
	}
}
