package service

import (
	"context"
	"errors"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// CashInServiceImpl implements ports.CashInService.
type CashInServiceImpl struct {
	paymentRepo ports.ExternalPaymentRepository
	checkout    ports.CheckoutService
	wallet      ports.WalletService
	partners    ports.PartnerDirectory
	transactor  ports.DBTransactor
	codes       ports.CodeIssuer
	ttl         time.Duration
	retry       retrier
	events      eventSink
	log         zerolog.Logger
	now         func() time.Time
}

// NewCashInService creates a new CashInServiceImpl.
func NewCashInService(
	paymentRepo ports.ExternalPaymentRepository,
	checkout ports.CheckoutService,
	wallet ports.WalletService,
	partners ports.PartnerDirectory,
	transactor ports.DBTransactor,
	codes ports.CodeIssuer,
	ttl time.Duration,
	retry RetryPolicy,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *CashInServiceImpl {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CashInServiceImpl{
		paymentRepo: paymentRepo,
		checkout:    checkout,
		wallet:      wallet,
		partners:    partners,
		transactor:  transactor,
		codes:       codes,
		ttl:         ttl,
		retry:       newRetrier(retry, m, log),
		events:      newEventSink(publisher, m, log),
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GenerateCode issues a 4-character code worth the checkout total of the cart.
func (s *CashInServiceImpl) GenerateCode(ctx context.Context, req ports.CashInCodeRequest) (*ports.CashInCode, error) {
	totals, err := s.checkout.Totals(ctx, req.UserID, req.CartID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsZero() && !req.Amount.Equal(totals.Total) {
		return nil, apperror.Validation("amount does not match the checkout total").
			WithDetails(map[string]any{"total": totals.Total.StringFixed(domain.MoneyScale)})
	}

	balance, _, err := s.wallet.GetBalance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payment := &domain.ExternalPayment{
		ID:                     uuid.New(),
		UserID:                 req.UserID,
		CartID:                 req.CartID,
		Amount:                 totals.Total,
		WalletBalanceAtRequest: balance,
		Status:                 domain.ExternalPaymentPending,
		ExpiresAt:              now.Add(s.ttl),
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	spec := ports.CodeSpec{Namespace: "cashin", Alphabet: domain.CodeAlphabet, Length: domain.PaymentCodeLength}
	isLive := func(ctx context.Context, code string) (bool, error) {
		return s.paymentRepo.IsCodeLive(ctx, code, s.now())
	}
	insert := func(ctx context.Context, code string) error {
		payment.PaymentCode = code
		return s.insert(ctx, payment)
	}
	if err := s.retry.do(ctx, "cashin.generate", func() error {
		_, err := s.codes.Issue(ctx, spec, isLive, insert)
		return err
	}); err != nil {
		return nil, err
	}

	partners, err := s.partners.AcceptedPartners(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load cash-in partners, returning code without them")
		partners = nil
	}

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("cart_id", req.CartID.String()).
		Str("code", payment.PaymentCode).
		Str("amount", payment.Amount.StringFixed(domain.MoneyScale)).
		Msg("cash-in code issued")
	s.events.emit(ctx, domain.EventCashInRequested, req.UserID, payment.Amount, payment.PaymentCode, nil)

	return &ports.CashInCode{Payment: payment, Partners: partners}, nil
}

// Lookup returns the live payment behind code for a partner agent.
func (s *CashInServiceImpl) Lookup(ctx context.Context, code string) (*domain.ExternalPayment, error) {
	p, err := s.paymentRepo.GetLatestByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, storeErr("get external payment", err)
	}
	if p == nil || !p.IsLive(s.now()) {
		return nil, apperror.ErrInvalidReference()
	}
	return p, nil
}

// Claim marks a pending code as being processed by partnerID. Claiming a
// code the same partner already holds is a no-op.
func (s *CashInServiceImpl) Claim(ctx context.Context, code string, partnerID uuid.UUID) (*domain.ExternalPayment, error) {
	code = normalizeCode(code)
	if err := s.requireCashInPartner(ctx, partnerID); err != nil {
		return nil, err
	}
	return retryValue(ctx, s.retry, "cashin.claim", func() (*domain.ExternalPayment, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return nil, storeErr("begin tx", err)
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		p, err := s.lockLive(ctx, dbTx, code, partnerID)
		if err != nil {
			return nil, err
		}
		if p.Status == domain.ExternalPaymentProcessing {
			return p, nil
		}

		if err := s.paymentRepo.MarkProcessing(ctx, dbTx, p.ID, partnerID); err != nil {
			return nil, storeErr("claim external payment", err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			return nil, storeErr("commit tx", err)
		}

		p.Status = domain.ExternalPaymentProcessing
		p.PartnerID = &partnerID
		s.log.Info().Str("code", code).Str("partner_id", partnerID.String()).Msg("cash-in code claimed")
		return p, nil
	})
}

// Redeem credits the user's wallet with the code amount and completes the
// code in the same unit. A code is redeemed at most once.
func (s *CashInServiceImpl) Redeem(ctx context.Context, code string, partnerID uuid.UUID) (*domain.ExternalPayment, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, apperror.ErrInvalidReference()
	}
	if err := s.requireCashInPartner(ctx, partnerID); err != nil {
		return nil, err
	}

	var credited *domain.Mutation
	p, err := retryValue(ctx, s.retry, "cashin.redeem", func() (*domain.ExternalPayment, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return nil, storeErr("begin tx", err)
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		p, err := s.lockLive(ctx, dbTx, code, partnerID)
		if err != nil {
			return nil, err
		}

		mut, err := s.wallet.CreditTx(ctx, dbTx, ports.MutationRequest{
			OwnerID: p.UserID,
			Amount:  p.Amount,
			Reference: domain.Reference{
				ID:          p.ID.String(),
				Type:        domain.ReferenceExternalPayment,
				Category:    domain.CategoryCashIn,
				Description: "Cash-in code " + p.PaymentCode,
			},
		})
		if err != nil {
			return nil, err
		}

		now := s.now()
		if err := s.paymentRepo.MarkCompleted(ctx, dbTx, p.ID, partnerID, now); err != nil {
			return nil, storeErr("complete external payment", err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			return nil, storeErr("commit tx", err)
		}

		p.Status = domain.ExternalPaymentCompleted
		p.PartnerID = &partnerID
		p.CompletedAt = &now
		p.UpdatedAt = now
		credited = mut
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", p.UserID.String()).
		Str("code", code).
		Str("partner_id", partnerID.String()).
		Str("amount", p.Amount.StringFixed(domain.MoneyScale)).
		Msg("cash-in code redeemed")
	s.events.emit(ctx, domain.EventCashInCompleted, p.UserID, p.Amount, code, &credited.BalanceAfter)
	return p, nil
}

// Cancel withdraws the user's pending code.
func (s *CashInServiceImpl) Cancel(ctx context.Context, userID uuid.UUID, code string) (*domain.ExternalPayment, error) {
	code = normalizeCode(code)
	latest, err := s.paymentRepo.GetLatestByCode(ctx, code)
	if err != nil {
		return nil, storeErr("get external payment", err)
	}
	if latest == nil || latest.UserID != userID {
		return nil, apperror.ErrNotFound("cash-in code")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	p, err := s.paymentRepo.GetLiveByCodeForUpdate(ctx, dbTx, code, s.now())
	if err != nil {
		return nil, storeErr("lock external payment", err)
	}
	if p == nil || p.UserID != userID || p.Status != domain.ExternalPaymentPending {
		return nil, apperror.ErrConflict("cash-in code is no longer pending")
	}
	if err := s.paymentRepo.UpdateStatus(ctx, dbTx, p.ID, domain.ExternalPaymentCancelled); err != nil {
		return nil, storeErr("cancel external payment", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	p.Status = domain.ExternalPaymentCancelled
	s.log.Info().Str("user_id", userID.String()).Str("code", code).Msg("cash-in code cancelled")
	return p, nil
}

func (s *CashInServiceImpl) requireCashInPartner(ctx context.Context, partnerID uuid.UUID) error {
	ok, err := s.partners.AcceptsCashIn(ctx, partnerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrForbidden().WithDetails(map[string]any{"reason": "partner does not accept cash-in codes"})
	}
	return nil
}

// lockLive locks the live payment holding code. A payment already claimed
// by a different partner is a conflict.
func (s *CashInServiceImpl) lockLive(ctx context.Context, tx pgx.Tx, code string, partnerID uuid.UUID) (*domain.ExternalPayment, error) {
	p, err := s.paymentRepo.GetLiveByCodeForUpdate(ctx, tx, code, s.now())
	if err != nil {
		return nil, storeErr("lock external payment", err)
	}
	if p == nil {
		return nil, apperror.ErrInvalidReference()
	}
	if p.Status == domain.ExternalPaymentProcessing && p.PartnerID != nil && *p.PartnerID != partnerID {
		return nil, apperror.ErrConflict("cash-in code is being processed by another partner")
	}
	return p, nil
}

func (s *CashInServiceImpl) insert(ctx context.Context, p *domain.ExternalPayment) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.ReleaseStaleCode(ctx, dbTx, p.PaymentCode, s.now()); err != nil {
		return storeErr("release stale code", err)
	}
	if err := s.paymentRepo.Create(ctx, dbTx, p); err != nil {
		if errors.Is(err, domain.ErrCodeTaken) {
			return err
		}
		return storeErr("create external payment", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return storeErr("commit tx", err)
	}
	return nil
}
