package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TopupMethod holds the limits and display instructions of one payment method.
type TopupMethod struct {
	Min          decimal.Decimal
	Max          decimal.Decimal
	Instructions string
}

// TopupPolicy configures the top-up lifecycle.
type TopupPolicy struct {
	TTL     time.Duration
	Methods map[string]TopupMethod
}

// TopupServiceImpl implements ports.TopupService.
type TopupServiceImpl struct {
	topupRepo  ports.TopupRepository
	wallet     ports.WalletService
	transactor ports.DBTransactor
	codes      ports.CodeIssuer
	policy     TopupPolicy
	retry      retrier
	events     eventSink
	log        zerolog.Logger
	now        func() time.Time
}

// NewTopupService creates a new TopupServiceImpl.
func NewTopupService(
	topupRepo ports.TopupRepository,
	wallet ports.WalletService,
	transactor ports.DBTransactor,
	codes ports.CodeIssuer,
	policy TopupPolicy,
	retry RetryPolicy,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *TopupServiceImpl {
	if policy.TTL <= 0 {
		policy.TTL = 24 * time.Hour
	}
	return &TopupServiceImpl{
		topupRepo:  topupRepo,
		wallet:     wallet,
		transactor: transactor,
		codes:      codes,
		policy:     policy,
		retry:      newRetrier(retry, m, log),
		events:     newEventSink(publisher, m, log),
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the amount against the method limits and stores a PENDING
// request under a fresh reference code.
func (s *TopupServiceImpl) Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method string) (*ports.TopupCreated, error) {
	method = strings.TrimSpace(strings.ToLower(method))
	m, ok := s.policy.Methods[method]
	if !ok {
		return nil, apperror.Validation(fmt.Sprintf("unsupported top-up method %q", method)).
			WithDetails(map[string]any{"methods": s.methodNames()})
	}
	if !domain.IsPositiveMoney(amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if amount.LessThan(m.Min) || amount.GreaterThan(m.Max) {
		return nil, apperror.Validation("amount is outside the limits of the top-up method").
			WithDetails(map[string]any{
				"min": m.Min.StringFixed(domain.MoneyScale),
				"max": m.Max.StringFixed(domain.MoneyScale),
			})
	}

	now := s.now()
	req := &domain.TopupRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Method:    method,
		Status:    domain.TopupStatusPending,
		ExpiresAt: now.Add(s.policy.TTL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	spec := ports.CodeSpec{Namespace: "topup", Alphabet: domain.CodeAlphabet, Length: domain.ReferenceCodeLength}
	isLive := func(ctx context.Context, code string) (bool, error) {
		return s.topupRepo.IsCodeLive(ctx, code, s.now())
	}
	insert := func(ctx context.Context, code string) error {
		req.ReferenceCode = code
		return s.insert(ctx, req)
	}

	if err := s.retry.do(ctx, "topup.create", func() error {
		_, err := s.codes.Issue(ctx, spec, isLive, insert)
		return err
	}); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("reference", req.ReferenceCode).
		Str("amount", amount.StringFixed(domain.MoneyScale)).
		Str("method", method).
		Msg("top-up requested")
	s.events.emit(ctx, domain.EventTopupRequested, userID, amount, req.ReferenceCode, nil)

	return &ports.TopupCreated{
		Request: req,
		Instructions: fmt.Sprintf("%s Reference: %s. Amount: %s. Valid until %s.",
			m.Instructions, req.ReferenceCode, amount.StringFixed(domain.MoneyScale), req.ExpiresAt.Format(time.RFC3339)),
	}, nil
}

// VerifyAndComplete credits the wallet for a pending request and marks it
// COMPLETED in the same unit. Only the first verification succeeds.
func (s *TopupServiceImpl) VerifyAndComplete(ctx context.Context, referenceCode string, confirmerID uuid.UUID) (*domain.TopupRequest, error) {
	code := normalizeCode(referenceCode)
	if code == "" {
		return nil, apperror.ErrInvalidReference()
	}

	req, mut, err := s.verify(ctx, code)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("reference", code).
		Str("confirmer_id", confirmerID.String()).
		Str("amount", req.Amount.StringFixed(domain.MoneyScale)).
		Msg("top-up completed")
	s.events.emit(ctx, domain.EventTopupCompleted, req.UserID, req.Amount, code, &mut.BalanceAfter)
	return req, nil
}

func (s *TopupServiceImpl) verify(ctx context.Context, code string) (*domain.TopupRequest, *domain.Mutation, error) {
	type outcome struct {
		req *domain.TopupRequest
		mut *domain.Mutation
	}
	out, err := retryValue(ctx, s.retry, "topup.verify", func() (outcome, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return outcome{}, storeErr("begin tx", err)
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		now := s.now()
		req, err := s.topupRepo.GetLiveByReferenceForUpdate(ctx, dbTx, code, now)
		if err != nil {
			return outcome{}, storeErr("lock topup request", err)
		}
		if req == nil {
			return outcome{}, apperror.ErrInvalidReference()
		}

		mut, err := s.wallet.CreditTx(ctx, dbTx, ports.MutationRequest{
			OwnerID: req.UserID,
			Amount:  req.Amount,
			Reference: domain.Reference{
				ID:          req.ID.String(),
				Type:        domain.ReferenceTopupRequest,
				Category:    domain.CategoryTopup,
				Description: "Top-up " + req.ReferenceCode + " via " + req.Method,
			},
		})
		if err != nil {
			return outcome{}, err
		}

		if err := s.topupRepo.MarkCompleted(ctx, dbTx, req.ID, mut.Entry.ID, now); err != nil {
			return outcome{}, storeErr("complete topup request", err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			return outcome{}, storeErr("commit tx", err)
		}

		entryID := mut.Entry.ID
		req.Status = domain.TopupStatusCompleted
		req.CompletedAt = &now
		req.LedgerEntryID = &entryID
		req.UpdatedAt = now
		return outcome{req: req, mut: mut}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out.req, out.mut, nil
}

// Get returns the user's request with its effective status.
func (s *TopupServiceImpl) Get(ctx context.Context, userID uuid.UUID, referenceCode string) (*domain.TopupRequest, error) {
	req, err := s.topupRepo.GetByReference(ctx, normalizeCode(referenceCode))
	if err != nil {
		return nil, storeErr("get topup request", err)
	}
	if req == nil || req.UserID != userID {
		return nil, apperror.ErrNotFound("top-up request")
	}
	req.Status = req.EffectiveStatus(s.now())
	return req, nil
}

// Cancel withdraws a pending, unexpired request.
func (s *TopupServiceImpl) Cancel(ctx context.Context, userID uuid.UUID, referenceCode string) (*domain.TopupRequest, error) {
	code := normalizeCode(referenceCode)
	if _, err := s.Get(ctx, userID, code); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	req, err := s.topupRepo.GetLiveByReferenceForUpdate(ctx, dbTx, code, s.now())
	if err != nil {
		return nil, storeErr("lock topup request", err)
	}
	if req == nil || req.UserID != userID {
		return nil, apperror.ErrConflict("top-up request is no longer pending")
	}
	if err := s.topupRepo.UpdateStatus(ctx, dbTx, req.ID, domain.TopupStatusCancelled); err != nil {
		return nil, storeErr("cancel topup request", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	req.Status = domain.TopupStatusCancelled
	s.log.Info().Str("user_id", userID.String()).Str("reference", code).Msg("top-up cancelled")
	return req, nil
}

// insert runs one insert attempt in its own unit: a stale holder of the
// code is expired first so the live-code index releases it.
func (s *TopupServiceImpl) insert(ctx context.Context, req *domain.TopupRequest) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.topupRepo.ReleaseStaleCode(ctx, dbTx, req.ReferenceCode, s.now()); err != nil {
		return storeErr("release stale code", err)
	}
	if err := s.topupRepo.Create(ctx, dbTx, req); err != nil {
		if errors.Is(err, domain.ErrCodeTaken) {
			return err
		}
		return storeErr("create topup request", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return storeErr("commit tx", err)
	}
	return nil
}

func (s *TopupServiceImpl) methodNames() []string {
	names := make([]string, 0, len(s.policy.Methods))
	for name := range s.policy.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
