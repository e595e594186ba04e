package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delivery-wallet/internal/adapter/http/middleware"
	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/internal/core/ports/mocks"
	"delivery-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func asUser(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.CtxUserID, userID)
}

func asPartner(c *gin.Context, partnerID uuid.UUID) {
	c.Set(middleware.CtxPartnerID, partnerID)
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalEq matches a decimal.Decimal by value, ignoring its scale.
type decimalEq struct{ want decimal.Decimal }

func decEq(s string) gomock.Matcher { return decimalEq{want: dec(s)} }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "equals " + m.want.String() }

// --- Wallet Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().GetBalance(gomock.Any(), userID).Return(dec("139.8"), "USD", nil)

	c, w := newContext(http.MethodGet, "/api/v1/wallet", nil)
	asUser(c, userID)
	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "139.80", data["balance"])
	assert.Equal(t, "USD", data["currency"])
	assert.Equal(t, userID.String(), data["owner_id"])
}

func TestGetBalance_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/wallet", nil)
	h.GetBalance(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListLedger_MapsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := domain.LedgerEntry{
		ID:            uuid.New(),
		OwnerID:       userID,
		Direction:     domain.DirectionDebit,
		Amount:        dec("139.8"),
		BalanceBefore: dec("200"),
		BalanceAfter:  dec("60.2"),
		Category:      domain.CategoryPayment,
		ReferenceID:   uuid.NewString(),
		ReferenceType: domain.ReferenceOrder,
		Status:        domain.LedgerStatusCompleted,
		CreatedAt:     from.Add(time.Hour),
	}

	mockWallet.EXPECT().ListLedger(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
			assert.Equal(t, userID, p.OwnerID)
			require.NotNil(t, p.Direction)
			assert.Equal(t, domain.DirectionDebit, *p.Direction)
			require.NotNil(t, p.Category)
			assert.Equal(t, domain.CategoryPayment, *p.Category)
			assert.Nil(t, p.ReferenceType)
			require.NotNil(t, p.From)
			assert.True(t, from.Equal(*p.From))
			assert.Nil(t, p.To)
			assert.Equal(t, ports.LedgerSortAmount, p.SortBy)
			assert.False(t, p.Descending)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 10, p.PageSize)
			return []domain.LedgerEntry{entry}, 11, nil
		},
	)

	c, w := newContext(http.MethodGet,
		"/api/v1/wallet/ledger?direction=DEBIT&category=PAYMENT&from=2026-01-01T00:00:00Z&sort_by=amount&order=asc&page=2&page_size=10", nil)
	asUser(c, userID)
	h.ListLedger(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(2), data["page"])
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "139.80", item["amount"])
	assert.Equal(t, "60.20", item["balance_after"])
	assert.Equal(t, "DEBIT", item["direction"])
}

func TestListLedger_RejectsUnknownSortField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/wallet/ledger?sort_by=balance_after", nil)
	asUser(c, uuid.New())
	h.ListLedger(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeErrorCode(t, w))
}

func TestListLedger_RejectsBadTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	c, w := newContext(http.MethodGet, "/api/v1/wallet/ledger?to=yesterday", nil)
	asUser(c, uuid.New())
	h.ListLedger(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Checkout Handler Tests ---

func TestTotals_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCheckout := mocks.NewMockCheckoutService(ctrl)
	h := NewCheckoutHandler(mockCheckout, mocks.NewMockPaymentService(ctrl))

	userID, cartID := uuid.New(), uuid.New()
	mockCheckout.EXPECT().Totals(gomock.Any(), userID, cartID).Return(&domain.Totals{
		Subtotal:         dec("100"),
		Discount:         dec("0"),
		AdjustedSubtotal: dec("100"),
		DeliveryFee:      dec("15"),
		ServiceFee:       dec("5"),
		Tax:              dec("19.8"),
		Total:            dec("139.8"),
	}, nil)

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "cart_id", Value: cartID.String()}}
	asUser(c, userID)
	h.Totals(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "139.80", data["total"])
	assert.Equal(t, "19.80", data["tax"])
	assert.Equal(t, "0.00", data["discount"])
}

func TestTotals_BadCartID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCheckoutHandler(mocks.NewMockCheckoutService(ctrl), mocks.NewMockPaymentService(ctrl))

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "cart_id", Value: "nope"}}
	asUser(c, uuid.New())
	h.Totals(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPay_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayment := mocks.NewMockPaymentService(ctrl)
	h := NewCheckoutHandler(mocks.NewMockCheckoutService(ctrl), mockPayment)

	userID, cartID := uuid.New(), uuid.New()
	result := &domain.SettlementResult{
		OrderID:    uuid.New(),
		AttemptID:  uuid.New(),
		NewBalance: dec("60.2"),
		Totals:     domain.Totals{Total: dec("139.8")},
	}
	mockPayment.EXPECT().Process(gomock.Any(), userID, cartID).Return(result, nil)

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "cart_id", Value: cartID.String()}}
	asUser(c, userID)
	h.Pay(c)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, result.OrderID.String(), data["order_id"])
	assert.Equal(t, "60.20", data["new_balance"])
	assert.Equal(t, false, data["replayed"])
}

func TestPay_ReplayedReturnsOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayment := mocks.NewMockPaymentService(ctrl)
	h := NewCheckoutHandler(mocks.NewMockCheckoutService(ctrl), mockPayment)

	userID, cartID := uuid.New(), uuid.New()
	mockPayment.EXPECT().Process(gomock.Any(), userID, cartID).Return(&domain.SettlementResult{
		OrderID:  uuid.New(),
		Replayed: true,
	}, nil)

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "cart_id", Value: cartID.String()}}
	asUser(c, userID)
	h.Pay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["replayed"])
}

func TestPay_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayment := mocks.NewMockPaymentService(ctrl)
	h := NewCheckoutHandler(mocks.NewMockCheckoutService(ctrl), mockPayment)

	mockPayment.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "cart_id", Value: uuid.NewString()}}
	asUser(c, uuid.New())
	h.Pay(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "PAY_001", decodeErrorCode(t, w))
}

// --- Top-up Handler Tests ---

func TestTopupCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTopup := mocks.NewMockTopupService(ctrl)
	h := NewTopupHandler(mockTopup)

	userID := uuid.New()
	now := time.Now().UTC()
	mockTopup.EXPECT().Create(gomock.Any(), userID, decEq("250.50"), "bank_transfer").Return(&ports.TopupCreated{
		Request: &domain.TopupRequest{
			ID:            uuid.New(),
			UserID:        userID,
			Amount:        dec("250.5"),
			Method:        "bank_transfer",
			ReferenceCode: "QRST2345",
			Status:        domain.TopupStatusPending,
			ExpiresAt:     now.Add(24 * time.Hour),
			CreatedAt:     now,
		},
		Instructions: "Quote the reference code.",
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/topups", []byte(`{"amount":"250.50","method":"bank_transfer"}`))
	asUser(c, userID)
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "QRST2345", data["reference_code"])
	assert.Equal(t, "250.50", data["amount"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "Quote the reference code.", data["instructions"])
	assert.Equal(t, "QRST2345", c.GetString(middleware.CtxResourceID))
}

func TestTopupCreate_MissingAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTopupHandler(mocks.NewMockTopupService(ctrl))

	c, w := newContext(http.MethodPost, "/api/v1/topups", []byte(`{"method":"bank_transfer"}`))
	asUser(c, uuid.New())
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeErrorCode(t, w))
}

func TestTopupGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTopup := mocks.NewMockTopupService(ctrl)
	h := NewTopupHandler(mockTopup)

	userID := uuid.New()
	mockTopup.EXPECT().Get(gomock.Any(), userID, "QRST2345").Return(nil, apperror.ErrNotFound("top-up request"))

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "reference", Value: "QRST2345"}}
	asUser(c, userID)
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopupGet_MalformedReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTopupHandler(mocks.NewMockTopupService(ctrl))

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "reference", Value: "not-a-code!"}}
	asUser(c, uuid.New())
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopupVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTopup := mocks.NewMockTopupService(ctrl)
	h := NewTopupHandler(mockTopup)

	partnerID := uuid.New()
	done := time.Now().UTC()
	mockTopup.EXPECT().VerifyAndComplete(gomock.Any(), "QRST2345", partnerID).Return(&domain.TopupRequest{
		ID:            uuid.New(),
		Amount:        dec("100"),
		ReferenceCode: "QRST2345",
		Status:        domain.TopupStatusCompleted,
		CompletedAt:   &done,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/partner/topups/verify", []byte(`{"reference_code":"QRST2345"}`))
	asPartner(c, partnerID)
	h.Verify(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "COMPLETED", data["status"])
	assert.NotEmpty(t, data["completed_at"])
}

func TestTopupVerify_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTopup := mocks.NewMockTopupService(ctrl)
	h := NewTopupHandler(mockTopup)

	mockTopup.EXPECT().VerifyAndComplete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidReference())

	c, w := newContext(http.MethodPost, "/api/v1/partner/topups/verify", []byte(`{"reference_code":"QRST2345"}`))
	asPartner(c, uuid.New())
	h.Verify(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TOP_001", decodeErrorCode(t, w))
}

func TestTopupVerify_RequiresPartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTopupHandler(mocks.NewMockTopupService(ctrl))

	c, w := newContext(http.MethodPost, "/api/v1/partner/topups/verify", []byte(`{"reference_code":"QRST2345"}`))
	h.Verify(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Cash-in Handler Tests ---

func TestGenerateCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	userID, cartID := uuid.New(), uuid.New()
	mockCashIn.EXPECT().GenerateCode(gomock.Any(), ports.CashInCodeRequest{
		UserID: userID,
		CartID: cartID,
		Amount: decimal.Zero,
	}).Return(&ports.CashInCode{
		Payment: &domain.ExternalPayment{
			PaymentCode:            "AB23",
			UserID:                 userID,
			CartID:                 cartID,
			Amount:                 dec("139.8"),
			WalletBalanceAtRequest: dec("20"),
			Status:                 domain.ExternalPaymentPending,
			ExpiresAt:              time.Now().Add(30 * time.Minute),
		},
		Partners: []domain.Partner{{ID: uuid.New(), Name: "Corner Shop", Location: "Main St"}},
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/cashin/codes", []byte(`{"cart_id":"`+cartID.String()+`"}`))
	asUser(c, userID)
	h.GenerateCode(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "AB23", data["payment_code"])
	assert.Equal(t, "139.80", data["amount"])
	assert.Equal(t, "20.00", data["wallet_balance_at_request"])
	assert.Equal(t, "PENDING", data["status"])
	partners := data["partners"].([]interface{})
	require.Len(t, partners, 1)
	assert.Equal(t, "Corner Shop", partners[0].(map[string]interface{})["name"])
}

func TestGenerateCode_AmountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	mockCashIn.EXPECT().GenerateCode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CashInCodeRequest) (*ports.CashInCode, error) {
			assert.True(t, req.Amount.Equal(dec("99.99")))
			return nil, apperror.Validation("amount does not match the checkout total")
		},
	)

	c, w := newContext(http.MethodPost, "/api/v1/cashin/codes",
		[]byte(`{"cart_id":"`+uuid.NewString()+`","amount":"99.99"}`))
	asUser(c, uuid.New())
	h.GenerateCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCashInLookup_HidesBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	mockCashIn.EXPECT().Lookup(gomock.Any(), "AB23").Return(&domain.ExternalPayment{
		PaymentCode:            "AB23",
		Amount:                 dec("139.8"),
		WalletBalanceAtRequest: dec("20"),
		Status:                 domain.ExternalPaymentPending,
		ExpiresAt:              time.Now().Add(10 * time.Minute),
	}, nil)

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "code", Value: "AB23"}}
	asPartner(c, uuid.New())
	h.Lookup(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "139.80", data["amount"])
	assert.NotContains(t, data, "wallet_balance_at_request")
}

func TestCashInClaim_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	partnerID := uuid.New()
	mockCashIn.EXPECT().Claim(gomock.Any(), "AB23", partnerID).Return(nil, apperror.ErrConflict("code is being processed by another partner"))

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "code", Value: "AB23"}}
	asPartner(c, partnerID)
	h.Claim(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCashInRedeem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	partnerID := uuid.New()
	done := time.Now().UTC()
	mockCashIn.EXPECT().Redeem(gomock.Any(), "AB23", partnerID).Return(&domain.ExternalPayment{
		PaymentCode: "AB23",
		Amount:      dec("139.8"),
		Status:      domain.ExternalPaymentCompleted,
		PartnerID:   &partnerID,
		ExpiresAt:   done.Add(-time.Minute),
		CompletedAt: &done,
	}, nil)

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "code", Value: "AB23"}}
	asPartner(c, partnerID)
	h.Redeem(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "COMPLETED", decodeData(t, w)["status"])
}

func TestCashInCancel_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCashIn := mocks.NewMockCashInService(ctrl)
	h := NewCashInHandler(mockCashIn)

	mockCashIn.EXPECT().Cancel(gomock.Any(), gomock.Any(), "AB23").Return(nil, errors.New("boom"))

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "code", Value: "AB23"}}
	asUser(c, uuid.New())
	h.Cancel(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Ops Handler Tests ---

func TestReconcile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewOpsHandler(mockWallet)

	ownerID := uuid.New()
	mockWallet.EXPECT().Reconcile(gomock.Any(), ownerID).Return(&ports.Reconciliation{
		OwnerID:   ownerID,
		Balance:   dec("10"),
		LedgerSum: dec("10"),
		Entries:   3,
		Drift:     decimal.Zero,
		Balanced:  true,
	}, nil)

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "owner_id", Value: ownerID.String()}}
	h.Reconcile(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "10.00", data["balance"])
	assert.Equal(t, "0.00", data["drift"])
	assert.Equal(t, true, data["balanced"])
	assert.Equal(t, float64(3), data["entries"])
}

func TestDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewOpsHandler(mockWallet)

	ownerID := uuid.New()
	mockWallet.EXPECT().Deactivate(gomock.Any(), ownerID).Return(nil)

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "owner_id", Value: ownerID.String()}}
	h.Deactivate(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, ownerID.String(), data["owner_id"])
	assert.Equal(t, false, data["is_active"])
}

func TestDeactivate_UnknownWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewOpsHandler(mockWallet)

	mockWallet.EXPECT().Deactivate(gomock.Any(), gomock.Any()).Return(apperror.ErrNotFound("wallet"))

	c, w := newContext(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "owner_id", Value: uuid.NewString()}}
	h.Deactivate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ok := mocks.NewMockHealthChecker(ctrl)
	ok.EXPECT().Ping(gomock.Any()).Return(nil)
	ok.EXPECT().Name().Return("postgres").AnyTimes()
	down := mocks.NewMockHealthChecker(ctrl)
	down.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	down.EXPECT().Name().Return("redis").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(ok, down)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
	assert.Equal(t, "healthy", deps["postgres"].(map[string]interface{})["status"])
}

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
	assert.Contains(t, w.Body.String(), "/api/v1/checkout/{cart_id}/pay")
}
