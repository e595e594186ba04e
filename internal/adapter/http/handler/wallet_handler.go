package handler

import (
	"time"

	"delivery-wallet/internal/adapter/http/dto"
	"delivery-wallet/internal/adapter/http/middleware"
	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletHandler handles wallet balance and ledger endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/wallet.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, currency, err := h.walletSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		OwnerID:  userID.String(),
		Balance:  money(balance),
		Currency: currency,
	})
}

// ListLedger handles GET /api/v1/wallet/ledger.
func (h *WalletHandler) ListLedger(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var q dto.LedgerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params, err := ledgerParams(userID, q)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, total, err := h.walletSvc.ListLedger(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toLedgerEntryResponse(&entries[i]))
	}
	response.Paginated(c, items, total, pageOr(q.Page, 1), pageOr(q.PageSize, defaultPageSize))
}

const defaultPageSize = 20

func pageOr(v, def int) int {
	if v < 1 {
		return def
	}
	return v
}

func ledgerParams(ownerID uuid.UUID, q dto.LedgerQuery) (ports.LedgerListParams, error) {
	params := ports.LedgerListParams{
		OwnerID:    ownerID,
		SortBy:     ports.LedgerSortField(q.SortBy),
		Descending: q.Order != "asc",
		Page:       pageOr(q.Page, 1),
		PageSize:   pageOr(q.PageSize, defaultPageSize),
	}
	if q.Direction != "" {
		d := domain.Direction(q.Direction)
		params.Direction = &d
	}
	if q.Category != "" {
		cat := domain.LedgerCategory(q.Category)
		params.Category = &cat
	}
	if q.ReferenceType != "" {
		rt := domain.ReferenceType(q.ReferenceType)
		params.ReferenceType = &rt
	}
	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return params, apperror.Validation("from must be an RFC 3339 timestamp")
		}
		params.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return params, apperror.Validation("to must be an RFC 3339 timestamp")
		}
		params.To = &to
	}
	return params, nil
}

// currentUser returns the authenticated user set by JWTAuth.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// currentPartner returns the authenticated partner set by HMACAuth.
func currentPartner(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxPartnerID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(name + " must be a UUID")
	}
	return id, nil
}

func codeParam(c *gin.Context, name string) (string, error) {
	code := c.Param(name)
	if !dto.IsCode(code) {
		return "", apperror.Validation(name + " is not a valid code")
	}
	return code, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyScale)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timestamp(*t)
	return &s
}

func toLedgerEntryResponse(e *domain.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:            e.ID.String(),
		Direction:     string(e.Direction),
		Amount:        money(e.Amount),
		BalanceBefore: money(e.BalanceBefore),
		BalanceAfter:  money(e.BalanceAfter),
		Category:      string(e.Category),
		ReferenceID:   e.ReferenceID,
		ReferenceType: string(e.ReferenceType),
		Status:        string(e.Status),
		Description:   e.Description,
		CreatedAt:     timestamp(e.CreatedAt),
	}
}
