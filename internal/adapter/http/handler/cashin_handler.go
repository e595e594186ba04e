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

// CashInHandler handles cash-in codes for users and partner agents.
type CashInHandler struct {
	cashInSvc ports.CashInService
}

// NewCashInHandler creates a new CashInHandler.
func NewCashInHandler(cashInSvc ports.CashInService) *CashInHandler {
	return &CashInHandler{cashInSvc: cashInSvc}
}

// GenerateCode handles POST /api/v1/cashin/codes.
func (h *CashInHandler) GenerateCode(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CashInCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		response.Error(c, apperror.Validation("cart_id must be a UUID"))
		return
	}
	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	issued, err := h.cashInSvc.GenerateCode(c.Request.Context(), ports.CashInCodeRequest{
		UserID: userID,
		CartID: cartID,
		Amount: amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, issued.Payment.PaymentCode)
	resp := toCashInResponse(issued.Payment)
	resp.WalletBalanceAtRequest = money(issued.Payment.WalletBalanceAtRequest)
	resp.Partners = make([]dto.PartnerResponse, 0, len(issued.Partners))
	for _, p := range issued.Partners {
		resp.Partners = append(resp.Partners, dto.PartnerResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Location: p.Location,
		})
	}
	response.Created(c, resp)
}

// Cancel handles POST /api/v1/cashin/codes/:code/cancel.
func (h *CashInHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	code, err := codeParam(c, "code")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.cashInSvc.Cancel(c.Request.Context(), userID, code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCashInResponse(p))
}

// Lookup handles GET /api/v1/partner/cashin/:code.
func (h *CashInHandler) Lookup(c *gin.Context) {
	h.partnerAction(c, func(code string, _ uuid.UUID) (*domain.ExternalPayment, error) {
		return h.cashInSvc.Lookup(c.Request.Context(), code)
	})
}

// Claim handles POST /api/v1/partner/cashin/:code/claim.
func (h *CashInHandler) Claim(c *gin.Context) {
	h.partnerAction(c, func(code string, partnerID uuid.UUID) (*domain.ExternalPayment, error) {
		return h.cashInSvc.Claim(c.Request.Context(), code, partnerID)
	})
}

// Redeem handles POST /api/v1/partner/cashin/:code/redeem.
func (h *CashInHandler) Redeem(c *gin.Context) {
	h.partnerAction(c, func(code string, partnerID uuid.UUID) (*domain.ExternalPayment, error) {
		return h.cashInSvc.Redeem(c.Request.Context(), code, partnerID)
	})
}

func (h *CashInHandler) partnerAction(c *gin.Context, fn func(code string, partnerID uuid.UUID) (*domain.ExternalPayment, error)) {
	partnerID, ok := currentPartner(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}
	code, err := codeParam(c, "code")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := fn(code, partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCashInResponse(p))
}

func toCashInResponse(p *domain.ExternalPayment) dto.CashInResponse {
	return dto.CashInResponse{
		PaymentCode: p.PaymentCode,
		CartID:      p.CartID.String(),
		Amount:      money(p.Amount),
		Status:      string(p.EffectiveStatus(time.Now())),
		ExpiresAt:   timestamp(p.ExpiresAt),
		CompletedAt: optionalTimestamp(p.CompletedAt),
	}
}
