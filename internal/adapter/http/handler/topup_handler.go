package handler

import (
	"delivery-wallet/internal/adapter/http/dto"
	"delivery-wallet/internal/adapter/http/middleware"
	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// TopupHandler handles the top-up request lifecycle.
type TopupHandler struct {
	topupSvc ports.TopupService
}

// NewTopupHandler creates a new TopupHandler.
func NewTopupHandler(topupSvc ports.TopupService) *TopupHandler {
	return &TopupHandler{topupSvc: topupSvc}
}

// Create handles POST /api/v1/topups.
func (h *TopupHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TopupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	created, err := h.topupSvc.Create(c.Request.Context(), userID, *req.Amount, req.Method)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, created.Request.ReferenceCode)
	resp := toTopupResponse(created.Request)
	resp.Instructions = created.Instructions
	response.Created(c, resp)
}

// Get handles GET /api/v1/topups/:reference.
func (h *TopupHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	code, err := codeParam(c, "reference")
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.topupSvc.Get(c.Request.Context(), userID, code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTopupResponse(req))
}

// Cancel handles POST /api/v1/topups/:reference/cancel.
func (h *TopupHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	code, err := codeParam(c, "reference")
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.topupSvc.Cancel(c.Request.Context(), userID, code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTopupResponse(req))
}

// Verify handles POST /api/v1/partner/topups/verify, called by the partner
// that received the external transfer.
func (h *TopupHandler) Verify(c *gin.Context) {
	partnerID, ok := currentPartner(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	var req dto.VerifyTopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	completed, err := h.topupSvc.VerifyAndComplete(c.Request.Context(), req.ReferenceCode, partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, completed.ReferenceCode)
	response.OK(c, toTopupResponse(completed))
}

func toTopupResponse(t *domain.TopupRequest) dto.TopupResponse {
	return dto.TopupResponse{
		ID:            t.ID.String(),
		ReferenceCode: t.ReferenceCode,
		Amount:        money(t.Amount),
		Method:        t.Method,
		Status:        string(t.Status),
		ExpiresAt:     timestamp(t.ExpiresAt),
		CompletedAt:   optionalTimestamp(t.CompletedAt),
		CreatedAt:     timestamp(t.CreatedAt),
	}
}
