package handler

import (
	"delivery-wallet/internal/adapter/http/dto"
	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler prices carts and pays them from the wallet.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
	paymentSvc  ports.PaymentService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService, paymentSvc ports.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, paymentSvc: paymentSvc}
}

// Totals handles GET /api/v1/checkout/:cart_id/totals.
func (h *CheckoutHandler) Totals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	cartID, err := uuidParam(c, "cart_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	totals, err := h.checkoutSvc.Totals(c.Request.Context(), userID, cartID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTotalsResponse(*totals))
}

// Pay handles POST /api/v1/checkout/:cart_id/pay. Paying an already settled
// cart returns the original settlement with replayed=true.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	cartID, err := uuidParam(c, "cart_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.paymentSvc.Process(c.Request.Context(), userID, cartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.SettlementResponse{
		OrderID:    result.OrderID.String(),
		AttemptID:  result.AttemptID.String(),
		NewBalance: money(result.NewBalance),
		Totals:     toTotalsResponse(result.Totals),
		Replayed:   result.Replayed,
	}
	if result.Replayed {
		response.OK(c, resp)
		return
	}
	response.Created(c, resp)
}

func toTotalsResponse(t domain.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:         money(t.Subtotal),
		Discount:         money(t.Discount),
		AdjustedSubtotal: money(t.AdjustedSubtotal),
		DeliveryFee:      money(t.DeliveryFee),
		ServiceFee:       money(t.ServiceFee),
		Tax:              money(t.Tax),
		Total:            money(t.Total),
	}
}
