package handler

import (
	"net/http"

	"delivery-wallet/internal/adapter/http/dto"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// OpsHandler serves operator endpoints.
type OpsHandler struct {
	walletSvc ports.WalletService
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(walletSvc ports.WalletService) *OpsHandler {
	return &OpsHandler{walletSvc: walletSvc}
}

// Reconcile handles GET /api/v1/ops/wallets/:owner_id/reconcile.
func (h *OpsHandler) Reconcile(c *gin.Context) {
	ownerID, err := uuidParam(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.walletSvc.Reconcile(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReconciliationResponse{
		OwnerID:   rec.OwnerID.String(),
		Balance:   money(rec.Balance),
		LedgerSum: money(rec.LedgerSum),
		Entries:   rec.Entries,
		Drift:     money(rec.Drift),
		Balanced:  rec.Balanced,
	})
}

// Deactivate handles POST /api/v1/ops/wallets/:owner_id/deactivate.
func (h *OpsHandler) Deactivate(c *gin.Context) {
	ownerID, err := uuidParam(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.walletSvc.Deactivate(c.Request.Context(), ownerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletStatusResponse{OwnerID: ownerID.String(), IsActive: false})
}

// HealthCheck handles GET /health by pinging every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
