package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxResourceID lets a handler name the record it created when the route
// carries no identifying path parameter.
const CtxResourceID = "resource_id"

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string
}

var auditRoutes = map[string]auditRoute{
	"POST /api/v1/topups":                           {domain.AuditActionTopupCreate, "topup_request", ""},
	"POST /api/v1/topups/:reference/cancel":         {domain.AuditActionTopupCancel, "topup_request", "reference"},
	"POST /api/v1/partner/topups/verify":            {domain.AuditActionTopupVerify, "topup_request", ""},
	"POST /api/v1/cashin/codes":                     {domain.AuditActionCashInCode, "external_payment", ""},
	"POST /api/v1/cashin/codes/:code/cancel":        {domain.AuditActionCashInCancel, "external_payment", "code"},
	"POST /api/v1/partner/cashin/:code/redeem":      {domain.AuditActionCashInRedeem, "external_payment", "code"},
	"POST /api/v1/checkout/:cart_id/pay":            {domain.AuditActionPayment, "cart", "cart_id"},
	"POST /api/v1/ops/wallets/:owner_id/deactivate": {domain.AuditActionDeactivate, "wallet", "owner_id"},
}

// AuditLog creates an audit middleware that logs successful money-moving requests.
// Routes are matched on their registered template, not the raw path.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < http.StatusOK || c.Writer.Status() >= http.StatusMultipleChoices {
			return
		}

		route, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if route.param != "" {
			resourceID = c.Param(route.param)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID(c),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(method, fullPath string) (auditRoute, bool) {
	route, ok := auditRoutes[method+" "+fullPath]
	return route, ok
}

// actorID is the partner for partner routes, else the authenticated user.
func actorID(c *gin.Context) *uuid.UUID {
	for _, key := range []string{CtxPartnerID, CtxUserID} {
		if v, exists := c.Get(key); exists {
			if id, ok := v.(uuid.UUID); ok {
				return &id
			}
		}
	}
	return nil
}
