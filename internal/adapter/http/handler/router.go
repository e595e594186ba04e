package handler

import (
	"delivery-wallet/internal/adapter/http/middleware"
	redisStore "delivery-wallet/internal/adapter/storage/redis"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// OpsRole is the token role allowed on operator routes.
const OpsRole = "ops"

const maxBodyBytes = 1 << 20 // 1 MB

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	CheckoutSvc    ports.CheckoutService
	PaymentSvc     ports.PaymentService
	TopupSvc       ports.TopupService
	CashInSvc      ports.CashInService
	PartnerRepo    ports.PartnerRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = no /metrics route
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Deep health check: PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc, deps.PaymentSvc)
	topupHandler := NewTopupHandler(deps.TopupSvc)
	cashInHandler := NewCashInHandler(deps.CashInSvc)
	opsHandler := NewOpsHandler(deps.WalletSvc)

	// --- JWT-authenticated routes (customers) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("", rl("wallet_read"), walletHandler.GetBalance)
		wallet.GET("/ledger", rl("wallet_read"), walletHandler.ListLedger)
	}

	checkout := v1.Group("/checkout/:cart_id", jwtAuth)
	{
		checkout.GET("/totals", rl("wallet_read"), checkoutHandler.Totals)
		checkout.POST("/pay", rl("checkout_pay"), checkoutHandler.Pay)
	}

	topups := v1.Group("/topups", jwtAuth, rl("topups"))
	{
		topups.POST("", topupHandler.Create)
		topups.GET("/:reference", topupHandler.Get)
		topups.POST("/:reference/cancel", topupHandler.Cancel)
	}

	cashin := v1.Group("/cashin/codes", jwtAuth, rl("cashin_codes"))
	{
		cashin.POST("", cashInHandler.GenerateCode)
		cashin.POST("/:code/cancel", cashInHandler.Cancel)
	}

	// --- HMAC-authenticated routes (partner agents) ---
	hmacAuth := middleware.HMACAuth(deps.PartnerRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	partner := v1.Group("/partner", rl("partner"), hmacAuth)
	{
		partner.POST("/topups/verify", topupHandler.Verify)
		partner.GET("/cashin/:code", cashInHandler.Lookup)
		partner.POST("/cashin/:code/claim", cashInHandler.Claim)
		partner.POST("/cashin/:code/redeem", cashInHandler.Redeem)
	}

	// --- Operator routes ---
	ops := v1.Group("/ops", jwtAuth, middleware.RequireRole(OpsRole), rl("ops"))
	{
		ops.GET("/wallets/:owner_id/reconcile", opsHandler.Reconcile)
		ops.POST("/wallets/:owner_id/deactivate", opsHandler.Deactivate)
	}

	return r
}
