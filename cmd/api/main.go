package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-wallet/config"
	httpHandler "delivery-wallet/internal/adapter/http/handler"
	"delivery-wallet/internal/adapter/messaging"
	pgStorage "delivery-wallet/internal/adapter/storage/postgres"
	redisStorage "delivery-wallet/internal/adapter/storage/redis"
	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/internal/service"
	"delivery-wallet/pkg/logger"
	"delivery-wallet/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default ./config.yaml or ./config/config.yaml)")
	migrateOnStart := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Delivery Wallet")

	ctx := context.Background()

	if *migrateOnStart || cfg.Server.MigrateOnStart {
		if err := pgStorage.MigrateUp(cfg.Database.MigrateURL(), log); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	m := metrics.New()

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	topupRepo := pgStorage.NewTopupRepo(pool)
	paymentRepo := pgStorage.NewExternalPaymentRepo(pool)
	cartRepo := pgStorage.NewCartRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	attemptRepo := pgStorage.NewPaymentAttemptRepo(pool)
	partnerRepo := pgStorage.NewPartnerRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool, cfg.Database.LockTimeout)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Event publisher
	var publisher ports.EventPublisher
	switch cfg.Events.Driver {
	case "kafka":
		kafka := messaging.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic, logger.Component(log, "events"))
		defer func() {
			if err := kafka.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Kafka writer")
			}
		}()
		publisher = kafka
	case "none", "":
		publisher = messaging.NewLogPublisher(logger.Component(log, "events"))
	default:
		publisher = redisStorage.NewEventPublisher(rdb, cfg.Events.Channel)
	}
	log.Info().Str("driver", cfg.Events.Driver).Msg("Event publisher ready")

	// Initialize security services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	retry := service.RetryPolicy{
		InitialInterval: cfg.Retry.InitialInterval,
		MaxElapsed:      cfg.Retry.MaxElapsed,
	}
	settlement, err := settlementPolicy(cfg.Settlement)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid settlement configuration")
	}
	fees := domain.NewFeeConfig(
		cfg.Checkout.DeliveryFee,
		cfg.Checkout.ServiceFeeMin,
		cfg.Checkout.ServiceFeeRate,
		cfg.Checkout.TaxRate,
	)

	codes := service.NewCodeGenerator(cfg.Codes.MaxAttempts, cfg.Codes.MaxInsertAttempts, m, logger.Component(log, "codes"))
	walletSvc := service.NewWalletService(walletRepo, ledgerRepo, transactor, cfg.Wallet.Currency, retry, m, logger.Component(log, "wallet"))
	checkoutSvc := service.NewCheckoutService(cartRepo, fees, logger.Component(log, "checkout"))
	topupSvc := service.NewTopupService(topupRepo, walletSvc, transactor, codes, topupPolicy(cfg.Topup), retry, publisher, m, logger.Component(log, "topup"))
	partners := service.NewPartnerDirectory(partnerRepo, cfg.CashIn.PartnerCacheTTL, logger.Component(log, "partners"))
	cashInSvc := service.NewCashInService(paymentRepo, checkoutSvc, walletSvc, partners, transactor, codes, cfg.CashIn.TTL, retry, publisher, m, logger.Component(log, "cashin"))
	paymentSvc := service.NewPaymentService(orderRepo, attemptRepo, checkoutSvc, walletSvc, idempotencyCache, transactor, settlement, retry, publisher, m, logger.Component(log, "settlement"))
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	// Expiry sweeps
	var janitor *service.Janitor
	if cfg.Janitor.Enabled {
		janitor = service.NewJanitor(topupRepo, paymentRepo, m, logger.Component(log, "janitor"))
		if err := janitor.Start(cfg.Janitor.Schedule); err != nil {
			log.Fatal().Err(err).Msg("Failed to start janitor")
		}
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		CheckoutSvc:    checkoutSvc,
		PaymentSvc:     paymentSvc,
		TopupSvc:       topupSvc,
		CashInSvc:      cashInSvc,
		PartnerRepo:    partnerRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Metrics:        m,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if janitor != nil {
		janitor.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func topupPolicy(cfg config.TopupConfig) service.TopupPolicy {
	methods := make(map[string]service.TopupMethod, len(cfg.Methods))
	for name, mc := range cfg.Methods {
		methods[name] = service.TopupMethod{
			Min:          decimal.NewFromFloat(mc.Min),
			Max:          decimal.NewFromFloat(mc.Max),
			Instructions: mc.Instructions,
		}
	}
	return service.TopupPolicy{TTL: cfg.TTL, Methods: methods}
}

func settlementPolicy(cfg config.SettlementConfig) (service.SettlementPolicy, error) {
	policy := service.SettlementPolicy{IdempotencyTTL: cfg.IdempotencyTTL}
	if cfg.PlatformOwnerID == "" {
		return policy, nil
	}
	id, err := uuid.Parse(cfg.PlatformOwnerID)
	if err != nil {
		return policy, fmt.Errorf("platform_owner_id: %w", err)
	}
	policy.PlatformOwnerID = id
	return policy, nil
}
