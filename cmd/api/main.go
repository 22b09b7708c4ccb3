package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/config"
	"github.com/dafibh/lendbook/lendbook-backend/internal/handler"
	"github.com/dafibh/lendbook/lendbook-backend/internal/middleware"
	"github.com/dafibh/lendbook/lendbook-backend/internal/repository/postgres"
	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Lendbook API
// @version 1.0
// @description Money-lending ledger with chit-fund interest adjustment
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token from /auth/login, as "Bearer <token>"
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.AppPIN == config.DevelopmentPIN {
		log.Warn().Msg("Using the development PIN; set APP_PIN before exposing this server")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	if cfg.AutoMigrate {
		if err := postgres.Migrate(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		log.Info().Msg("Schema applied")
	}

	// Initialize repositories
	tx := postgres.NewTransactor(pool)
	borrowerRepo := postgres.NewBorrowerRepository(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	chitGroupRepo := postgres.NewChitGroupRepository(pool)
	linkRepo := postgres.NewBorrowerChitLinkRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	directRepo := postgres.NewDirectChitPaymentRepository(pool)
	individualChitRepo := postgres.NewIndividualChitRepository(pool)

	// Live update hub
	hub := websocket.NewHub()

	// Initialize services
	authService, err := service.NewAuthService(cfg.AppPIN, cfg.SessionTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	loanService := service.NewLoanService(tx, borrowerRepo, loanRepo, paymentRepo)
	chitService := service.NewChitService(tx, borrowerRepo, chitGroupRepo, linkRepo, adjustmentRepo, directRepo)
	adjustmentService := service.NewAdjustmentService(tx, service.AdjustmentRepos{
		Borrowers:      borrowerRepo,
		Loans:          loanRepo,
		Payments:       paymentRepo,
		ChitGroups:     chitGroupRepo,
		Links:          linkRepo,
		Adjustments:    adjustmentRepo,
		DirectPayments: directRepo,
		Schedules:      individualChitRepo,
	})
	individualChitService := service.NewIndividualChitService(tx, borrowerRepo, individualChitRepo)
	reportService := service.NewReportService(borrowerRepo, loanRepo, paymentRepo)

	loanService.SetEventPublisher(hub)
	chitService.SetEventPublisher(hub)
	adjustmentService.SetEventPublisher(hub)
	individualChitService.SetEventPublisher(hub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Loan:           handler.NewLoanHandler(loanService),
		Report:         handler.NewReportHandler(reportService),
		ChitGroup:      handler.NewChitGroupHandler(chitService),
		Adjustment:     handler.NewAdjustmentHandler(adjustmentService),
		IndividualChit: handler.NewIndividualChitHandler(individualChitService, adjustmentService),
		WebSocket:      handler.NewWebSocketHandler(hub, authService, cfg.CORSOrigins),
		Health:         handler.NewHealthHandler(pool),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging and metrics
	e.Use(middleware.RequestLogger())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Register routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hub.CloseAll()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
