package handler

import (
	"github.com/dafibh/lendbook/lendbook-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles every HTTP handler RegisterRoutes mounts
type Handlers struct {
	Auth           *AuthHandler
	Loan           *LoanHandler
	Report         *ReportHandler
	ChitGroup      *ChitGroupHandler
	Adjustment     *AdjustmentHandler
	IndividualChit *IndividualChitHandler
	WebSocket      *WebSocketHandler
	Health         *HealthHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	// Unauthenticated infrastructure endpoints
	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", h.WebSocket.HandleWS)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Auth routes (login is public)
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout, authMiddleware.Authenticate())

	// Everything else requires a session
	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())

	// Loan routes
	loans := protected.Group("/loans")
	loans.GET("", h.Loan.ListLoans)
	loans.POST("", h.Loan.CreateLoan)
	loans.GET("/summary", h.Report.GetLoanSummary)
	loans.GET("/:id", h.Loan.GetLoan)
	loans.PUT("/:id", h.Loan.UpdateLoan)
	loans.POST("/:id/close", h.Loan.CloseLoan)
	loans.GET("/:id/interest-due", h.Loan.GetInterestDue)
	loans.GET("/:id/pending-interest", h.Loan.GetPendingInterest)
	loans.GET("/:id/payments", h.Loan.ListPayments)
	loans.GET("/:id/reconcile", h.Loan.ReconcileLoan)

	protected.POST("/payments", h.Loan.CreatePayment)
	protected.GET("/borrowers", h.Loan.ListBorrowers)

	// Report routes
	protected.GET("/person-history/:name", h.Report.GetPersonHistory)
	protected.GET("/recent-payments", h.Report.GetRecentPayments)
	protected.GET("/monthly-report", h.Report.GetMonthlyReport)

	// Chit group routes
	chitGroups := protected.Group("/chit-groups")
	chitGroups.GET("", h.ChitGroup.ListChitGroups)
	chitGroups.POST("", h.ChitGroup.CreateChitGroup)
	chitGroups.GET("/:id", h.ChitGroup.GetChitGroup)
	chitGroups.PUT("/:id", h.ChitGroup.UpdateChitGroup)
	chitGroups.POST("/:id/close", h.ChitGroup.CloseChitGroup)

	links := protected.Group("/borrower-chit-links")
	links.GET("", h.ChitGroup.ListLinks)
	links.POST("", h.ChitGroup.CreateLink)
	links.DELETE("/:borrowerId/:chitId", h.ChitGroup.DeleteLink)

	protected.GET("/chit-month-view/:borrowerId/:chitId/:month", h.ChitGroup.GetChitMonthView)
	protected.GET("/borrower-chit-summary/:borrowerId", h.ChitGroup.GetBorrowerChitSummary)

	// Adjustment routes
	adjustments := protected.Group("/adjustments")
	adjustments.GET("", h.Adjustment.ListAdjustments)
	adjustments.POST("", h.Adjustment.CreateAdjustment)
	adjustments.POST("/validate", h.Adjustment.ValidateAdjustment)
	adjustments.GET("/:id", h.Adjustment.GetAdjustment)
	adjustments.POST("/:id/reverse", h.Adjustment.ReverseAdjustment)

	directPayments := protected.Group("/direct-chit-payments")
	directPayments.GET("", h.Adjustment.ListDirectChitPayments)
	directPayments.POST("", h.Adjustment.CreateDirectChitPayment)

	protected.GET("/interest-view/:borrowerId/:month", h.Adjustment.GetInterestView)

	// Individual chit routes
	chits := protected.Group("/chits")
	chits.GET("", h.IndividualChit.ListIndividualChits)
	chits.POST("", h.IndividualChit.CreateIndividualChit)
	chits.GET("/:id", h.IndividualChit.GetIndividualChit)
	chits.PUT("/:id", h.IndividualChit.UpdateIndividualChit)
	chits.POST("/:id/close", h.IndividualChit.CloseIndividualChit)

	protected.GET("/pending-chit-dues", h.IndividualChit.ListPendingDues)
	protected.POST("/chit-schedule/:lineId/pay", h.IndividualChit.PayScheduleLine)
	protected.POST("/chit-schedule/:lineId/adjust", h.IndividualChit.AdjustScheduleLine)
	protected.GET("/out-of-pocket-payments", h.IndividualChit.ListOutOfPocket)
}
