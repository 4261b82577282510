package handler

import (
	"github.com/dafibh/karja/karja-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the HTTP handlers registered by RegisterRoutes
type Handlers struct {
	Debt       *DebtHandler
	Dashboard  *DashboardHandler
	Calculator *CalculatorHandler
	WebSocket  *WebSocketHandler
	OpenAPI    *OpenAPIHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.OpenAPI != nil {
		e.GET("/openapi.json", h.OpenAPI.ServeOpenAPI3Spec)
	}

	// WebSocket push channel (authenticates with the token query parameter)
	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}

	// API version 1
	api := e.Group("/api/v1")

	// Debt types (public)
	api.GET("/debt-types", h.Debt.GetDebtTypes)

	// Calculator routes (public, rate limited)
	calculator := api.Group("/calculator")
	calculator.Use(middleware.RateLimitMiddleware(rateLimiter))
	calculator.POST("/payoff", h.Calculator.Payoff)
	calculator.POST("/summary", h.Calculator.Summary)

	// Debt routes (protected)
	debts := api.Group("/debts")
	debts.Use(authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))
	debts.POST("", h.Debt.CreateDebt)
	debts.GET("", h.Debt.GetDebts)
	debts.GET("/:id", h.Debt.GetDebt)
	debts.PUT("/:id", h.Debt.UpdateDebt)
	debts.DELETE("/:id", h.Debt.DeleteDebt)

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))
	dashboard.GET("/summary", h.Dashboard.GetSummary)
	dashboard.PUT("/income", h.Dashboard.UpdateIncome)
	dashboard.POST("/refresh", h.Dashboard.Refresh)
}
