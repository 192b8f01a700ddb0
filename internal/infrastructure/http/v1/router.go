// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/inventory"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
	"stockbook/internal/domain/summary"
	"stockbook/internal/infrastructure/http/v1/handlers"
	"stockbook/internal/infrastructure/http/v1/middleware"
	"stockbook/internal/infrastructure/storage/postgres"
	"stockbook/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	StockInService   *stockin.Service
	SalesService     *sales.Service
	FinanceService   *finance.Service
	PurchaseService  *purchase.Service
	InventoryService *inventory.Service
	SummaryService   *summary.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	healthHandler.RegisterRoutes(router.Group("/health"))

	// API v1
	base := handlers.NewBaseHandler()
	v1 := router.Group("/api/v1")
	{
		handlers.NewStockInHandler(base, cfg.StockInService).RegisterRoutes(v1)
		handlers.NewSalesHandler(base, cfg.SalesService).RegisterRoutes(v1)
		handlers.NewFinanceHandler(base, cfg.FinanceService).RegisterRoutes(v1)
		handlers.NewPurchaseHandler(base, cfg.PurchaseService).RegisterRoutes(v1)
		handlers.NewReportsHandler(base, cfg.InventoryService, cfg.SummaryService).RegisterRoutes(v1)
	}

	return router
}
