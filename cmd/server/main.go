// Package main is the entry point for the stockbook API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/inventory"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
	"stockbook/internal/domain/summary"
	"stockbook/internal/infrastructure/config"
	v1 "stockbook/internal/infrastructure/http/v1"
	"stockbook/internal/infrastructure/storage/postgres"
	"stockbook/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting stockbook server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.DatabaseURL)
	poolCfg.MaxConns = cfg.DBMaxConns
	poolCfg.MinConns = cfg.DBMinConns
	poolCfg.MaxConnLifetime = cfg.DBMaxConnLifetime

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	stockInRepo := postgres.NewStockInRepo(txManager)
	salesRepo := postgres.NewSalesRepo(txManager)
	financeRepo := postgres.NewFinanceRepo(txManager)
	purchaseRepo := postgres.NewPurchaseRepo(txManager)
	summaryRepo := postgres.NewSummaryRepo(txManager)
	historyRepo, err := postgres.NewHistoryRepo(txManager)
	if err != nil {
		log.Fatalw("failed to create history store", "error", err)
	}

	// --- Services ---
	stockInService := stockin.NewService(stockInRepo)
	salesService := sales.NewService(salesRepo, historyRepo)
	financeService := finance.NewService(financeRepo)
	purchaseService := purchase.NewService(purchaseRepo, stockInRepo, txManager)
	inventoryService := inventory.NewService(stockInRepo, salesRepo)
	summaryService := summary.NewService(salesRepo, financeRepo, purchaseRepo, summaryRepo, txManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		Logger:           log,
		StockInService:   stockInService,
		SalesService:     salesService,
		FinanceService:   financeService,
		PurchaseService:  purchaseService,
		InventoryService: inventoryService,
		SummaryService:   summaryService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.AppAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
