// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
	"stockbook/internal/infrastructure/storage/postgres"
	"stockbook/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	stockInRepo := postgres.NewStockInRepo(txManager)
	salesRepo := postgres.NewSalesRepo(txManager)
	financeRepo := postgres.NewFinanceRepo(txManager)
	purchaseRepo := postgres.NewPurchaseRepo(txManager)
	historyRepo, err := postgres.NewHistoryRepo(txManager)
	if err != nil {
		log.Fatalw("failed to create history store", "error", err)
	}

	stockInService := stockin.NewService(stockInRepo)
	salesService := sales.NewService(salesRepo, historyRepo)
	financeService := finance.NewService(financeRepo)
	purchaseService := purchase.NewService(purchaseRepo, stockInRepo, txManager)

	if err := seedStockIn(ctx, stockInService); err != nil {
		log.Fatalw("failed to seed stock intake", "error", err)
	}
	if err := seedUnitCosts(ctx, purchaseService); err != nil {
		log.Fatalw("failed to seed unit costs", "error", err)
	}
	if err := seedSales(ctx, salesService); err != nil {
		log.Fatalw("failed to seed sales", "error", err)
	}
	if err := seedFinance(ctx, financeService); err != nil {
		log.Fatalw("failed to seed cash entries", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedStockIn(ctx context.Context, svc *stockin.Service) error {
	batches := []struct {
		code     string
		qty      int64
		daysAgo  int
		details  string
		unitCost string
	}{
		{"SHIRT-M", 10, 40, "first intake", ""},
		{"SHIRT-M", 5, 20, "restock at supplier's new price", "2.40"},
		{"MUG-BLUE", 24, 35, "", ""},
		{"CAP-RED", 12, 15, "sample order", ""},
	}

	for _, b := range batches {
		rec := stockin.New(b.code, b.qty, daysAgo(b.daysAgo), b.details)
		if b.unitCost != "" {
			rec.WithUnitCost(types.MustMoney(b.unitCost))
		}
		if err := svc.Add(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func seedUnitCosts(ctx context.Context, svc *purchase.Service) error {
	costs := map[string]string{
		"SHIRT-M":  "2.00",
		"MUG-BLUE": "1.25",
		"CAP-RED":  "3.50",
	}

	for code, cost := range costs {
		_, err := svc.SetUnitCost(ctx, purchase.UnitCost{
			ProductCode: code,
			UnitCost:    types.MustMoney(cost),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSales(ctx context.Context, svc *sales.Service) error {
	records := []struct {
		customer string
		code     string
		qty      int64
		daysAgo  int
		status   sales.Status
	}{
		{"Aye Chan", "SHIRT-M", 2, 30, sales.StatusDelivered},
		{"Min Thu", "SHIRT-M", 1, 25, sales.StatusDelivered},
		{"Su Su", "MUG-BLUE", 4, 18, sales.StatusReturned},
		{"Ko Zaw", "CAP-RED", 1, 3, sales.StatusSent},
		{"Hla Hla", "MUG-BLUE", 2, 1, sales.StatusProcessing},
	}

	for _, r := range records {
		sale := sales.New(daysAgo(r.daysAgo), r.customer)
		sale.AddLine(r.code, r.qty)
		sale.CODAmount = types.MustMoney("15.00")
		if err := svc.Create(ctx, sale); err != nil {
			return err
		}

		if r.status != sales.StatusProcessing {
			sale.Status = r.status
			if err := svc.Update(ctx, sale); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedFinance(ctx context.Context, svc *finance.Service) error {
	entries := []struct {
		col     finance.Collection
		details string
		amount  string
		daysAgo int
	}{
		{finance.Investments, "initial capital", "500.00", 45},
		{finance.Expenses, "delivery fees", "35.00", 20},
		{finance.Expenses, "packaging", "12.50", 10},
		{finance.Income, "COD settlements", "180.00", 5},
	}

	for _, e := range entries {
		entry := finance.NewEntry(daysAgo(e.daysAgo), e.details, types.MustMoney(e.amount))
		if err := svc.Add(ctx, e.col, entry); err != nil {
			return err
		}
	}
	return nil
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n)
}
