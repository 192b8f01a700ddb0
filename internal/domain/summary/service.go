package summary

import (
	"context"
	"fmt"
	"time"

	"stockbook/internal/core/tx"
	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/domain/sales"
	"stockbook/pkg/logger"
)

// Service builds the dashboard and profit/loss reports. It is the caller
// the ledger expects: it fetches full record snapshots, runs the pure
// aggregation, and serializes the derived write-backs in a transaction.
type Service struct {
	salesRepo    sales.Repository
	financeRepo  finance.Repository
	purchaseRepo purchase.Repository
	repo         Repository
	txManager    tx.Manager
}

// NewService creates a new summary service.
func NewService(
	salesRepo sales.Repository,
	financeRepo finance.Repository,
	purchaseRepo purchase.Repository,
	repo Repository,
	txManager tx.Manager,
) *Service {
	return &Service{
		salesRepo:    salesRepo,
		financeRepo:  financeRepo,
		purchaseRepo: purchaseRepo,
		repo:         repo,
		txManager:    txManager,
	}
}

// Dashboard rolls up the full sales set as of the given time, overwrites
// the persisted summary for every observed month, and returns the fresh
// counts together with the stored history.
func (s *Service) Dashboard(ctx context.Context, asOf time.Time) (*DashboardReport, error) {
	saleRecords, err := s.salesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	rollup := ledger.Rollup(saleRecords, asOf)

	now := time.Now().UTC()
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, mc := range rollup.Months {
			ms := MonthlySummary{
				Month:     mc.Month,
				Delivered: mc.Delivered,
				Returned:  mc.Returned,
				UpdatedAt: now,
			}
			if err := s.repo.UpsertMonthlySummary(ctx, ms); err != nil {
				return fmt.Errorf("upsert summary for %s: %w", mc.Month, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListMonthlySummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list monthly summaries: %w", err)
	}

	return &DashboardReport{
		CurrentMonth:   rollup.CurrentMonth,
		TotalDelivered: rollup.TotalDelivered,
		TotalReturned:  rollup.TotalReturned,
		History:        history,
	}, nil
}

// ProfitLoss computes the financial rollup from the full current record
// set. On the last day of the month the computed profit is saved to the
// monthly profit history under the month's key.
func (s *Service) ProfitLoss(ctx context.Context, asOf time.Time) (*ProfitLossReport, error) {
	expenses, err := s.financeRepo.List(ctx, finance.Expenses)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	income, err := s.financeRepo.List(ctx, finance.Income)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	investment, err := s.financeRepo.List(ctx, finance.Investments)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}

	purchaseTotal, err := s.purchaseRepo.PurchaseTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("get purchase total: %w", err)
	}
	averageCosts, err := s.purchaseRepo.AverageCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get average costs: %w", err)
	}

	saleRecords, err := s.salesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	result := ledger.ComputeFinancials(
		expenses, income, investment,
		purchaseTotal, averageCosts, saleRecords,
	)

	report := &ProfitLossReport{FinancialResult: result}

	if isLastDayOfMonth(asOf) {
		mp := MonthlyProfit{
			Month:   ledger.MonthKey(asOf),
			Amount:  result.ProfitLoss,
			SavedAt: time.Now().UTC(),
		}
		if err := s.repo.UpsertMonthlyProfit(ctx, mp); err != nil {
			return nil, fmt.Errorf("save monthly profit: %w", err)
		}
		report.MonthClosed = true
		logger.Info(ctx, "saved monthly profit",
			"month", mp.Month,
			"amount", mp.Amount,
		)
	}

	profits, err := s.repo.ListMonthlyProfits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list monthly profits: %w", err)
	}
	report.MonthlyProfits = profits

	return report, nil
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
