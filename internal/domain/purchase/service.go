package purchase

import (
	"context"
	"fmt"
	"time"

	"stockbook/internal/core/tx"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/domain/stockin"
	"stockbook/pkg/logger"
)

// Service provides purchase cost operations: durable unit cost entry and
// the recompute-and-overwrite cycle for the cached derived cost records.
type Service struct {
	repo      Repository
	stockRepo stockin.Repository
	txManager tx.Manager
}

// NewService creates a new purchase service.
func NewService(repo Repository, stockRepo stockin.Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		stockRepo: stockRepo,
		txManager: txManager,
	}
}

// SetUnitCost stores a unit cost (last write wins per product code) and
// recomputes the cached average costs and purchase total in the same
// transaction, so two concurrent updates cannot interleave their
// write-backs.
func (s *Service) SetUnitCost(ctx context.Context, cost UnitCost) (*ledger.CostResult, error) {
	if err := cost.Validate(ctx); err != nil {
		return nil, err
	}
	cost.UpdatedAt = time.Now().UTC()

	var result *ledger.CostResult
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.UpsertUnitCost(ctx, cost); err != nil {
			return fmt.Errorf("upsert unit cost: %w", err)
		}

		computed, err := s.recompute(ctx)
		if err != nil {
			return err
		}
		result = computed
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "unit cost updated",
		"product_code", cost.ProductCode,
		"unit_cost", cost.UnitCost,
		"total_purchase_cost", result.TotalPurchaseCost,
	)

	return result, nil
}

// Summary recomputes the purchase summary from the current stock intake
// and unit costs, refreshing the cached derived records.
func (s *Service) Summary(ctx context.Context) (*ledger.CostResult, error) {
	var result *ledger.CostResult
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		computed, err := s.recompute(ctx)
		if err != nil {
			return err
		}
		result = computed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// recompute runs the cost pass over the full current record set and
// overwrites the cached averageCosts table and purchase total. The
// computed values are authoritative per run, never merged.
func (s *Service) recompute(ctx context.Context) (*ledger.CostResult, error) {
	stockIn, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock intake: %w", err)
	}

	unitCosts, err := s.repo.UnitCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unit costs: %w", err)
	}

	result := ledger.ComputeCosts(stockIn, unitCosts)

	now := time.Now().UTC()
	averages := make([]AverageCost, 0, len(result.AverageCosts))
	for code, avg := range result.AverageCosts {
		averages = append(averages, AverageCost{
			ProductCode: code,
			AverageCost: avg,
			UpdatedAt:   now,
		})
	}

	if err := s.repo.ReplaceAverageCosts(ctx, averages); err != nil {
		return nil, fmt.Errorf("replace average costs: %w", err)
	}
	if err := s.repo.SavePurchaseTotal(ctx, result.TotalPurchaseCost); err != nil {
		return nil, fmt.Errorf("save purchase total: %w", err)
	}

	return &result, nil
}
