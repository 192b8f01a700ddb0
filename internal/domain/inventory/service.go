// Package inventory provides the derived stock position report.
package inventory

import (
	"context"
	"fmt"

	"stockbook/internal/domain/ledger"
	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
	"stockbook/pkg/logger"
)

// Service reconciles stock intake against sales into inventory rows.
type Service struct {
	stockRepo stockin.Repository
	salesRepo sales.Repository
}

// NewService creates a new inventory service.
func NewService(stockRepo stockin.Repository, salesRepo sales.Repository) *Service {
	return &Service{stockRepo: stockRepo, salesRepo: salesRepo}
}

// Report fetches the full stock intake and sales sets and reconciles
// them. Always a full recompute over the current snapshot; the rows are
// derived, never persisted.
func (s *Service) Report(ctx context.Context) (*ledger.ReconcileResult, error) {
	stockIn, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock intake: %w", err)
	}

	saleRecords, err := s.salesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	result := ledger.Reconcile(stockIn, saleRecords)

	if len(result.Diagnostics) > 0 {
		logger.Warn(ctx, "inventory reconciliation produced diagnostics",
			"count", len(result.Diagnostics),
		)
	}

	return &result, nil
}
