package sales

import (
	"context"
	"fmt"
	"time"

	"stockbook/internal/core/id"
	"stockbook/pkg/logger"
)

// Service provides business operations for sales.
type Service struct {
	repo    Repository
	history HistoryStore
}

// NewService creates a new sales service.
func NewService(repo Repository, history HistoryStore) *Service {
	return &Service{repo: repo, history: history}
}

// Create validates and stores a new sale.
func (s *Service) Create(ctx context.Context, sale *Sale) error {
	if err := sale.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return fmt.Errorf("create sale: %w", err)
	}

	logger.Info(ctx, "created sale",
		"sale_id", sale.ID,
		"status", sale.Status,
		"lines", len(sale.Lines),
	)

	return nil
}

// Update applies a free-form edit to a sale. When the edit changes the
// status, the transition is appended to the status history before the
// sale is overwritten.
func (s *Service) Update(ctx context.Context, sale *Sale) error {
	if err := sale.Validate(ctx); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, sale.ID)
	if err != nil {
		return fmt.Errorf("load sale: %w", err)
	}

	if current.Status != sale.Status {
		change := StatusChange{
			ID:        id.New(),
			SaleID:    sale.ID,
			From:      current.Status,
			To:        sale.Status,
			ChangedAt: time.Now().UTC(),
		}
		if err := s.history.Record(ctx, change, current); err != nil {
			return fmt.Errorf("record status change: %w", err)
		}
		logger.Info(ctx, "sale status changed",
			"sale_id", sale.ID,
			"from", current.Status,
			"to", sale.Status,
		)
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, sale); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}

	return nil
}

// Get returns one sale.
func (s *Service) Get(ctx context.Context, saleID id.ID) (*Sale, error) {
	sale, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// List returns all sales, newest first.
func (s *Service) List(ctx context.Context) ([]Sale, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return items, nil
}

// History returns the recorded status transitions of a sale.
func (s *Service) History(ctx context.Context, saleID id.ID) ([]StatusChange, error) {
	changes, err := s.history.ListBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return changes, nil
}
