package stockin

import (
	"context"
	"fmt"

	"stockbook/pkg/logger"
)

// Service provides business operations for stock intake.
type Service struct {
	repo Repository
}

// NewService creates a new stock intake service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and stores a stock intake record.
func (s *Service) Add(ctx context.Context, rec *Record) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("create stock intake: %w", err)
	}

	logger.Info(ctx, "recorded stock intake",
		"product_code", rec.ProductCode,
		"quantity", rec.Quantity,
	)

	return nil
}

// List returns all stock intake records, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock intake: %w", err)
	}
	return recs, nil
}

// ProductCodes returns the distinct product codes available for sale entry.
func (s *Service) ProductCodes(ctx context.Context) ([]string, error) {
	codes, err := s.repo.ProductCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list product codes: %w", err)
	}
	return codes, nil
}
