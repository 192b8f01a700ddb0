package finance

import (
	"context"
	"fmt"

	"stockbook/pkg/logger"
)

// Service provides business operations for the cash book.
type Service struct {
	repo Repository
}

// NewService creates a new cash book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and appends an entry to the given collection.
func (s *Service) Add(ctx context.Context, col Collection, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, col, entry); err != nil {
		return fmt.Errorf("create %s entry: %w", col, err)
	}

	logger.Info(ctx, "recorded cash book entry",
		"collection", col,
		"amount", entry.Amount,
	)

	return nil
}

// List returns all entries of a collection, newest first.
func (s *Service) List(ctx context.Context, col Collection) ([]Entry, error) {
	entries, err := s.repo.List(ctx, col)
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", col, err)
	}
	return entries, nil
}
