package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockbook/internal/domain/finance"
)

// FinanceRepo implements finance.Repository. Each collection maps to its
// own table of the same name; the three kinds stay physically separate.
type FinanceRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewFinanceRepo creates a new cash book repository.
func NewFinanceRepo(txManager *TxManager) *FinanceRepo {
	return &FinanceRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ finance.Repository = (*FinanceRepo)(nil)

func tableFor(col finance.Collection) (string, error) {
	switch col {
	case finance.Expenses, finance.Income, finance.Investments:
		return string(col), nil
	}
	return "", fmt.Errorf("unknown cash book collection %q", col)
}

// Create appends an entry to a collection.
func (r *FinanceRepo) Create(ctx context.Context, col finance.Collection, entry *finance.Entry) error {
	table, err := tableFor(col)
	if err != nil {
		return err
	}

	q := r.builder.Insert(table).
		Columns("id", "date", "details", "amount", "created_at").
		Values(entry.ID, entry.Date, entry.Details, entry.Amount, entry.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s entry: %w", col, err)
	}

	return nil
}

// List returns all entries of a collection, newest date first.
func (r *FinanceRepo) List(ctx context.Context, col finance.Collection) ([]finance.Entry, error) {
	table, err := tableFor(col)
	if err != nil {
		return nil, err
	}

	q := r.builder.
		Select("id", "date", "details", "amount", "created_at").
		From(table).
		OrderBy("date DESC", "created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var entries []finance.Entry
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s entries: %w", col, err)
	}

	return entries, nil
}
