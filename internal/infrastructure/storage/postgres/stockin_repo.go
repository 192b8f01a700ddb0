package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockbook/internal/domain/stockin"
)

const stockInTable = "stock_in"

// StockInRepo implements stockin.Repository.
type StockInRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockInRepo creates a new stock intake repository.
func NewStockInRepo(txManager *TxManager) *StockInRepo {
	return &StockInRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ stockin.Repository = (*StockInRepo)(nil)

// Create inserts a new stock intake record.
func (r *StockInRepo) Create(ctx context.Context, rec *stockin.Record) error {
	q := r.builder.Insert(stockInTable).
		Columns("id", "product_code", "quantity", "date", "details", "created_at", "unit_cost").
		Values(rec.ID, rec.ProductCode, rec.Quantity, rec.Date, rec.Details, rec.CreatedAt, rec.UnitCost)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert stock intake: %w", err)
	}

	return nil
}

// List returns all records, newest date first.
func (r *StockInRepo) List(ctx context.Context) ([]stockin.Record, error) {
	q := r.builder.
		Select("id", "product_code", "quantity", "date", "details", "created_at", "unit_cost").
		From(stockInTable).
		OrderBy("date DESC", "created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var records []stockin.Record
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("select stock intake: %w", err)
	}

	return records, nil
}

// ProductCodes returns distinct stocked product codes, sorted.
func (r *StockInRepo) ProductCodes(ctx context.Context) ([]string, error) {
	q := r.builder.
		Select("DISTINCT product_code").
		From(stockInTable).
		OrderBy("product_code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var codes []string
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &codes, sql, args...); err != nil {
		return nil, fmt.Errorf("select product codes: %w", err)
	}

	return codes, nil
}
