package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockbook/internal/domain/summary"
)

const (
	monthlySalesTable   = "monthly_sales"
	monthlyProfitsTable = "monthly_profits"
)

// SummaryRepo implements summary.Repository.
type SummaryRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewSummaryRepo creates a new summary repository.
func NewSummaryRepo(txManager *TxManager) *SummaryRepo {
	return &SummaryRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ summary.Repository = (*SummaryRepo)(nil)

// UpsertMonthlySummary overwrites the stored counts for a month key.
func (r *SummaryRepo) UpsertMonthlySummary(ctx context.Context, ms summary.MonthlySummary) error {
	q := r.builder.Insert(monthlySalesTable).
		Columns("month", "delivered", "returned", "updated_at").
		Values(ms.Month, ms.Delivered, ms.Returned, ms.UpdatedAt).
		Suffix("ON CONFLICT (month) DO UPDATE SET delivered = EXCLUDED.delivered, returned = EXCLUDED.returned, updated_at = EXCLUDED.updated_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert monthly summary: %w", err)
	}

	return nil
}

// ListMonthlySummaries returns all summaries, most recently updated first.
func (r *SummaryRepo) ListMonthlySummaries(ctx context.Context) ([]summary.MonthlySummary, error) {
	q := r.builder.
		Select("month", "delivered", "returned", "updated_at").
		From(monthlySalesTable).
		OrderBy("updated_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []summary.MonthlySummary
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select monthly summaries: %w", err)
	}

	return rows, nil
}

// UpsertMonthlyProfit overwrites the saved profit for a month key.
func (r *SummaryRepo) UpsertMonthlyProfit(ctx context.Context, mp summary.MonthlyProfit) error {
	q := r.builder.Insert(monthlyProfitsTable).
		Columns("month", "amount", "saved_at").
		Values(mp.Month, mp.Amount, mp.SavedAt).
		Suffix("ON CONFLICT (month) DO UPDATE SET amount = EXCLUDED.amount, saved_at = EXCLUDED.saved_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert monthly profit: %w", err)
	}

	return nil
}

// ListMonthlyProfits returns the saved profit history, newest first.
func (r *SummaryRepo) ListMonthlyProfits(ctx context.Context) ([]summary.MonthlyProfit, error) {
	q := r.builder.
		Select("month", "amount", "saved_at").
		From(monthlyProfitsTable).
		OrderBy("saved_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []summary.MonthlyProfit
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select monthly profits: %w", err)
	}

	return rows, nil
}
