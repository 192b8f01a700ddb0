package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/purchase"
)

const (
	unitCostsTable       = "unit_costs"
	averageCostsTable    = "average_costs"
	purchaseSummaryTable = "purchase_summary"

	// Key of the single cached purchase total row.
	purchaseTotalKey = "totalPurchaseCost"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txManager *TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

// UpsertUnitCost stores a unit cost, last write wins per product code.
func (r *PurchaseRepo) UpsertUnitCost(ctx context.Context, cost purchase.UnitCost) error {
	q := r.builder.Insert(unitCostsTable).
		Columns("product_code", "unit_cost", "updated_at").
		Values(cost.ProductCode, cost.UnitCost, cost.UpdatedAt).
		Suffix("ON CONFLICT (product_code) DO UPDATE SET unit_cost = EXCLUDED.unit_cost, updated_at = EXCLUDED.updated_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert unit cost: %w", err)
	}

	return nil
}

// UnitCosts returns all unit costs keyed by product code.
func (r *PurchaseRepo) UnitCosts(ctx context.Context) (map[string]types.Money, error) {
	var rows []purchase.UnitCost
	if err := r.selectAll(ctx, unitCostsTable, []string{"product_code", "unit_cost", "updated_at"}, &rows); err != nil {
		return nil, fmt.Errorf("select unit costs: %w", err)
	}

	costs := make(map[string]types.Money, len(rows))
	for _, row := range rows {
		costs[row.ProductCode] = row.UnitCost
	}
	return costs, nil
}

// ReplaceAverageCosts overwrites the cached average cost table.
func (r *PurchaseRepo) ReplaceAverageCosts(ctx context.Context, costs []purchase.AverageCost) error {
	querier := r.txManager.GetQuerier(ctx)

	if _, err := querier.Exec(ctx, "DELETE FROM "+averageCostsTable); err != nil {
		return fmt.Errorf("clear average costs: %w", err)
	}

	if len(costs) == 0 {
		return nil
	}

	q := r.builder.Insert(averageCostsTable).
		Columns("product_code", "average_cost", "updated_at")
	for _, c := range costs {
		q = q.Values(c.ProductCode, c.AverageCost, c.UpdatedAt)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert average costs: %w", err)
	}

	return nil
}

// AverageCosts returns the cached average costs keyed by product code.
func (r *PurchaseRepo) AverageCosts(ctx context.Context) (map[string]types.Money, error) {
	var rows []purchase.AverageCost
	if err := r.selectAll(ctx, averageCostsTable, []string{"product_code", "average_cost", "updated_at"}, &rows); err != nil {
		return nil, fmt.Errorf("select average costs: %w", err)
	}

	costs := make(map[string]types.Money, len(rows))
	for _, row := range rows {
		costs[row.ProductCode] = row.AverageCost
	}
	return costs, nil
}

// SavePurchaseTotal overwrites the cached total purchase cost.
func (r *PurchaseRepo) SavePurchaseTotal(ctx context.Context, total types.Money) error {
	q := r.builder.Insert(purchaseSummaryTable).
		Columns("key", "value", "updated_at").
		Values(purchaseTotalKey, total, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("save purchase total: %w", err)
	}

	return nil
}

// PurchaseTotal returns the cached total, zero when not yet computed.
func (r *PurchaseRepo) PurchaseTotal(ctx context.Context) (types.Money, error) {
	q := r.builder.
		Select("value").
		From(purchaseSummaryTable).
		Where(squirrel.Eq{"key": purchaseTotalKey})

	sql, args, err := q.ToSql()
	if err != nil {
		return types.Zero(), fmt.Errorf("build select: %w", err)
	}

	var total types.Money
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &total, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Zero(), nil
		}
		return types.Zero(), fmt.Errorf("select purchase total: %w", err)
	}

	return total, nil
}

func (r *PurchaseRepo) selectAll(ctx context.Context, table string, columns []string, dest any) error {
	q := r.builder.Select(columns...).From(table)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build select: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	return pgxscan.Select(ctx, querier, dest, sql, args...)
}
