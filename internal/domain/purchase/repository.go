package purchase

import (
	"context"

	"stockbook/internal/core/types"
)

// Repository persists unit costs and the cached derived cost records.
type Repository interface {
	// UpsertUnitCost stores a unit cost, overwriting any previous value
	// for the product code (last write wins).
	UpsertUnitCost(ctx context.Context, cost UnitCost) error

	// UnitCosts returns all entered unit costs keyed by product code.
	UnitCosts(ctx context.Context) (map[string]types.Money, error)

	// ReplaceAverageCosts overwrites the cached average cost table with
	// a freshly computed one.
	ReplaceAverageCosts(ctx context.Context, costs []AverageCost) error

	// AverageCosts returns the cached average costs keyed by product
	// code. Codes absent from the map have no known average cost.
	AverageCosts(ctx context.Context) (map[string]types.Money, error)

	// SavePurchaseTotal overwrites the cached total purchase cost.
	SavePurchaseTotal(ctx context.Context, total types.Money) error

	// PurchaseTotal returns the cached total purchase cost, zero when
	// nothing has been computed yet.
	PurchaseTotal(ctx context.Context) (types.Money, error)
}
