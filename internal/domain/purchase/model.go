// Package purchase provides user-entered unit costs and the cached
// derived cost records (average costs and total purchase cost) that are
// recomputed and overwritten whenever purchase data changes.
package purchase

import (
	"context"
	"strings"
	"time"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
)

// UnitCost is the user-entered unit cost of a product.
// Mutable, last write wins per product code.
type UnitCost struct {
	ProductCode string      `db:"product_code" json:"productCode"`
	UnitCost    types.Money `db:"unit_cost" json:"unitCost"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// Validate checks the unit cost at the data-store boundary.
func (u *UnitCost) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.ProductCode) == "" {
		return apperror.NewValidation("product code is required").
			WithDetail("field", "productCode")
	}
	if u.UnitCost.IsNegative() {
		return apperror.NewDataFormat(u.ProductCode, "unitCost").
			WithDetail("unit_cost", u.UnitCost.String())
	}
	return nil
}

// AverageCost is the cached quantity-weighted mean unit cost of a
// product, derived by the ledger and overwritten on every recompute.
type AverageCost struct {
	ProductCode string      `db:"product_code" json:"productCode"`
	AverageCost types.Money `db:"average_cost" json:"averageCost"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
