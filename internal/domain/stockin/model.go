// Package stockin provides stock intake records: quantities of a product
// received into inventory.
package stockin

import (
	"context"
	"strings"
	"time"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
)

// Record is a single stock intake batch. Append-only: records are never
// mutated after creation.
type Record struct {
	ID          id.ID     `db:"id" json:"id"`
	ProductCode string    `db:"product_code" json:"productCode"`
	Quantity    int64     `db:"quantity" json:"quantity"`
	Date        time.Time `db:"date" json:"date"`
	Details     string    `db:"details" json:"details,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`

	// UnitCost is the per-unit purchase cost captured for this batch.
	// When nil, the batch is priced with the current per-product unit
	// cost at computation time.
	UnitCost *types.Money `db:"unit_cost" json:"unitCost,omitempty"`
}

// New creates a stock intake record.
func New(productCode string, quantity int64, date time.Time, details string) *Record {
	return &Record{
		ID:          id.New(),
		ProductCode: strings.TrimSpace(productCode),
		Quantity:    quantity,
		Date:        date,
		Details:     details,
		CreatedAt:   time.Now().UTC(),
	}
}

// WithUnitCost captures the batch's own per-unit purchase cost.
func (r *Record) WithUnitCost(cost types.Money) *Record {
	r.UnitCost = &cost
	return r
}

// Validate checks the record at the data-store boundary so malformed
// values never reach aggregation.
func (r *Record) Validate(ctx context.Context) error {
	if strings.TrimSpace(r.ProductCode) == "" {
		return apperror.NewValidation("product code is required").
			WithDetail("field", "productCode")
	}
	if r.Quantity < 0 {
		return apperror.NewDataFormat(r.ID.String(), "quantity").
			WithDetail("quantity", r.Quantity)
	}
	if r.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if r.UnitCost != nil && r.UnitCost.IsNegative() {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("unitCost", r.UnitCost.String())
	}
	return nil
}
