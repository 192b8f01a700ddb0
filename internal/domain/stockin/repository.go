package stockin

import (
	"context"
)

// Repository persists stock intake records.
type Repository interface {
	// Create inserts a new record.
	Create(ctx context.Context, rec *Record) error

	// List returns all records ordered by date descending (display order;
	// aggregation is order-independent).
	List(ctx context.Context) ([]Record, error)

	// ProductCodes returns the distinct product codes seen in stock
	// intake, for use by the sales product picker.
	ProductCodes(ctx context.Context) ([]string, error)
}
