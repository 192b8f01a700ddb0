package finance

import (
	"context"
)

// Collection names the three cash book collections.
type Collection string

const (
	Expenses    Collection = "expenses"
	Income      Collection = "income"
	Investments Collection = "investment"
)

// Repository persists cash book entries, one table per collection.
type Repository interface {
	// Create appends an entry to a collection.
	Create(ctx context.Context, col Collection, entry *Entry) error

	// List returns all entries of a collection ordered by date descending.
	List(ctx context.Context, col Collection) ([]Entry, error)
}
