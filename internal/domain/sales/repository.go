package sales

import (
	"context"
	"time"

	"stockbook/internal/core/id"
)

// Repository persists sales.
type Repository interface {
	// Create inserts a new sale.
	Create(ctx context.Context, sale *Sale) error

	// Update overwrites a sale using optimistic locking on Version.
	// Returns apperror.CodeConcurrentModification when the stored
	// version differs.
	Update(ctx context.Context, sale *Sale) error

	// GetByID returns one sale.
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)

	// List returns all sales ordered by date descending.
	List(ctx context.Context) ([]Sale, error)
}

// StatusChange is one recorded status transition of a sale.
type StatusChange struct {
	ID        id.ID     `db:"id" json:"id"`
	SaleID    id.ID     `db:"sale_id" json:"saleId"`
	From      Status    `db:"from_status" json:"from"`
	To        Status    `db:"to_status" json:"to"`
	ChangedAt time.Time `db:"changed_at" json:"changedAt"`
}

// HistoryStore persists the append-only status history of sales.
// Statuses stay freely editable; the history is what keeps retroactive
// corrections of Delivered/Returned traceable.
type HistoryStore interface {
	// Record appends a status change together with a snapshot of the
	// sale at the moment of the change.
	Record(ctx context.Context, change StatusChange, snapshot *Sale) error

	// ListBySale returns all changes for a sale, oldest first.
	ListBySale(ctx context.Context, saleID id.ID) ([]StatusChange, error)
}
