// Package finance provides the cash book: expense, income, and investment
// entries. The three kinds share one shape and are distinguished by the
// collection they are stored in, not by a type tag.
package finance

import (
	"context"
	"strings"
	"time"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
)

// Entry is one cash book record. Append-only.
type Entry struct {
	ID        id.ID       `db:"id" json:"id"`
	Date      time.Time   `db:"date" json:"date"`
	Details   string      `db:"details" json:"details"`
	Amount    types.Money `db:"amount" json:"amount"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// NewEntry creates a cash book entry.
func NewEntry(date time.Time, details string, amount types.Money) *Entry {
	return &Entry{
		ID:        id.New(),
		Date:      date,
		Details:   details,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the entry at the data-store boundary.
func (e *Entry) Validate(ctx context.Context) error {
	if e.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if strings.TrimSpace(e.Details) == "" {
		return apperror.NewValidation("details are required").
			WithDetail("field", "details")
	}
	if e.Amount.IsNegative() {
		return apperror.NewDataFormat(e.ID.String(), "amount").
			WithDetail("amount", e.Amount.String())
	}
	return nil
}
