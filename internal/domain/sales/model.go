// Package sales provides sale records with their parcel status lifecycle.
package sales

import (
	"context"
	"strings"
	"time"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
)

// Status is the parcel status of a sale.
//
// ParcelProcessing is the initial state. Transitions are free-form edits:
// any state is reachable from any other, so Delivered and Returned are not
// terminal and a later correction can retroactively change monthly and
// financial aggregates on the next recompute. Every change is written to
// the status history so such corrections stay traceable.
type Status string

const (
	StatusProcessing Status = "Parcel Processing"
	StatusSent       Status = "Parcel Sent"
	StatusDelivered  Status = "Delivered"
	StatusReturned   Status = "Returned"
)

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusProcessing, StatusSent, StatusDelivered, StatusReturned:
		return Status(s), nil
	}
	return "", apperror.NewValidation("unknown sale status").
		WithDetail("status", s)
}

// Line is one product position of a sale.
type Line struct {
	ProductCode string `json:"productCode"`
	Quantity    int64  `json:"quantity"`
}

// Sale is a customer sale with one or more product lines.
// Mutable: edits and status transitions update the record in place;
// status is the only field whose change affects downstream aggregates.
type Sale struct {
	ID                id.ID       `db:"id" json:"id"`
	Date              time.Time   `db:"date" json:"date"`
	CustomerName      string      `db:"customer_name" json:"customerName"`
	Phone1            string      `db:"phone1" json:"phone1,omitempty"`
	Phone2            string      `db:"phone2" json:"phone2,omitempty"`
	Address           string      `db:"address" json:"address,omitempty"`
	DestinationBranch string      `db:"destination_branch" json:"destinationBranch,omitempty"`
	Lines             []Line      `db:"products" json:"products"`
	CODAmount         types.Money `db:"cod_amount" json:"codAmount"`
	Status            Status      `db:"status" json:"status"`
	Version           int         `db:"version" json:"version"`
	CreatedAt         time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updatedAt"`
}

// New creates a sale in the initial ParcelProcessing state.
func New(date time.Time, customerName string) *Sale {
	now := time.Now().UTC()
	return &Sale{
		ID:           id.New(),
		Date:         date,
		CustomerName: customerName,
		Lines:        make([]Line, 0),
		CODAmount:    types.Zero(),
		Status:       StatusProcessing,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AddLine appends a product position.
func (s *Sale) AddLine(productCode string, quantity int64) {
	s.Lines = append(s.Lines, Line{
		ProductCode: strings.TrimSpace(productCode),
		Quantity:    quantity,
	})
}

// Validate checks the sale at the data-store boundary.
func (s *Sale) Validate(ctx context.Context) error {
	if s.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if strings.TrimSpace(s.CustomerName) == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}
	if _, err := ParseStatus(string(s.Status)); err != nil {
		return err
	}
	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one product line is required").
			WithDetail("field", "products")
	}
	for i, line := range s.Lines {
		if strings.TrimSpace(line.ProductCode) == "" {
			return apperror.NewValidation("product code is required").
				WithDetail("field", "products").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity < 0 {
			return apperror.NewDataFormat(s.ID.String(), "quantity").
				WithDetail("lineNo", i+1).
				WithDetail("quantity", line.Quantity)
		}
	}
	if s.CODAmount.IsNegative() {
		return apperror.NewDataFormat(s.ID.String(), "codAmount")
	}
	return nil
}
