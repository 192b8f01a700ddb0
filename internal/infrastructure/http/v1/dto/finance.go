package dto

import (
	"time"

	"stockbook/internal/domain/finance"
)

// CreateEntryRequest for adding a cash entry (expense, income or
// investment).
type CreateEntryRequest struct {
	Date    string `json:"date" binding:"required"`
	Details string `json:"details" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// EntryResponse represents a cash entry in API responses.
type EntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Details   string    `json:"details"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromEntry converts entity to response DTO.
func FromEntry(e finance.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID.String(),
		Date:      e.Date.Format(DateLayout),
		Details:   e.Details,
		Amount:    e.Amount.String(),
		CreatedAt: e.CreatedAt,
	}
}

// EntryListResponse represents a list of cash entries.
type EntryListResponse struct {
	Items      []EntryResponse `json:"items"`
	TotalCount int             `json:"totalCount"`
}
