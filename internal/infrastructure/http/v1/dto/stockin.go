package dto

import (
	"time"

	"stockbook/internal/domain/stockin"
)

// CreateStockInRequest for adding a stock-in record.
type CreateStockInRequest struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Details     string `json:"details"`
	// UnitCost prices this batch at intake. Empty means the current
	// per-product unit cost applies.
	UnitCost string `json:"unitCost"`
}

// StockInResponse represents a stock-in record in API responses.
type StockInResponse struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"productCode"`
	Quantity    int64     `json:"quantity"`
	Date        string    `json:"date"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UnitCost    string    `json:"unitCost,omitempty"`
}

// FromStockIn converts entity to response DTO.
func FromStockIn(r stockin.Record) StockInResponse {
	resp := StockInResponse{
		ID:          r.ID.String(),
		ProductCode: r.ProductCode,
		Quantity:    r.Quantity,
		Date:        r.Date.Format(DateLayout),
		Details:     r.Details,
		CreatedAt:   r.CreatedAt,
	}
	if r.UnitCost != nil {
		resp.UnitCost = r.UnitCost.String()
	}
	return resp
}

// StockInListResponse represents a list of stock-in records.
type StockInListResponse struct {
	Items      []StockInResponse `json:"items"`
	TotalCount int               `json:"totalCount"`
}

// ProductCodesResponse represents the distinct stocked product codes.
type ProductCodesResponse struct {
	Items []string `json:"items"`
}
