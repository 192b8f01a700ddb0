package dto

import (
	"time"

	"stockbook/internal/domain/sales"
)

// SaleLineRequest is one product position in a sale request.
type SaleLineRequest struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest for creating a sale.
type CreateSaleRequest struct {
	Date              string            `json:"date" binding:"required"`
	CustomerName      string            `json:"customerName" binding:"required"`
	Phone1            string            `json:"phone1"`
	Phone2            string            `json:"phone2"`
	Address           string            `json:"address"`
	DestinationBranch string            `json:"destinationBranch"`
	Products          []SaleLineRequest `json:"products" binding:"required,min=1,dive"`
	CODAmount         string            `json:"codAmount"`
}

// UpdateSaleRequest for editing a sale. Full replacement of the
// editable fields; Version carries the optimistic lock.
type UpdateSaleRequest struct {
	Date              string            `json:"date" binding:"required"`
	CustomerName      string            `json:"customerName" binding:"required"`
	Phone1            string            `json:"phone1"`
	Phone2            string            `json:"phone2"`
	Address           string            `json:"address"`
	DestinationBranch string            `json:"destinationBranch"`
	Products          []SaleLineRequest `json:"products" binding:"required,min=1,dive"`
	CODAmount         string            `json:"codAmount"`
	Status            string            `json:"status" binding:"required"`
	Version           int               `json:"version" binding:"required,min=1"`
}

// SaleLineResponse is one product position in a sale response.
type SaleLineResponse struct {
	ProductCode string `json:"productCode"`
	Quantity    int64  `json:"quantity"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	CustomerName      string             `json:"customerName"`
	Phone1            string             `json:"phone1,omitempty"`
	Phone2            string             `json:"phone2,omitempty"`
	Address           string             `json:"address,omitempty"`
	DestinationBranch string             `json:"destinationBranch,omitempty"`
	Products          []SaleLineResponse `json:"products"`
	CODAmount         string             `json:"codAmount"`
	Status            string             `json:"status"`
	Version           int                `json:"version"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// FromSale converts entity to response DTO.
func FromSale(s *sales.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SaleLineResponse{ProductCode: l.ProductCode, Quantity: l.Quantity}
	}
	return SaleResponse{
		ID:                s.ID.String(),
		Date:              s.Date.Format(DateLayout),
		CustomerName:      s.CustomerName,
		Phone1:            s.Phone1,
		Phone2:            s.Phone2,
		Address:           s.Address,
		DestinationBranch: s.DestinationBranch,
		Products:          lines,
		CODAmount:         s.CODAmount.String(),
		Status:            string(s.Status),
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// SaleListResponse represents a list of sales.
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	TotalCount int            `json:"totalCount"`
}

// StatusChangeResponse represents one recorded status transition.
type StatusChangeResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changedAt"`
}

// FromStatusChange converts entity to response DTO.
func FromStatusChange(c sales.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		ID:        c.ID.String(),
		From:      string(c.From),
		To:        string(c.To),
		ChangedAt: c.ChangedAt,
	}
}

// StatusHistoryResponse represents a sale's status history.
type StatusHistoryResponse struct {
	SaleID string                 `json:"saleId"`
	Items  []StatusChangeResponse `json:"items"`
}
