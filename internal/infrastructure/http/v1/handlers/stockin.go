package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/stockin"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// StockInHandler handles HTTP requests for stock intake records.
type StockInHandler struct {
	*BaseHandler
	service *stockin.Service
}

// NewStockInHandler creates a new stock-in handler.
func NewStockInHandler(base *BaseHandler, service *stockin.Service) *StockInHandler {
	return &StockInHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /stock-in
func (h *StockInHandler) Create(c *gin.Context) {
	var req dto.CreateStockInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		h.Error(c, err)
		return
	}

	rec := stockin.New(req.ProductCode, req.Quantity, date, req.Details)
	if req.UnitCost != "" {
		cost, err := types.NewMoneyFromString(req.UnitCost)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid unit cost").
				WithDetail("unitCost", req.UnitCost))
			return
		}
		rec.WithUnitCost(cost)
	}
	if err := h.service.Add(c.Request.Context(), rec); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, rec.ID.String())
}

// List handles GET /stock-in
func (h *StockInHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.StockInResponse, len(records))
	for i, r := range records {
		items[i] = dto.FromStockIn(r)
	}

	c.JSON(http.StatusOK, dto.StockInListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// ProductCodes handles GET /products
func (h *StockInHandler) ProductCodes(c *gin.Context) {
	codes, err := h.service.ProductCodes(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductCodesResponse{Items: codes})
}

// RegisterRoutes registers stock-in routes.
func (h *StockInHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/stock-in", h.Create)
	rg.GET("/stock-in", h.List)
	rg.GET("/products", h.ProductCodes)
}
