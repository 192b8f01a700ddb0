package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/sales"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// SalesHandler handles HTTP requests for sales.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /sales
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		h.Error(c, err)
		return
	}

	sale := sales.New(date, req.CustomerName)
	sale.Phone1 = req.Phone1
	sale.Phone2 = req.Phone2
	sale.Address = req.Address
	sale.DestinationBranch = req.DestinationBranch
	for _, line := range req.Products {
		sale.AddLine(line.ProductCode, line.Quantity)
	}
	if req.CODAmount != "" {
		amount, err := types.NewMoneyFromString(req.CODAmount)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid codAmount").
				WithDetail("value", req.CODAmount))
			return
		}
		sale.CODAmount = amount
	}

	if err := h.service.Create(c.Request.Context(), sale); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, sale.ID.String())
}

// Update handles PUT /sales/:id
func (h *SalesHandler) Update(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid sale id"))
		return
	}

	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		h.Error(c, err)
		return
	}

	status, err := sales.ParseStatus(req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}

	sale := &sales.Sale{
		ID:                saleID,
		Date:              date,
		CustomerName:      req.CustomerName,
		Phone1:            req.Phone1,
		Phone2:            req.Phone2,
		Address:           req.Address,
		DestinationBranch: req.DestinationBranch,
		CODAmount:         types.Zero(),
		Status:            status,
		Version:           req.Version,
	}
	for _, line := range req.Products {
		sale.AddLine(line.ProductCode, line.Quantity)
	}
	if req.CODAmount != "" {
		amount, err := types.NewMoneyFromString(req.CODAmount)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid codAmount").
				WithDetail("value", req.CODAmount))
			return
		}
		sale.CODAmount = amount
	}

	if err := h.service.Update(c.Request.Context(), sale); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(sale))
}

// Get handles GET /sales/:id
func (h *SalesHandler) Get(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid sale id"))
		return
	}

	sale, err := h.service.Get(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(sale))
}

// List handles GET /sales
func (h *SalesHandler) List(c *gin.Context) {
	saleRecords, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.SaleResponse, len(saleRecords))
	for i := range saleRecords {
		items[i] = dto.FromSale(&saleRecords[i])
	}

	c.JSON(http.StatusOK, dto.SaleListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// History handles GET /sales/:id/history
func (h *SalesHandler) History(c *gin.Context) {
	saleID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid sale id"))
		return
	}

	changes, err := h.service.History(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.StatusChangeResponse, len(changes))
	for i, change := range changes {
		items[i] = dto.FromStatusChange(change)
	}

	c.JSON(http.StatusOK, dto.StatusHistoryResponse{
		SaleID: saleID.String(),
		Items:  items,
	})
}

// RegisterRoutes registers sales routes.
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sales", h.Create)
	rg.GET("/sales", h.List)
	rg.GET("/sales/:id", h.Get)
	rg.PUT("/sales/:id", h.Update)
	rg.GET("/sales/:id/history", h.History)
}
