package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/finance"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// FinanceHandler handles HTTP requests for the cash entry collections.
type FinanceHandler struct {
	*BaseHandler
	service *finance.Service
}

// NewFinanceHandler creates a new finance handler.
func NewFinanceHandler(base *BaseHandler, service *finance.Service) *FinanceHandler {
	return &FinanceHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *FinanceHandler) create(col finance.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateEntryRequest
		if !h.BindJSON(c, &req) {
			return
		}

		date, err := dto.ParseDate("date", req.Date)
		if err != nil {
			h.Error(c, err)
			return
		}

		amount, err := types.NewMoneyFromString(req.Amount)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid amount").
				WithDetail("value", req.Amount))
			return
		}

		entry := finance.NewEntry(date, req.Details, amount)
		if err := h.service.Add(c.Request.Context(), col, entry); err != nil {
			h.Error(c, err)
			return
		}

		h.Created(c, entry.ID.String())
	}
}

func (h *FinanceHandler) list(col finance.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.service.List(c.Request.Context(), col)
		if err != nil {
			h.Error(c, err)
			return
		}

		items := make([]dto.EntryResponse, len(entries))
		for i, e := range entries {
			items[i] = dto.FromEntry(e)
		}

		c.JSON(http.StatusOK, dto.EntryListResponse{
			Items:      items,
			TotalCount: len(items),
		})
	}
}

// RegisterRoutes registers one create/list pair per cash collection.
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/expenses", h.create(finance.Expenses))
	rg.GET("/expenses", h.list(finance.Expenses))
	rg.POST("/income", h.create(finance.Income))
	rg.GET("/income", h.list(finance.Income))
	rg.POST("/investments", h.create(finance.Investments))
	rg.GET("/investments", h.list(finance.Investments))
}
