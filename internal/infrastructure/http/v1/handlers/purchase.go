package handlers

import (
	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles HTTP requests for unit costs and the purchase
// summary.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// SetUnitCost handles PUT /unit-costs/:productCode
func (h *PurchaseHandler) SetUnitCost(c *gin.Context) {
	var req dto.SetUnitCostRequest
	if !h.BindJSON(c, &req) {
		return
	}

	unitCost, err := types.NewMoneyFromString(req.UnitCost)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid unitCost").
			WithDetail("value", req.UnitCost))
		return
	}

	result, err := h.service.SetUnitCost(c.Request.Context(), purchase.UnitCost{
		ProductCode: c.Param("productCode"),
		UnitCost:    unitCost,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// Summary handles GET /purchase-summary
func (h *PurchaseHandler) Summary(c *gin.Context) {
	result, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// RegisterRoutes registers purchase routes.
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/unit-costs/:productCode", h.SetUnitCost)
	rg.GET("/purchase-summary", h.Summary)
}
