package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"stockbook/internal/domain/inventory"
	"stockbook/internal/domain/summary"
)

// ReportsHandler handles the derived report endpoints: inventory
// reconciliation, the sales dashboard and the profit/loss rollup.
type ReportsHandler struct {
	*BaseHandler
	inventoryService *inventory.Service
	summaryService   *summary.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, inventoryService *inventory.Service, summaryService *summary.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler:      base,
		inventoryService: inventoryService,
		summaryService:   summaryService,
	}
}

// Inventory handles GET /inventory
func (h *ReportsHandler) Inventory(c *gin.Context) {
	result, err := h.inventoryService.Report(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// Dashboard handles GET /dashboard
//
// An optional asOf query parameter pins the current month, mainly for
// reproducible report runs; it defaults to now.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	asOf, err := h.ParseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.summaryService.Dashboard(c.Request.Context(), asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// ProfitLoss handles GET /profit-loss
func (h *ReportsHandler) ProfitLoss(c *gin.Context) {
	asOf, err := h.ParseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.summaryService.ProfitLoss(c.Request.Context(), asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventory", h.Inventory)
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/profit-loss", h.ProfitLoss)
}
