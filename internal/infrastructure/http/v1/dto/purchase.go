package dto

// SetUnitCostRequest for entering or overwriting a product's unit cost.
type SetUnitCostRequest struct {
	UnitCost string `json:"unitCost" binding:"required"`
}
