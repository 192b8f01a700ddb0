package ledger

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/stockin"
)

// BatchCost is the purchase cost of one stock intake batch.
type BatchCost struct {
	ProductCode  string      `json:"productCode"`
	Quantity     int64       `json:"quantity"`
	UnitCost     types.Money `json:"unitCost"`
	PurchaseCost types.Money `json:"purchaseCost"`
}

// CostResult is the output of a cost computation pass.
type CostResult struct {
	// PerBatch holds one row per stock intake record, in input order.
	PerBatch []BatchCost `json:"perBatch"`

	TotalPurchaseCost types.Money `json:"totalPurchaseCost"`

	// AverageCosts maps product code to its quantity-weighted mean unit
	// cost. A code whose total quantity is zero is absent: its average
	// cost is unknown, which callers must never read as zero.
	AverageCosts map[string]types.Money `json:"averageCosts"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// ComputeCosts derives purchase costs and average unit costs from stock
// intake batches and the user-entered unit costs.
//
// purchaseCost = unitCost × quantity per batch. A batch priced at intake
// keeps its own captured unit cost; otherwise the current per-product
// cost applies, defaulting to 0 when none was entered. The average cost
// of a code is the quantity-weighted mean across its batches:
// Σ purchaseCost / Σ quantity, never the simple mean of unit costs.
func ComputeCosts(stockIn []stockin.Record, unitCosts map[string]types.Money) CostResult {
	var diags []Diagnostic

	perBatch := make([]BatchCost, 0, len(stockIn))
	total := types.Zero()
	costSum := make(map[string]types.Money)
	qtySum := make(map[string]int64)

	for _, rec := range stockIn {
		if rec.Quantity < 0 {
			diags = append(diags, dataFormat(rec.ID.String(), "quantity"))
			continue
		}

		unitCost := unitCosts[rec.ProductCode]
		if rec.UnitCost != nil {
			unitCost = *rec.UnitCost
		}
		purchaseCost := unitCost.Mul(decimal.NewFromInt(rec.Quantity))

		perBatch = append(perBatch, BatchCost{
			ProductCode:  rec.ProductCode,
			Quantity:     rec.Quantity,
			UnitCost:     unitCost,
			PurchaseCost: purchaseCost,
		})

		total = total.Add(purchaseCost)
		costSum[rec.ProductCode] = costSum[rec.ProductCode].Add(purchaseCost)
		qtySum[rec.ProductCode] += rec.Quantity
	}

	averages := make(map[string]types.Money, len(costSum))
	for code, sum := range costSum {
		qty := qtySum[code]
		if qty == 0 {
			// Division by zero: the average is undefined, not 0.
			diags = append(diags, unknownAverageCost(code,
				"total stocked quantity is zero; average cost undefined"))
			continue
		}
		averages[code] = sum.Div(decimal.NewFromInt(qty))
	}

	return CostResult{
		PerBatch:          perBatch,
		TotalPurchaseCost: total,
		AverageCosts:      averages,
		Diagnostics:       diags,
	}
}
