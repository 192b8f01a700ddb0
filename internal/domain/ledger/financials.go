package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/sales"
)

// ProductCost is the sold cost of one product code over delivered sales.
type ProductCost struct {
	ProductCode string      `json:"productCode"`
	Quantity    int64       `json:"quantity"`
	UnitCost    types.Money `json:"unitCost"`
	TotalCost   types.Money `json:"totalCost"`
}

// FinancialResult is the output of a profit/loss pass.
type FinancialResult struct {
	TotalExpenses   types.Money `json:"totalExpenses"`
	TotalIncome     types.Money `json:"totalIncome"`
	TotalInvestment types.Money `json:"totalInvestment"`
	PurchaseTotal   types.Money `json:"purchaseTotal"`

	// PerProductCost aggregates delivered sales only, one row per
	// product code, sorted by code.
	PerProductCost []ProductCost `json:"perProductCost"`

	TotalSoldCost       types.Money `json:"totalSoldCost"`
	ProfitLoss          types.Money `json:"profitLoss"`
	CashInHand          types.Money `json:"cashInHand"`
	RemainingStockValue types.Money `json:"remainingStockValue"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// ComputeFinancials combines the cash book, the cached purchase total and
// average costs, and the sales set into the profit/loss figures:
//
//	profitLoss          = income − (expenses + purchaseTotal)
//	cashInHand          = (income + investment) − (expenses + purchaseTotal)
//	remainingStockValue = purchaseTotal − totalSoldCost
//
// Sold cost covers delivered sales only. A product sold without a known
// average cost contributes 0 to sold cost and is flagged; treating it as
// free silently would understate sold cost without anyone noticing.
func ComputeFinancials(
	expenses, income, investment []finance.Entry,
	purchaseTotal types.Money,
	averageCosts map[string]types.Money,
	saleRecords []sales.Sale,
) FinancialResult {
	var diags []Diagnostic

	totalExpenses := sumEntries(expenses, &diags)
	totalIncome := sumEntries(income, &diags)
	totalInvestment := sumEntries(investment, &diags)

	// Summed delivered quantity per product code.
	soldQty := make(map[string]int64)
	for _, sale := range saleRecords {
		if Classify(sale.Status) != ClassCounted {
			continue
		}
		for _, line := range sale.Lines {
			if line.Quantity < 0 {
				diags = append(diags, dataFormat(sale.ID.String(), "quantity"))
				continue
			}
			soldQty[strings.TrimSpace(line.ProductCode)] += line.Quantity
		}
	}

	perProduct := make([]ProductCost, 0, len(soldQty))
	totalSoldCost := types.Zero()
	for code, qty := range soldQty {
		avgCost, known := averageCosts[code]
		if !known {
			avgCost = types.Zero()
			diags = append(diags, unknownAverageCost(code,
				"no average cost recorded; sold cost contribution is 0"))
		}
		cost := avgCost.Mul(decimal.NewFromInt(qty))
		perProduct = append(perProduct, ProductCost{
			ProductCode: code,
			Quantity:    qty,
			UnitCost:    avgCost,
			TotalCost:   cost,
		})
		totalSoldCost = totalSoldCost.Add(cost)
	}
	sort.Slice(perProduct, func(i, j int) bool {
		return perProduct[i].ProductCode < perProduct[j].ProductCode
	})

	outflow := totalExpenses.Add(purchaseTotal)

	return FinancialResult{
		TotalExpenses:       totalExpenses,
		TotalIncome:         totalIncome,
		TotalInvestment:     totalInvestment,
		PurchaseTotal:       purchaseTotal,
		PerProductCost:      perProduct,
		TotalSoldCost:       totalSoldCost,
		ProfitLoss:          totalIncome.Sub(outflow),
		CashInHand:          totalIncome.Add(totalInvestment).Sub(outflow),
		RemainingStockValue: purchaseTotal.Sub(totalSoldCost),
		Diagnostics:         diags,
	}
}

// sumEntries totals a cash book collection, skipping records with
// negative amounts so one bad entry cannot corrupt the valid total.
func sumEntries(entries []finance.Entry, diags *[]Diagnostic) types.Money {
	total := types.Zero()
	for _, e := range entries {
		if e.Amount.IsNegative() {
			*diags = append(*diags, dataFormat(e.ID.String(), "amount"))
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}
