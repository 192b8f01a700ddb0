package ledger

import (
	"sort"

	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
)

// InventoryRow is the derived stock position of one product code.
// Not persisted; recomputed from scratch on every reconciliation.
type InventoryRow struct {
	ProductCode    string `json:"productCode"`
	StockIn        int64  `json:"stockIn"`
	StockOut       int64  `json:"stockOut"`
	AvailableStock int64  `json:"availableStock"`
}

// ReconcileResult is the output of a stock reconciliation pass.
type ReconcileResult struct {
	Rows        []InventoryRow `json:"rows"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// Reconcile computes per-product stock-in totals, stock-out totals net of
// returns, and available stock.
//
// Stock-out counts every non-returned sale line, pending parcels included;
// returned quantity is subtracted exactly once. Available stock may go
// negative: that signals oversold or mis-entered data and is deliberately
// not clamped. Records with a malformed quantity are skipped with a
// diagnostic instead of corrupting the totals of valid records. Product
// codes sold but never stocked are emitted with stock-in 0 and flagged,
// not dropped.
func Reconcile(stockIn []stockin.Record, saleRecords []sales.Sale) ReconcileResult {
	var diags []Diagnostic

	inQty := make(map[string]int64)
	for _, rec := range stockIn {
		if rec.Quantity < 0 {
			diags = append(diags, dataFormat(rec.ID.String(), "quantity"))
			continue
		}
		inQty[rec.ProductCode] += rec.Quantity
	}

	outQty := make(map[string]int64)
	returnedQty := make(map[string]int64)
	for _, sale := range saleRecords {
		returned := Classify(sale.Status) == ClassReturned
		for _, line := range sale.Lines {
			if line.Quantity < 0 {
				diags = append(diags, dataFormat(sale.ID.String(), "quantity"))
				continue
			}
			outQty[line.ProductCode] += line.Quantity
			if returned {
				returnedQty[line.ProductCode] += line.Quantity
			}
		}
	}

	codes := make(map[string]struct{}, len(inQty))
	for code := range inQty {
		codes[code] = struct{}{}
	}
	for code := range outQty {
		if _, stocked := codes[code]; !stocked {
			codes[code] = struct{}{}
			diags = append(diags, orphanProductCode(code))
		}
	}

	rows := make([]InventoryRow, 0, len(codes))
	for code := range codes {
		stockOut := outQty[code] - returnedQty[code]
		rows = append(rows, InventoryRow{
			ProductCode:    code,
			StockIn:        inQty[code],
			StockOut:       stockOut,
			AvailableStock: inQty[code] - stockOut,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProductCode < rows[j].ProductCode
	})

	return ReconcileResult{Rows: rows, Diagnostics: diags}
}
