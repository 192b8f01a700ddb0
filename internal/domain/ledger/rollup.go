package ledger

import (
	"time"

	"stockbook/internal/domain/sales"
)

// MonthCount is the delivered/returned tally of one calendar month.
type MonthCount struct {
	Month     string `json:"month"`
	Delivered int    `json:"delivered"`
	Returned  int    `json:"returned"`
}

// RollupResult is the output of a sales rollup pass.
type RollupResult struct {
	// Months holds one entry per distinct month observed in the sales
	// data, keyed by MonthKey of the record's own date.
	Months map[string]MonthCount `json:"months"`

	// CurrentMonth is the entry for MonthKey(asOf), zero counts when no
	// sales fall in that month yet.
	CurrentMonth MonthCount `json:"currentMonth"`

	TotalDelivered int `json:"totalDelivered"`
	TotalReturned  int `json:"totalReturned"`
}

// MonthKey formats a date as the stable month key, e.g. "Mar 2025".
func MonthKey(t time.Time) string {
	return t.Format("Jan 2006")
}

// Rollup groups sales by calendar month of their stated date and counts
// delivered and returned records. Pending parcels increment neither.
// Pure and idempotent: the computed map is authoritative for a run, so a
// caller persisting it must overwrite stored counts, never add to them.
func Rollup(saleRecords []sales.Sale, asOf time.Time) RollupResult {
	months := make(map[string]MonthCount)
	var delivered, returned int

	for _, sale := range saleRecords {
		class := Classify(sale.Status)
		if class == ClassPending {
			continue
		}

		key := MonthKey(sale.Date)
		mc := months[key]
		mc.Month = key

		switch class {
		case ClassCounted:
			mc.Delivered++
			delivered++
		case ClassReturned:
			mc.Returned++
			returned++
		}
		months[key] = mc
	}

	currentKey := MonthKey(asOf)
	current, ok := months[currentKey]
	if !ok {
		current = MonthCount{Month: currentKey}
	}

	return RollupResult{
		Months:         months,
		CurrentMonth:   current,
		TotalDelivered: delivered,
		TotalReturned:  returned,
	}
}
