// Package summary provides the persisted derived summaries: monthly
// delivered/returned counts and the month-end profit history, plus the
// dashboard and profit/loss reports built on the ledger.
package summary

import (
	"time"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/ledger"
)

// MonthlySummary is the persisted delivered/returned tally of one month,
// keyed by the "Jan 2006" month key. Upserted on every rollup: the
// freshly computed counts overwrite the stored ones, they are never
// added, because each rollup covers the full sales set.
type MonthlySummary struct {
	Month     string    `db:"month" json:"month"`
	Delivered int       `db:"delivered" json:"delivered"`
	Returned  int       `db:"returned" json:"returned"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// MonthlyProfit is the profit figure saved for a closed month.
type MonthlyProfit struct {
	Month   string      `db:"month" json:"month"`
	Amount  types.Money `db:"amount" json:"amount"`
	SavedAt time.Time   `db:"saved_at" json:"savedAt"`
}

// DashboardReport is the sales dashboard: the fresh rollup plus the
// persisted month history.
type DashboardReport struct {
	CurrentMonth   ledger.MonthCount `json:"currentMonth"`
	TotalDelivered int               `json:"totalDelivered"`
	TotalReturned  int               `json:"totalReturned"`
	History        []MonthlySummary  `json:"history"`
}

// ProfitLossReport is the financial rollup plus the saved profit history.
type ProfitLossReport struct {
	ledger.FinancialResult

	MonthlyProfits []MonthlyProfit `json:"monthlyProfits"`

	// MonthClosed reports whether this run persisted the current
	// month's profit (true only on the last day of the month).
	MonthClosed bool `json:"monthClosed"`
}
