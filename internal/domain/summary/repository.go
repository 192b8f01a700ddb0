package summary

import (
	"context"
)

// Repository persists the derived monthly summaries and profit history.
type Repository interface {
	// UpsertMonthlySummary overwrites the stored counts for the
	// summary's month key, inserting the row when absent.
	UpsertMonthlySummary(ctx context.Context, ms MonthlySummary) error

	// ListMonthlySummaries returns all summaries, most recent update
	// first.
	ListMonthlySummaries(ctx context.Context) ([]MonthlySummary, error)

	// UpsertMonthlyProfit overwrites the saved profit for a month key.
	UpsertMonthlyProfit(ctx context.Context, mp MonthlyProfit) error

	// ListMonthlyProfits returns the saved profit history.
	ListMonthlyProfits(ctx context.Context) ([]MonthlyProfit, error)
}
