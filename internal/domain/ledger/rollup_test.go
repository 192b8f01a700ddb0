package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/domain/sales"
)

func saleInMonth(year int, month time.Month, status sales.Status) sales.Sale {
	s := sales.New(time.Date(year, month, 15, 0, 0, 0, 0, time.UTC), "customer")
	s.AddLine("SHIRT", 1)
	s.Status = status
	return *s
}

func TestRollup_GroupsByMonth(t *testing.T) {
	saleRecords := []sales.Sale{
		saleInMonth(2025, time.February, sales.StatusDelivered),
		saleInMonth(2025, time.February, sales.StatusDelivered),
		saleInMonth(2025, time.February, sales.StatusReturned),
		saleInMonth(2025, time.March, sales.StatusDelivered),
		saleInMonth(2025, time.March, sales.StatusProcessing),
		saleInMonth(2025, time.March, sales.StatusSent),
	}

	asOf := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	result := Rollup(saleRecords, asOf)

	require.Len(t, result.Months, 2)

	feb := result.Months["Feb 2025"]
	assert.Equal(t, 2, feb.Delivered)
	assert.Equal(t, 1, feb.Returned)

	// Pending parcels increment neither counter.
	mar := result.Months["Mar 2025"]
	assert.Equal(t, 1, mar.Delivered)
	assert.Equal(t, 0, mar.Returned)

	assert.Equal(t, mar, result.CurrentMonth)
	assert.Equal(t, 3, result.TotalDelivered)
	assert.Equal(t, 1, result.TotalReturned)
}

func TestRollup_CurrentMonthWithoutSales(t *testing.T) {
	saleRecords := []sales.Sale{
		saleInMonth(2025, time.January, sales.StatusDelivered),
	}

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	result := Rollup(saleRecords, asOf)

	assert.Equal(t, MonthCount{Month: "Jun 2025"}, result.CurrentMonth)
	assert.NotContains(t, result.Months, "Jun 2025")
}

func TestRollup_Idempotent(t *testing.T) {
	saleRecords := []sales.Sale{
		saleInMonth(2025, time.April, sales.StatusDelivered),
		saleInMonth(2025, time.April, sales.StatusReturned),
	}
	asOf := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	first := Rollup(saleRecords, asOf)
	second := Rollup(saleRecords, asOf)

	assert.Equal(t, first, second)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "Mar 2025", MonthKey(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dec 2024", MonthKey(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
}
