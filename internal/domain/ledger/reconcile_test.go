package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/apperror"
	"stockbook/internal/domain/sales"
	"stockbook/internal/domain/stockin"
)

func testDate() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func testSale(code string, qty int64, status sales.Status) sales.Sale {
	s := sales.New(testDate(), "customer")
	s.AddLine(code, qty)
	s.Status = status
	return *s
}

func TestReconcile_NetsReturnsOnce(t *testing.T) {
	stockIn := []stockin.Record{
		*stockin.New("SHIRT", 10, testDate(), ""),
	}
	saleRecords := []sales.Sale{
		testSale("SHIRT", 2, sales.StatusDelivered),
		testSale("SHIRT", 2, sales.StatusDelivered),
		testSale("SHIRT", 3, sales.StatusReturned),
	}

	result := Reconcile(stockIn, saleRecords)

	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, "SHIRT", row.ProductCode)
	assert.Equal(t, int64(10), row.StockIn)
	// Returned quantity enters the gross total once and is subtracted
	// once: (2+2+3) - 3 = 4.
	assert.Equal(t, int64(4), row.StockOut)
	assert.Equal(t, int64(6), row.AvailableStock)
	assert.Empty(t, result.Diagnostics)
}

func TestReconcile_PendingCountsAsStockOut(t *testing.T) {
	stockIn := []stockin.Record{
		*stockin.New("MUG", 5, testDate(), ""),
	}
	saleRecords := []sales.Sale{
		testSale("MUG", 2, sales.StatusProcessing),
		testSale("MUG", 1, sales.StatusSent),
	}

	result := Reconcile(stockIn, saleRecords)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(3), result.Rows[0].StockOut)
	assert.Equal(t, int64(2), result.Rows[0].AvailableStock)
}

func TestReconcile_AvailableStockMayGoNegative(t *testing.T) {
	stockIn := []stockin.Record{
		*stockin.New("CAP", 1, testDate(), ""),
	}
	saleRecords := []sales.Sale{
		testSale("CAP", 3, sales.StatusDelivered),
	}

	result := Reconcile(stockIn, saleRecords)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(-2), result.Rows[0].AvailableStock)
}

func TestReconcile_OrphanProductCodeFlagged(t *testing.T) {
	saleRecords := []sales.Sale{
		testSale("GHOST", 2, sales.StatusDelivered),
	}

	result := Reconcile(nil, saleRecords)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "GHOST", result.Rows[0].ProductCode)
	assert.Equal(t, int64(0), result.Rows[0].StockIn)
	assert.Equal(t, int64(2), result.Rows[0].StockOut)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, apperror.CodeOrphanProductCode, result.Diagnostics[0].Code)
	assert.Equal(t, "GHOST", result.Diagnostics[0].ProductCode)
}

func TestReconcile_MalformedRecordSkipped(t *testing.T) {
	bad := stockin.New("SHIRT", -5, testDate(), "")
	good := stockin.New("SHIRT", 10, testDate(), "")

	result := Reconcile([]stockin.Record{*bad, *good}, nil)

	require.Len(t, result.Rows, 1)
	// The malformed record must not corrupt the valid total.
	assert.Equal(t, int64(10), result.Rows[0].StockIn)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, apperror.CodeDataFormat, result.Diagnostics[0].Code)
	assert.Equal(t, bad.ID.String(), result.Diagnostics[0].RecordID)
}

func TestReconcile_RowsSortedByCode(t *testing.T) {
	stockIn := []stockin.Record{
		*stockin.New("ZEBRA", 1, testDate(), ""),
		*stockin.New("ALPHA", 1, testDate(), ""),
		*stockin.New("MID", 1, testDate(), ""),
	}

	result := Reconcile(stockIn, nil)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, "ALPHA", result.Rows[0].ProductCode)
	assert.Equal(t, "MID", result.Rows[1].ProductCode)
	assert.Equal(t, "ZEBRA", result.Rows[2].ProductCode)
}
