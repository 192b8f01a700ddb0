package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/sales"
)

func entry(amount string) finance.Entry {
	return *finance.NewEntry(testDate(), "entry", types.MustMoney(amount))
}

func TestComputeFinancials_FullScenario(t *testing.T) {
	expenses := []finance.Entry{entry("100")}
	income := []finance.Entry{entry("500")}
	investment := []finance.Entry{entry("50")}
	purchaseTotal := types.MustMoney("200")
	averageCosts := map[string]types.Money{
		"SHIRT": types.MustMoney("10"),
	}
	saleRecords := []sales.Sale{
		testSale("SHIRT", 3, sales.StatusDelivered),
	}

	result := ComputeFinancials(expenses, income, investment, purchaseTotal, averageCosts, saleRecords)

	assertMoney(t, "100", result.TotalExpenses)
	assertMoney(t, "500", result.TotalIncome)
	assertMoney(t, "50", result.TotalInvestment)
	assertMoney(t, "30", result.TotalSoldCost)
	// income - (expenses + purchaseTotal)
	assertMoney(t, "200", result.ProfitLoss)
	// (income + investment) - (expenses + purchaseTotal)
	assertMoney(t, "250", result.CashInHand)
	// purchaseTotal - totalSoldCost
	assertMoney(t, "170", result.RemainingStockValue)
	assert.Empty(t, result.Diagnostics)
}

func TestComputeFinancials_DeliveredOnlySoldCost(t *testing.T) {
	averageCosts := map[string]types.Money{
		"SHIRT": types.MustMoney("10"),
	}
	saleRecords := []sales.Sale{
		testSale("SHIRT", 2, sales.StatusDelivered),
		testSale("SHIRT", 5, sales.StatusProcessing),
		testSale("SHIRT", 5, sales.StatusSent),
		testSale("SHIRT", 5, sales.StatusReturned),
	}

	result := ComputeFinancials(nil, nil, nil, types.Zero(), averageCosts, saleRecords)

	// Only the delivered sale contributes.
	assertMoney(t, "20", result.TotalSoldCost)
	require.Len(t, result.PerProductCost, 1)
	assert.Equal(t, int64(2), result.PerProductCost[0].Quantity)
}

func TestComputeFinancials_UnknownAverageCostFlagged(t *testing.T) {
	saleRecords := []sales.Sale{
		testSale("GHOST", 4, sales.StatusDelivered),
	}

	result := ComputeFinancials(nil, nil, nil, types.Zero(), nil, saleRecords)

	// Contribution is 0, but the gap is flagged rather than silently
	// treated as free.
	assertMoney(t, "0", result.TotalSoldCost)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, apperror.CodeUnknownAverageCost, result.Diagnostics[0].Code)
	assert.Equal(t, "GHOST", result.Diagnostics[0].ProductCode)
}

func TestComputeFinancials_NegativeEntrySkipped(t *testing.T) {
	bad := entry("-40")
	expenses := []finance.Entry{entry("100"), bad}

	result := ComputeFinancials(expenses, nil, nil, types.Zero(), nil, nil)

	assertMoney(t, "100", result.TotalExpenses)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, apperror.CodeDataFormat, result.Diagnostics[0].Code)
	assert.Equal(t, bad.ID.String(), result.Diagnostics[0].RecordID)
}

func TestComputeFinancials_ProductCodeTrimmed(t *testing.T) {
	averageCosts := map[string]types.Money{
		"SHIRT": types.MustMoney("10"),
	}
	sale := sales.New(testDate(), "customer")
	sale.Lines = []sales.Line{{ProductCode: " SHIRT ", Quantity: 1}}
	sale.Status = sales.StatusDelivered

	result := ComputeFinancials(nil, nil, nil, types.Zero(), averageCosts, []sales.Sale{*sale})

	assertMoney(t, "10", result.TotalSoldCost)
	assert.Empty(t, result.Diagnostics)
}
