package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/finance"
	"stockbook/internal/domain/purchase"
	"stockbook/internal/domain/sales"
)

// --- Mocks ---

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockSalesRepo struct {
	sales []sales.Sale
}

func (m *mockSalesRepo) Create(ctx context.Context, sale *sales.Sale) error { return nil }
func (m *mockSalesRepo) Update(ctx context.Context, sale *sales.Sale) error { return nil }
func (m *mockSalesRepo) GetByID(ctx context.Context, saleID id.ID) (*sales.Sale, error) {
	return nil, nil
}
func (m *mockSalesRepo) List(ctx context.Context) ([]sales.Sale, error) {
	return m.sales, nil
}

type mockFinanceRepo struct {
	entries map[finance.Collection][]finance.Entry
}

func (m *mockFinanceRepo) Create(ctx context.Context, col finance.Collection, entry *finance.Entry) error {
	return nil
}
func (m *mockFinanceRepo) List(ctx context.Context, col finance.Collection) ([]finance.Entry, error) {
	return m.entries[col], nil
}

type mockPurchaseRepo struct {
	total        types.Money
	averageCosts map[string]types.Money
}

func (m *mockPurchaseRepo) UpsertUnitCost(ctx context.Context, cost purchase.UnitCost) error {
	return nil
}
func (m *mockPurchaseRepo) UnitCosts(ctx context.Context) (map[string]types.Money, error) {
	return nil, nil
}
func (m *mockPurchaseRepo) ReplaceAverageCosts(ctx context.Context, costs []purchase.AverageCost) error {
	return nil
}
func (m *mockPurchaseRepo) AverageCosts(ctx context.Context) (map[string]types.Money, error) {
	return m.averageCosts, nil
}
func (m *mockPurchaseRepo) SavePurchaseTotal(ctx context.Context, total types.Money) error {
	return nil
}
func (m *mockPurchaseRepo) PurchaseTotal(ctx context.Context) (types.Money, error) {
	return m.total, nil
}

type mockSummaryRepo struct {
	summaries map[string]MonthlySummary
	profits   map[string]MonthlyProfit
}

func newMockSummaryRepo() *mockSummaryRepo {
	return &mockSummaryRepo{
		summaries: make(map[string]MonthlySummary),
		profits:   make(map[string]MonthlyProfit),
	}
}

func (m *mockSummaryRepo) UpsertMonthlySummary(ctx context.Context, ms MonthlySummary) error {
	m.summaries[ms.Month] = ms
	return nil
}

func (m *mockSummaryRepo) ListMonthlySummaries(ctx context.Context) ([]MonthlySummary, error) {
	out := make([]MonthlySummary, 0, len(m.summaries))
	for _, ms := range m.summaries {
		out = append(out, ms)
	}
	return out, nil
}

func (m *mockSummaryRepo) UpsertMonthlyProfit(ctx context.Context, mp MonthlyProfit) error {
	m.profits[mp.Month] = mp
	return nil
}

func (m *mockSummaryRepo) ListMonthlyProfits(ctx context.Context) ([]MonthlyProfit, error) {
	out := make([]MonthlyProfit, 0, len(m.profits))
	for _, mp := range m.profits {
		out = append(out, mp)
	}
	return out, nil
}

// --- Helpers ---

func saleAt(date time.Time, code string, qty int64, status sales.Status) sales.Sale {
	s := sales.New(date, "customer")
	s.AddLine(code, qty)
	s.Status = status
	return *s
}

func newTestService(salesRepo *mockSalesRepo, financeRepo *mockFinanceRepo, purchaseRepo *mockPurchaseRepo, repo *mockSummaryRepo) *Service {
	if financeRepo == nil {
		financeRepo = &mockFinanceRepo{entries: map[finance.Collection][]finance.Entry{}}
	}
	if purchaseRepo == nil {
		purchaseRepo = &mockPurchaseRepo{total: types.Zero()}
	}
	return NewService(salesRepo, financeRepo, purchaseRepo, repo, mockTxManager{})
}

// --- Tests ---

func TestDashboard_OverwritesMonthlySummaries(t *testing.T) {
	ctx := context.Background()
	feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	repo := newMockSummaryRepo()
	// Stale counts from a previous run. A fresh rollup must overwrite
	// them, not add to them.
	repo.summaries["Feb 2025"] = MonthlySummary{Month: "Feb 2025", Delivered: 99, Returned: 99}

	salesRepo := &mockSalesRepo{sales: []sales.Sale{
		saleAt(feb, "SHIRT", 1, sales.StatusDelivered),
		saleAt(feb, "SHIRT", 1, sales.StatusReturned),
	}}
	svc := newTestService(salesRepo, nil, nil, repo)

	report, err := svc.Dashboard(ctx, feb)
	require.NoError(t, err)

	stored := repo.summaries["Feb 2025"]
	assert.Equal(t, 1, stored.Delivered)
	assert.Equal(t, 1, stored.Returned)

	assert.Equal(t, 1, report.TotalDelivered)
	assert.Equal(t, 1, report.TotalReturned)
	assert.Equal(t, "Feb 2025", report.CurrentMonth.Month)
}

func TestDashboard_RerunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mar := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	repo := newMockSummaryRepo()
	salesRepo := &mockSalesRepo{sales: []sales.Sale{
		saleAt(mar, "SHIRT", 1, sales.StatusDelivered),
	}}
	svc := newTestService(salesRepo, nil, nil, repo)

	_, err := svc.Dashboard(ctx, mar)
	require.NoError(t, err)
	_, err = svc.Dashboard(ctx, mar)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.summaries["Mar 2025"].Delivered)
}

func TestProfitLoss_ComputesReport(t *testing.T) {
	ctx := context.Background()
	midMonth := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	financeRepo := &mockFinanceRepo{entries: map[finance.Collection][]finance.Entry{
		finance.Expenses:    {*finance.NewEntry(midMonth, "fees", types.MustMoney("100"))},
		finance.Income:      {*finance.NewEntry(midMonth, "cod", types.MustMoney("500"))},
		finance.Investments: {*finance.NewEntry(midMonth, "capital", types.MustMoney("50"))},
	}}
	purchaseRepo := &mockPurchaseRepo{
		total:        types.MustMoney("200"),
		averageCosts: map[string]types.Money{"SHIRT": types.MustMoney("10")},
	}
	salesRepo := &mockSalesRepo{sales: []sales.Sale{
		saleAt(midMonth, "SHIRT", 3, sales.StatusDelivered),
	}}
	repo := newMockSummaryRepo()
	svc := newTestService(salesRepo, financeRepo, purchaseRepo, repo)

	report, err := svc.ProfitLoss(ctx, midMonth)
	require.NoError(t, err)

	assert.True(t, types.MustMoney("200").Equal(report.ProfitLoss))
	assert.True(t, types.MustMoney("250").Equal(report.CashInHand))
	assert.True(t, types.MustMoney("170").Equal(report.RemainingStockValue))

	// Mid-month run must not close the month.
	assert.False(t, report.MonthClosed)
	assert.Empty(t, repo.profits)
}

func TestProfitLoss_SavesProfitOnLastDayOfMonth(t *testing.T) {
	ctx := context.Background()
	lastDay := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	financeRepo := &mockFinanceRepo{entries: map[finance.Collection][]finance.Entry{
		finance.Income: {*finance.NewEntry(lastDay, "cod", types.MustMoney("300"))},
	}}
	repo := newMockSummaryRepo()
	svc := newTestService(&mockSalesRepo{}, financeRepo, nil, repo)

	report, err := svc.ProfitLoss(ctx, lastDay)
	require.NoError(t, err)

	assert.True(t, report.MonthClosed)
	saved, ok := repo.profits["Feb 2025"]
	require.True(t, ok)
	assert.True(t, types.MustMoney("300").Equal(saved.Amount))
	require.Len(t, report.MonthlyProfits, 1)
}

func TestIsLastDayOfMonth(t *testing.T) {
	assert.True(t, isLastDayOfMonth(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.True(t, isLastDayOfMonth(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.True(t, isLastDayOfMonth(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, isLastDayOfMonth(time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)))
	assert.False(t, isLastDayOfMonth(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}
