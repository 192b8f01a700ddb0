package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/types"
	"stockbook/internal/domain/stockin"
)

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockStockRepo struct {
	records []stockin.Record
}

func (m *mockStockRepo) Create(ctx context.Context, rec *stockin.Record) error { return nil }
func (m *mockStockRepo) List(ctx context.Context) ([]stockin.Record, error) {
	return m.records, nil
}
func (m *mockStockRepo) ProductCodes(ctx context.Context) ([]string, error) { return nil, nil }

type mockRepo struct {
	unitCosts    map[string]types.Money
	averageCosts []AverageCost
	total        types.Money
	totalSaved   bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{unitCosts: make(map[string]types.Money), total: types.Zero()}
}

func (m *mockRepo) UpsertUnitCost(ctx context.Context, cost UnitCost) error {
	m.unitCosts[cost.ProductCode] = cost.UnitCost
	return nil
}

func (m *mockRepo) UnitCosts(ctx context.Context) (map[string]types.Money, error) {
	return m.unitCosts, nil
}

func (m *mockRepo) ReplaceAverageCosts(ctx context.Context, costs []AverageCost) error {
	m.averageCosts = costs
	return nil
}

func (m *mockRepo) AverageCosts(ctx context.Context) (map[string]types.Money, error) {
	out := make(map[string]types.Money, len(m.averageCosts))
	for _, c := range m.averageCosts {
		out[c.ProductCode] = c.AverageCost
	}
	return out, nil
}

func (m *mockRepo) SavePurchaseTotal(ctx context.Context, total types.Money) error {
	m.total = total
	m.totalSaved = true
	return nil
}

func (m *mockRepo) PurchaseTotal(ctx context.Context) (types.Money, error) {
	return m.total, nil
}

func testDate() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestSetUnitCost_RecomputesDerivedRecords(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	stockRepo := &mockStockRepo{records: []stockin.Record{
		*stockin.New("SHIRT", 10, testDate(), ""),
		*stockin.New("SHIRT", 5, testDate(), ""),
	}}
	svc := NewService(repo, stockRepo, mockTxManager{})

	result, err := svc.SetUnitCost(ctx, UnitCost{
		ProductCode: "SHIRT",
		UnitCost:    types.MustMoney("2"),
	})
	require.NoError(t, err)

	assert.True(t, types.MustMoney("30").Equal(result.TotalPurchaseCost))
	assert.True(t, repo.totalSaved)
	assert.True(t, types.MustMoney("30").Equal(repo.total))

	require.Len(t, repo.averageCosts, 1)
	assert.Equal(t, "SHIRT", repo.averageCosts[0].ProductCode)
	assert.True(t, types.MustMoney("2").Equal(repo.averageCosts[0].AverageCost))
}

func TestSetUnitCost_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	stockRepo := &mockStockRepo{records: []stockin.Record{
		*stockin.New("SHIRT", 10, testDate(), ""),
	}}
	svc := NewService(repo, stockRepo, mockTxManager{})

	_, err := svc.SetUnitCost(ctx, UnitCost{ProductCode: "SHIRT", UnitCost: types.MustMoney("2")})
	require.NoError(t, err)
	result, err := svc.SetUnitCost(ctx, UnitCost{ProductCode: "SHIRT", UnitCost: types.MustMoney("3")})
	require.NoError(t, err)

	assert.True(t, types.MustMoney("3").Equal(repo.unitCosts["SHIRT"]))
	assert.True(t, types.MustMoney("30").Equal(result.TotalPurchaseCost))
}

func TestSetUnitCost_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo(), &mockStockRepo{}, mockTxManager{})

	_, err := svc.SetUnitCost(ctx, UnitCost{ProductCode: "  ", UnitCost: types.MustMoney("2")})
	assert.Error(t, err)

	_, err = svc.SetUnitCost(ctx, UnitCost{ProductCode: "SHIRT", UnitCost: types.MustMoney("-1")})
	assert.Error(t, err)
}

func TestSummary_RecomputesFromCurrentRecords(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.unitCosts["MUG"] = types.MustMoney("1.25")
	stockRepo := &mockStockRepo{records: []stockin.Record{
		*stockin.New("MUG", 24, testDate(), ""),
	}}
	svc := NewService(repo, stockRepo, mockTxManager{})

	result, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.True(t, types.MustMoney("30").Equal(result.TotalPurchaseCost))
	avg, ok := result.AverageCosts["MUG"]
	require.True(t, ok)
	assert.True(t, types.MustMoney("1.25").Equal(avg))
}
