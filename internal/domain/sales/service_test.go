package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
)

type mockRepo struct {
	stored map[id.ID]*Sale
}

func newMockRepo() *mockRepo {
	return &mockRepo{stored: make(map[id.ID]*Sale)}
}

func (m *mockRepo) Create(ctx context.Context, sale *Sale) error {
	copied := *sale
	m.stored[sale.ID] = &copied
	return nil
}

func (m *mockRepo) Update(ctx context.Context, sale *Sale) error {
	sale.Version++
	copied := *sale
	m.stored[sale.ID] = &copied
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	copied := *m.stored[saleID]
	return &copied, nil
}

func (m *mockRepo) List(ctx context.Context) ([]Sale, error) {
	out := make([]Sale, 0, len(m.stored))
	for _, s := range m.stored {
		out = append(out, *s)
	}
	return out, nil
}

type mockHistory struct {
	changes []StatusChange
}

func (m *mockHistory) Record(ctx context.Context, change StatusChange, snapshot *Sale) error {
	m.changes = append(m.changes, change)
	return nil
}

func (m *mockHistory) ListBySale(ctx context.Context, saleID id.ID) ([]StatusChange, error) {
	var out []StatusChange
	for _, c := range m.changes {
		if c.SaleID == saleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestService_Update_RecordsStatusChange(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	history := &mockHistory{}
	svc := NewService(repo, history)

	sale := New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Aye Chan")
	sale.AddLine("SHIRT", 1)
	require.NoError(t, svc.Create(ctx, sale))

	sale.Status = StatusDelivered
	require.NoError(t, svc.Update(ctx, sale))

	require.Len(t, history.changes, 1)
	change := history.changes[0]
	assert.Equal(t, sale.ID, change.SaleID)
	assert.Equal(t, StatusProcessing, change.From)
	assert.Equal(t, StatusDelivered, change.To)
}

func TestService_Update_NoStatusChangeNoHistory(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	history := &mockHistory{}
	svc := NewService(repo, history)

	sale := New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Aye Chan")
	sale.AddLine("SHIRT", 1)
	require.NoError(t, svc.Create(ctx, sale))

	sale.Address = "No. 5, Main Road"
	require.NoError(t, svc.Update(ctx, sale))

	assert.Empty(t, history.changes)
}

func TestService_Update_RejectsInvalidSale(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo(), &mockHistory{})

	sale := New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Aye Chan")
	// No lines: must fail validation before touching the repository.
	assert.Error(t, svc.Update(ctx, sale))
}

func TestService_History_FiltersBySale(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	history := &mockHistory{}
	svc := NewService(repo, history)

	first := New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Aye Chan")
	first.AddLine("SHIRT", 1)
	second := New(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "Min Thu")
	second.AddLine("MUG", 2)
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))

	first.Status = StatusSent
	require.NoError(t, svc.Update(ctx, first))
	second.Status = StatusDelivered
	require.NoError(t, svc.Update(ctx, second))

	changes, err := svc.History(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, StatusSent, changes[0].To)
}
