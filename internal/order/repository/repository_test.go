package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/order/domain"
	"github.com/neonshop/commerce-core/internal/storage"
)

func newTestRepo(t *testing.T) *FileOrderRepository {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := NewFileOrderRepository(store)
	require.NoError(t, err)
	return repo
}

func sampleOrder() domain.Order {
	return domain.Order{
		CustomerID:    7,
		CustomerName:  "Ana Souza",
		CustomerEmail: "ana@example.com",
		ShippingAddress: domain.Address{
			Street:       "Rua Augusta",
			Number:       "1500",
			Neighborhood: "Consolação",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01304-001",
		},
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Neon Lamp", Price: 50, Quantity: 2},
		},
		ShippingCost: 15,
	}
}

func TestCreateAssignsNumberAndDefaults(t *testing.T) {
	repo := newTestRepo(t)

	o := sampleOrder()
	require.NoError(t, repo.Create(&o))

	assert.Equal(t, uint(1), o.ID)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "NS-"), "got %s", o.OrderNumber)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, domain.PaymentPending, o.PaymentStatus)
	assert.Equal(t, 115.0, o.Total, "subtotal 100 + shipping 15")
}

func TestCreateRecalculatesBeforeValidation(t *testing.T) {
	repo := newTestRepo(t)

	o := sampleOrder()
	o.Total = 9999 // stale total supplied by the caller
	require.NoError(t, repo.Create(&o))

	found, err := repo.FindByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, found.Subtotal+found.ShippingCost-found.Discount, found.Total)
}

func TestFindByOrderNumber(t *testing.T) {
	repo := newTestRepo(t)
	o := sampleOrder()
	require.NoError(t, repo.Create(&o))

	found, err := repo.FindByOrderNumber(strings.ToLower(o.OrderNumber))
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.ID)

	_, err = repo.FindByOrderNumber("NS-19700101-DEADBEEF")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdatePreservesNumberAndCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	o := sampleOrder()
	require.NoError(t, repo.Create(&o))

	changed := o
	changed.OrderNumber = "NS-FORGED-NUMBER"
	changed.Notes = "leave at the door"
	require.NoError(t, repo.Update(&changed))

	found, err := repo.FindByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, found.OrderNumber)
	assert.Equal(t, o.CreatedAt, found.CreatedAt)
	assert.Equal(t, "leave at the door", found.Notes)
}

func TestHistoryAppendAndNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	o := sampleOrder()
	require.NoError(t, repo.Create(&o))

	older := &domain.OrderHistory{
		OrderID:   o.ID,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &domain.OrderHistory{
		OrderID: o.ID,
		Status:  domain.StatusConfirmed,
	}
	require.NoError(t, repo.AddHistory(older))
	require.NoError(t, repo.AddHistory(newer))

	entries, err := repo.HistoryForOrder(o.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StatusConfirmed, entries[0].Status)
	assert.Equal(t, domain.StatusPending, entries[1].Status)
}

func TestAddHistoryRequiresExistingOrder(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.AddHistory(&domain.OrderHistory{OrderID: 42, Status: domain.StatusPending})

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteCascadesHistory(t *testing.T) {
	repo := newTestRepo(t)
	o := sampleOrder()
	require.NoError(t, repo.Create(&o))
	require.NoError(t, repo.AddHistory(&domain.OrderHistory{OrderID: o.ID, Status: domain.StatusPending}))

	keep := sampleOrder()
	require.NoError(t, repo.Create(&keep))
	require.NoError(t, repo.AddHistory(&domain.OrderHistory{OrderID: keep.ID, Status: domain.StatusPending}))

	require.NoError(t, repo.Delete(o.ID))

	_, err := repo.FindByID(o.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	gone, err := repo.HistoryForOrder(o.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.HistoryForOrder(keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestFindWithFiltersByStatusAndCustomer(t *testing.T) {
	repo := newTestRepo(t)

	first := sampleOrder()
	require.NoError(t, repo.Create(&first))

	second := sampleOrder()
	second.CustomerID = 8
	second.CustomerName = "Bruno Lima"
	second.CustomerEmail = "bruno@example.com"
	require.NoError(t, repo.Create(&second))

	loaded, err := repo.FindByID(second.ID)
	require.NoError(t, err)
	require.NoError(t, loaded.TransitionTo(domain.StatusConfirmed))
	require.NoError(t, repo.Update(loaded))

	items, meta, err := repo.FindWithFilters(domain.OrderFilter{Status: domain.StatusConfirmed}, 1, 10, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, 1, meta.Total)

	cid := uint(7)
	items, _, err = repo.FindWithFilters(domain.OrderFilter{CustomerID: &cid}, 1, 10, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)
}

func TestStatsExcludesCancelledRevenue(t *testing.T) {
	repo := newTestRepo(t)

	kept := sampleOrder()
	require.NoError(t, repo.Create(&kept))

	cancelled := sampleOrder()
	require.NoError(t, repo.Create(&cancelled))
	loaded, err := repo.FindByID(cancelled.ID)
	require.NoError(t, err)
	require.NoError(t, loaded.TransitionTo(domain.StatusCancelled))
	require.NoError(t, repo.Update(loaded))

	stats, err := repo.Stats("month")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 115.0, stats.TotalRevenue, "cancelled order contributes no revenue")
	assert.Equal(t, 1, stats.ByStatus[domain.StatusPending])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusCancelled])
	assert.InDelta(t, 57.5, stats.AverageTicket, 0.001)
}
