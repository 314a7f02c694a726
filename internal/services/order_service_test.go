package services_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/utsab8/Ecommerce-Cart-System/internal/cart"
	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
)

type countingWriter struct {
	calls int
	err   error
}

func (w *countingWriter) InsertBatch(lines []repos.OrderLine) error {
	w.calls++
	return w.err
}

func item(id int, name, price string, qty int) cart.Item {
	return cart.Item{
		Product: domain.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)},
		Qty:     qty,
	}
}

func TestPlaceRejectsEmptyCartBeforePersistence(t *testing.T) {
	w := &countingWriter{}
	svc := services.NewOrderService(w)

	err := svc.Place(1, nil)
	require.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Zero(t, w.calls, "empty cart must not reach the store")

	err = svc.Place(1, []cart.Item{})
	require.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Zero(t, w.calls)
}

func TestPlaceSurfacesPersistenceFailureAsError(t *testing.T) {
	w := &countingWriter{err: errors.New("connection lost")}
	svc := services.NewOrderService(w)

	err := svc.Place(1, []cart.Item{item(1, "Laptop", "1299.99", 2)})
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmptyCart)
	assert.Equal(t, 1, w.calls)
}

func TestPlaceWritesOneRowPerLineWithLineTotals(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)

	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewOrderService(orderRepo)

	items := []cart.Item{
		item(1, "Laptop", "1299.99", 2),
		item(3, "Headphones", "199.99", 1),
	}
	require.NoError(t, svc.Place(42, items))

	rows, err := orderRepo.ListByUser(42)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]repos.OrderRow{}
	for _, r := range rows {
		byName[r.ProductName] = r
	}
	require.Contains(t, byName, "Laptop")
	assert.Equal(t, 2, byName["Laptop"].Quantity)
	assert.True(t, byName["Laptop"].TotalPrice.Equal(decimal.RequireFromString("2599.98")),
		"want 2599.98, got %s", byName["Laptop"].TotalPrice)
	require.Contains(t, byName, "Headphones")
	assert.True(t, byName["Headphones"].TotalPrice.Equal(decimal.RequireFromString("199.99")))
}

func TestPlaceBatchRollsBackOnAnyBadLine(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)

	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewOrderService(orderRepo)

	// Second line violates the quantity check; the whole batch must roll
	// back, leaving no partial writes.
	items := []cart.Item{
		item(1, "Laptop", "1299.99", 1),
		item(2, "Smartphone", "799.99", 0),
	}
	require.Error(t, svc.Place(42, items))

	rows, err := orderRepo.ListByUser(42)
	require.NoError(t, err)
	assert.Empty(t, rows, "failed batch must not leave partial rows")
}
