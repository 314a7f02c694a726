package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsab8/Ecommerce-Cart-System/internal/cart"
	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

func product(id int, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.RequireFromString(price), Stock: 10}
}

func TestAddItemMergesOnSecondAdd(t *testing.T) {
	c := cart.New()
	p := product(1, "Laptop", "1299.99")

	c.AddItem(p)
	c.AddItem(p)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddItemMatchesByID(t *testing.T) {
	c := cart.New()
	// Two distinct products sharing a name must not merge.
	c.AddItem(product(1, "Laptop", "1299.99"))
	c.AddItem(product(2, "Laptop", "899.99"))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.ItemCount())
}

func TestIncreaseQuantityNeverCreatesALine(t *testing.T) {
	c := cart.New()
	c.IncreaseQuantity(product(1, "Laptop", "1299.99"))

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.ItemCount())
}

func TestDecreaseQuantityRemovesAtZero(t *testing.T) {
	c := cart.New()
	p := product(1, "Laptop", "1299.99")

	c.AddItem(p)
	c.DecreaseQuantity(p)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.ItemCount())

	// Decreasing something no longer present is a no-op.
	c.DecreaseQuantity(p)
	assert.Equal(t, 0, c.ItemCount())
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	c := cart.New()
	c.AddItem(product(1, "Laptop", "1299.99"))
	c.RemoveItem(product(2, "Tablet", "349.99"))

	assert.Equal(t, 1, c.Len())
}

func TestSubtotalSumsPriceTimesQty(t *testing.T) {
	c := cart.New()
	a := product(1, "Widget", "10.00")
	b := product(2, "Gadget", "5.50")

	c.AddItem(a)
	c.AddItem(a)
	c.AddItem(b)
	c.AddItem(b)
	c.AddItem(b)

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("36.50")),
		"want 36.50, got %s", c.Subtotal())
}

func TestQuantityInvariantHoldsAcrossMixedOps(t *testing.T) {
	c := cart.New()
	a := product(1, "A", "1.00")
	b := product(2, "B", "2.00")

	c.AddItem(a)
	c.AddItem(b)
	c.IncreaseQuantity(a)
	c.DecreaseQuantity(b)
	c.IncreaseQuantity(b) // b was removed at zero, so this is a no-op
	c.AddItem(a)

	sum := 0
	for _, it := range c.Items() {
		require.GreaterOrEqual(t, it.Qty, 1, "no line may exist with qty < 1")
		sum += it.Qty
	}
	assert.Equal(t, sum, c.ItemCount())
	assert.Equal(t, 3, c.ItemCount())
}

func TestCheckoutScenario(t *testing.T) {
	c := cart.New()
	pa := product(1, "ProductA", "20.00")
	pb := product(2, "ProductB", "5.00")

	c.AddItem(pa)
	c.AddItem(pa)
	c.AddItem(pb)
	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("45.00")))

	c.DecreaseQuantity(pa)
	assert.Equal(t, 2, c.ItemCount())
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("25.00")))

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
	assert.True(t, c.Subtotal().IsZero())
}

func TestItemsReturnsASnapshot(t *testing.T) {
	c := cart.New()
	c.AddItem(product(1, "Laptop", "1299.99"))

	items := c.Items()
	items[0].Qty = 99

	assert.Equal(t, 1, c.ItemCount(), "mutating the snapshot must not touch the cart")
}
