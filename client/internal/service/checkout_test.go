package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/greenloop/marketplace/internal/errors"
)

func TestCheckoutEmptyCart(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := checkout.Checkout(c, nil)

	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	assert.Empty(t, cart.Items(c))
	assert.Empty(t, orders.ListOrders(c))
}

func TestCheckoutScenario(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := cart.AddItem(c, testItem("a", 100, 1))
	assert.NoError(t, err)
	_, err = cart.AddItem(c, testItem("a", 100, 2))
	assert.NoError(t, err)

	items := cart.Items(c)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 3, items[0].Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(cart.Total(c)))

	order, err := checkout.Checkout(c, nil)
	assert.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.EqualValues(t, "completed", order.Status)
	assert.True(t, decimal.NewFromInt(300).Equal(order.Total))
	assert.Len(t, order.Items, 1)
	assert.EqualValues(t, "a", order.Items[0].ProductID)
	assert.EqualValues(t, 3, order.Items[0].Quantity)
	assert.False(t, order.Date.IsZero())

	assert.Empty(t, cart.Items(c))
	history := orders.ListOrders(c)
	assert.Len(t, history, 1)
	assert.EqualValues(t, order.ID, history[0].ID)
	assert.True(t, order.Total.Equal(history[0].Total))
}

func TestCheckoutSnapshotIsImmutable(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := cart.AddItem(c, testItem("a", 100, 2))
	assert.NoError(t, err)

	order, err := checkout.Checkout(c, nil)
	assert.NoError(t, err)

	// later cart activity must not leak into the recorded order
	_, err = cart.AddItem(c, testItem("b", 999, 5))
	assert.NoError(t, err)
	cart.UpdateQuantity(c, "b", 7)

	recorded := orders.ListOrders(c)[0]
	assert.Len(t, recorded.Items, 1)
	assert.EqualValues(t, "a", recorded.Items[0].ProductID)
	assert.EqualValues(t, 2, recorded.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(recorded.Total))
	assert.EqualValues(t, order.ID, recorded.ID)
}

func TestCheckoutDetails(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := cart.AddItem(c, testItem("a", 100, 1))
	assert.NoError(t, err)

	order, err := checkout.Checkout(c, map[string]string{
		"payment_method": "upi",
		"note":           "leave at door",
		// reserved fields cannot be clobbered by caller details
		"id":     "evil",
		"total":  "0",
		"status": "refunded",
	})
	assert.NoError(t, err)

	assert.EqualValues(t, "upi", order.Details["payment_method"])
	assert.EqualValues(t, "leave at door", order.Details["note"])
	assert.NotContains(t, order.Details, "id")
	assert.NotContains(t, order.Details, "total")
	assert.NotContains(t, order.Details, "status")
	assert.NotEqualValues(t, "evil", order.ID)
	assert.EqualValues(t, "completed", order.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(order.Total))
}

func TestCheckoutTwiceOrdersNewestFirst(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := cart.AddItem(c, testItem("a", 10, 1))
	assert.NoError(t, err)
	first, err := checkout.Checkout(c, nil)
	assert.NoError(t, err)

	_, err = cart.AddItem(c, testItem("b", 20, 1))
	assert.NoError(t, err)
	second, err := checkout.Checkout(c, nil)
	assert.NoError(t, err)

	history := orders.ListOrders(c)
	assert.Len(t, history, 2)
	assert.EqualValues(t, second.ID, history[0].ID)
	assert.EqualValues(t, first.ID, history[1].ID)
}

func TestOrderHistoryPersistenceRoundTrip(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)
	cart := NewCartService(c, adapter)
	orders := NewOrderService(c, adapter)
	checkout := NewCheckoutService(cart, orders)

	_, err := cart.AddItem(c, testItem("a", 10, 2))
	assert.NoError(t, err)
	order, err := checkout.Checkout(c, map[string]string{"payment_method": "card"})
	assert.NoError(t, err)

	reloadedOrders := NewOrderService(c, adapter)
	history := reloadedOrders.ListOrders(c)
	assert.Len(t, history, 1)
	assert.EqualValues(t, order.ID, history[0].ID)
	assert.True(t, decimal.NewFromInt(20).Equal(history[0].Total))
	assert.EqualValues(t, "card", history[0].Details["payment_method"])

	reloadedCart := NewCartService(c, adapter)
	assert.Empty(t, reloadedCart.Items(c))
}
