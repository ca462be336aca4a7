package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/greenloop/marketplace/client/internal/domain"
	"github.com/greenloop/marketplace/client/internal/store"
	inErrors "github.com/greenloop/marketplace/internal/errors"
)

func TestAddItem(t *testing.T) {
	tests := []struct {
		name          string
		adds          []domain.CartItem
		expectedItems int
		expectedQty   int32
		expectedErr   error
	}{
		{
			name:          "given new product should append one line item",
			adds:          []domain.CartItem{testItem("a", 100, 1)},
			expectedItems: 1,
			expectedQty:   1,
		},
		{
			name: "given existing product should merge quantities without duplicate",
			adds: []domain.CartItem{
				testItem("a", 100, 1),
				testItem("a", 100, 2),
			},
			expectedItems: 1,
			expectedQty:   3,
		},
		{
			name: "given non-positive quantity should reject",
			adds: []domain.CartItem{
				testItem("a", 100, 0),
			},
			expectedItems: 0,
			expectedErr:   inErrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext()
			cart := NewCartService(c, testAdapter(t))

			var lastErr error
			for _, add := range tt.adds {
				if _, err := cart.AddItem(c, add); err != nil {
					lastErr = err
				}
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, lastErr, tt.expectedErr)
			} else {
				assert.NoError(t, lastErr)
			}
			items := cart.Items(c)
			assert.Len(t, items, tt.expectedItems)
			if tt.expectedItems > 0 {
				assert.EqualValues(t, tt.expectedQty, items[0].Quantity)
			}
		})
	}
}

func TestAddItemKeepsSnapshotAttributes(t *testing.T) {
	c := testContext()
	cart := NewCartService(c, testAdapter(t))

	first := testItem("a", 100, 1)
	first.Title = "original title"
	_, err := cart.AddItem(c, first)
	assert.NoError(t, err)

	second := testItem("a", 250, 2)
	second.Title = "later title"
	merged, err := cart.AddItem(c, second)
	assert.NoError(t, err)

	// attributes stay as snapshotted at first add, only quantity grows
	assert.EqualValues(t, "original title", merged.Title)
	assert.True(t, decimal.NewFromInt(100).Equal(merged.Price))
	assert.EqualValues(t, 3, merged.Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := testContext()
	cart := NewCartService(c, testAdapter(t))

	for _, id := range []string{"a", "b", "c"} {
		_, err := cart.AddItem(c, testItem(id, 10, 1))
		assert.NoError(t, err)
	}
	_, err := cart.AddItem(c, testItem("b", 10, 1))
	assert.NoError(t, err)

	items := cart.Items(c)
	assert.Len(t, items, 3)
	assert.EqualValues(t, "a", items[0].ProductID)
	assert.EqualValues(t, "b", items[1].ProductID)
	assert.EqualValues(t, "c", items[2].ProductID)
}

func TestRemoveItem(t *testing.T) {
	c := testContext()
	cart := NewCartService(c, testAdapter(t))

	_, err := cart.AddItem(c, testItem("a", 100, 1))
	assert.NoError(t, err)

	cart.RemoveItem(c, "a")
	assert.Empty(t, cart.Items(c))

	// removing an absent id is a no-op
	cart.RemoveItem(c, "missing")
	assert.Empty(t, cart.Items(c))
}

func TestUpdateQuantity(t *testing.T) {
	c := testContext()
	cart := NewCartService(c, testAdapter(t))

	_, err := cart.AddItem(c, testItem("a", 100, 1))
	assert.NoError(t, err)

	cart.UpdateQuantity(c, "a", 5)
	items := cart.Items(c)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 5, items[0].Quantity)

	// unknown id is a no-op
	cart.UpdateQuantity(c, "missing", 2)
	assert.Len(t, cart.Items(c), 1)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	c := testContext()

	updated := NewCartService(c, testAdapter(t))
	removed := NewCartService(c, testAdapter(t))
	for _, cart := range []*CartService{updated, removed} {
		_, err := cart.AddItem(c, testItem("a", 100, 2))
		assert.NoError(t, err)
		_, err = cart.AddItem(c, testItem("b", 50, 1))
		assert.NoError(t, err)
	}

	updated.UpdateQuantity(c, "a", 0)
	removed.RemoveItem(c, "a")

	assert.EqualValues(t, removed.Items(c), updated.Items(c))
	assert.True(t, removed.Total(c).Equal(updated.Total(c)))
}

func TestDerivedTotals(t *testing.T) {
	c := testContext()
	cart := NewCartService(c, testAdapter(t))

	assert.True(t, decimal.Zero.Equal(cart.Total(c)))
	assert.EqualValues(t, 0, cart.ItemCount(c))

	_, err := cart.AddItem(c, testItem("a", 10, 2))
	assert.NoError(t, err)
	_, err = cart.AddItem(c, testItem("b", 5, 1))
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(cart.Total(c)))
	assert.EqualValues(t, 3, cart.ItemCount(c))

	cart.UpdateQuantity(c, "a", 1)
	assert.True(t, decimal.NewFromInt(15).Equal(cart.Total(c)))
	assert.EqualValues(t, 2, cart.ItemCount(c))

	cart.RemoveItem(c, "b")
	assert.True(t, decimal.NewFromInt(10).Equal(cart.Total(c)))
	assert.EqualValues(t, 1, cart.ItemCount(c))

	cart.Clear(c)
	assert.True(t, decimal.Zero.Equal(cart.Total(c)))
	assert.EqualValues(t, 0, cart.ItemCount(c))
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	c := testContext()
	adapter := testAdapter(t)

	cart := NewCartService(c, adapter)
	_, err := cart.AddItem(c, testItem("1", 10, 2))
	assert.NoError(t, err)
	_, err = cart.AddItem(c, testItem("2", 5, 1))
	assert.NoError(t, err)

	reloaded := NewCartService(c, adapter)
	items := reloaded.Items(c)
	assert.Len(t, items, 2)
	assert.EqualValues(t, "1", items[0].ProductID)
	assert.EqualValues(t, 2, items[0].Quantity)
	assert.EqualValues(t, "2", items[1].ProductID)
	assert.EqualValues(t, 1, items[1].Quantity)
	assert.True(t, decimal.NewFromInt(25).Equal(reloaded.Total(c)))
}

func TestCartRecoversFromMalformedBlob(t *testing.T) {
	c := testContext()
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644)
	assert.NoError(t, err)

	adapter, err := store.NewFileStore(dir)
	assert.NoError(t, err)

	cart := NewCartService(c, adapter)
	assert.Empty(t, cart.Items(c))
	assert.True(t, decimal.Zero.Equal(cart.Total(c)))
}
