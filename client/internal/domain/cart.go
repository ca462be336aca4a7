package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem is one product-quantity pairing in the cart. Product attributes are
// snapshotted at add time and never re-synced with the catalog.
type CartItem struct {
	ProductID     string          `json:"product_id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Category      string          `json:"category"`
	Condition     string          `json:"condition"`
	Image         string          `json:"image"`
	Quantity      int32           `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// Savings is the discount against the original listing price, zero when no
// original price was snapshotted.
func (i CartItem) Savings() decimal.Decimal {
	if !i.OriginalPrice.IsPositive() {
		return decimal.Zero
	}
	saved := i.OriginalPrice.Sub(i.Price)
	if saved.IsNegative() {
		return decimal.Zero
	}
	return saved.Mul(decimal.NewFromInt32(i.Quantity))
}

func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func CartItemCount(items []CartItem) int32 {
	var count int32
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func CartSavings(items []CartItem) decimal.Decimal {
	savings := decimal.Zero
	for _, item := range items {
		savings = savings.Add(item.Savings())
	}
	return savings
}
