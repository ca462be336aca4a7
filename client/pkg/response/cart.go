package response

import (
	"github.com/shopspring/decimal"

	"github.com/greenloop/marketplace/client/internal/domain"
)

type CartItem struct {
	ProductID     string          `json:"product_id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Category      string          `json:"category"`
	Condition     string          `json:"condition"`
	Image         string          `json:"image"`
	Quantity      int32           `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type Cart struct {
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int32           `json:"item_count"`
	Savings   decimal.Decimal `json:"savings"`
}

func NewCartItem(item domain.CartItem) CartItem {
	return CartItem{
		ProductID:     item.ProductID,
		Title:         item.Title,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		Category:      item.Category,
		Condition:     item.Condition,
		Image:         item.Image,
		Quantity:      item.Quantity,
		Subtotal:      item.Subtotal(),
	}
}

func NewCart(items []domain.CartItem) Cart {
	cartItems := make([]CartItem, len(items))
	for i, item := range items {
		cartItems[i] = NewCartItem(item)
	}
	return Cart{
		Items:     cartItems,
		Total:     domain.CartTotal(items),
		ItemCount: domain.CartItemCount(items),
		Savings:   domain.CartSavings(items),
	}
}
