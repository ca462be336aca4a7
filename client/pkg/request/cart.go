package request

import (
	"github.com/shopspring/decimal"

	"github.com/greenloop/marketplace/client/internal/domain"
)

// AddCartItem carries the product snapshot taken at add time; the catalog is
// never consulted again for this line item.
type AddCartItem struct {
	ProductID     string          `validate:"required"       json:"product_id"`
	Title         string          `validate:"required"       json:"title"`
	Price         decimal.Decimal `validate:"required"       json:"price"`
	OriginalPrice decimal.Decimal `                          json:"original_price"`
	Category      string          `                          json:"category"`
	Condition     string          `                          json:"condition"`
	Image         string          `                          json:"image"`
	Quantity      int32           `validate:"required,gte=1" json:"quantity"`
}

func (r AddCartItem) Item() domain.CartItem {
	return domain.CartItem{
		ProductID:     r.ProductID,
		Title:         r.Title,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Condition:     r.Condition,
		Image:         r.Image,
		Quantity:      r.Quantity,
	}
}

// UpdateCartItem deliberately allows non-positive quantities; they remove
// the line item instead of updating it.
type UpdateCartItem struct {
	Quantity int32 `json:"quantity"`
}
