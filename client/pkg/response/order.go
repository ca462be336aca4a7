package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenloop/marketplace/client/internal/domain"
)

type Order struct {
	ID      string            `json:"id"`
	Items   []CartItem        `json:"items"`
	Total   decimal.Decimal   `json:"total"`
	Date    time.Time         `json:"date"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

func NewOrder(order domain.Order) Order {
	items := make([]CartItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = NewCartItem(item)
	}
	return Order{
		ID:      order.ID,
		Items:   items,
		Total:   order.Total,
		Date:    order.Date,
		Status:  order.Status,
		Details: order.Details,
	}
}

func NewOrders(orders []domain.Order) []Order {
	out := make([]Order, len(orders))
	for i, order := range orders {
		out[i] = NewOrder(order)
	}
	return out
}
