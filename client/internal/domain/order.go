package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "completed"

// Order is an immutable record of a checked-out cart. Items and Total are the
// cart snapshot taken at checkout; they are never recomputed afterwards.
type Order struct {
	ID      string            `json:"id"`
	Items   []CartItem        `json:"items"`
	Total   decimal.Decimal   `json:"total"`
	Date    time.Time         `json:"date"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// Clone returns a copy whose slices and maps share no storage with the
// original, so callers cannot corrupt recorded history.
func (o Order) Clone() Order {
	clone := o
	clone.Items = make([]CartItem, len(o.Items))
	copy(clone.Items, o.Items)
	if o.Details != nil {
		clone.Details = make(map[string]string, len(o.Details))
		for k, v := range o.Details {
			clone.Details[k] = v
		}
	}
	return clone
}
