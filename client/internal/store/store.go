package store

import (
	"context"

	"github.com/greenloop/marketplace/client/internal/domain"
)

// Adapter mirrors the cart and order history as two independently keyed JSON
// blobs in a durable medium scoped to one client profile. The boolean result
// of the load methods reports whether a blob was ever saved; absence is not
// an error. The adapter does not own the data, the in-memory services do.
type Adapter interface {
	LoadCart(c context.Context) ([]domain.CartItem, bool, error)
	SaveCart(c context.Context, items []domain.CartItem) error
	LoadOrders(c context.Context) ([]domain.Order, bool, error)
	SaveOrders(c context.Context, orders []domain.Order) error
}
