package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/greenloop/marketplace/client/internal/domain"
	"github.com/greenloop/marketplace/client/internal/otel"
	inErrors "github.com/greenloop/marketplace/internal/errors"
	"github.com/greenloop/marketplace/internal/log"
	inOtel "github.com/greenloop/marketplace/internal/otel"
)

// reservedDetailKeys are order fields the core always computes itself.
// Caller-supplied details may only add supplementary fields, never replace
// these.
var reservedDetailKeys = map[string]struct{}{
	"id":     {},
	"items":  {},
	"total":  {},
	"date":   {},
	"status": {},
}

// CheckoutService is the only component that both reads the cart and writes
// the order history in one operation.
type CheckoutService struct {
	cart   *CartService
	orders *OrderService
}

func NewCheckoutService(cart *CartService, orders *OrderService) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders}
}

// Checkout converts the current cart into an immutable order and empties the
// cart. An empty cart fails with ErrEmptyCart and mutates nothing. The order
// is recorded in the ledger before the cart is cleared so a failure between
// the two steps leaves the cart intact.
func (s *CheckoutService) Checkout(
	c context.Context,
	details map[string]string,
) (domain.Order, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService Checkout").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "snapshotting cart").Logger()
	logger.Info().Msg("snapshotting cart")
	items := s.cart.Items(c)
	if len(items) == 0 {
		err := fmt.Errorf("failed checking out with error=%w", inErrors.ErrEmptyCart)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return domain.Order{}, err
	}
	total := domain.CartTotal(items)
	logger = logger.With().
		Int(log.KeyCartItemCount, len(items)).
		Str(log.KeyCartTotal, total.String()).
		Logger()
	logger.Info().Msg("snapshotted cart")

	logger = logger.With().Str(log.KeyProcess, "building order").Logger()
	logger.Info().Msg("building order")
	order := domain.Order{
		ID:      uuid.NewString(),
		Items:   items,
		Total:   total,
		Date:    time.Now().UTC(),
		Status:  domain.OrderStatusCompleted,
		Details: supplementaryDetails(details),
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID).Logger()
	logger.Info().Msg("built order")

	logger = logger.With().Str(log.KeyProcess, "recording order").Logger()
	logger.Info().Msg("recording order")
	c = logger.WithContext(c)
	s.orders.RecordOrder(c, order)
	logger.Info().Msg("recorded order")

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	s.cart.Clear(c)
	logger.Info().Msg("cleared cart")

	return order, nil
}

func supplementaryDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	out := make(map[string]string, len(details))
	for k, v := range details {
		if _, reserved := reservedDetailKeys[k]; reserved {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
