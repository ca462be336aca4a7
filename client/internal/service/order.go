package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/greenloop/marketplace/client/internal/domain"
	"github.com/greenloop/marketplace/client/internal/otel"
	"github.com/greenloop/marketplace/client/internal/store"
	"github.com/greenloop/marketplace/internal/log"
	inOtel "github.com/greenloop/marketplace/internal/otel"
)

// OrderService owns the append-only order history, newest first. Orders are
// never mutated or deleted once recorded.
type OrderService struct {
	mu     sync.Mutex
	orders []domain.Order
	store  store.Adapter
}

// NewOrderService recovers the order history from the adapter, falling back
// to an empty ledger on an absent or malformed blob.
func NewOrderService(c context.Context, adapter store.Adapter) *OrderService {
	c, span := otel.Tracer.Start(c, "NewOrderService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NewOrderService").
		Str(log.KeyProcess, "loading persisted orders").
		Logger()

	logger.Info().Msg("loading persisted orders")
	orders, found, err := adapter.LoadOrders(c)
	if err != nil {
		err = fmt.Errorf("failed loading persisted orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Warn().Err(err).Msg("starting with empty order history")
		orders = nil
	}
	if !found {
		logger.Info().Msg("no persisted orders, starting empty")
	} else {
		logger.Info().Int(log.KeyOrderCount, len(orders)).Msg("loaded persisted orders")
	}

	return &OrderService{orders: orders, store: adapter}
}

// RecordOrder prepends the order so the most recent checkout is always at
// the front. The ordering invariant lives here, not with callers.
func (s *OrderService) RecordOrder(c context.Context, order domain.Order) {
	c, span := otel.Tracer.Start(c, "OrderService RecordOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService RecordOrder").
		Str(log.KeyOrderID, order.ID).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]domain.Order{order.Clone()}, s.orders...)
	logger.Info().Int(log.KeyOrderCount, len(s.orders)).Msg("recorded order")

	logger = logger.With().Str(log.KeyProcess, "persisting orders").Logger()
	if err := s.store.SaveOrders(c, s.orders); err != nil {
		err = fmt.Errorf("failed persisting orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Warn().Err(err).Msg(err.Error())
	}
}

// ListOrders returns the history newest first. The result is a deep copy so
// callers cannot alter recorded orders.
func (s *OrderService) ListOrders(c context.Context) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = order.Clone()
	}
	return orders
}
