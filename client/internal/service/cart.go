package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/greenloop/marketplace/client/internal/domain"
	"github.com/greenloop/marketplace/client/internal/otel"
	"github.com/greenloop/marketplace/client/internal/store"
	inErrors "github.com/greenloop/marketplace/internal/errors"
	"github.com/greenloop/marketplace/internal/log"
	inOtel "github.com/greenloop/marketplace/internal/otel"
)

// CartService owns the current cart state for the session. The in-memory
// items are the source of truth; the store adapter is a durable mirror
// written after every mutation. The mutex only serializes handlers within
// this one session process, there is no cross-process writer.
type CartService struct {
	mu    sync.Mutex
	items []domain.CartItem
	store store.Adapter
}

// NewCartService recovers the cart from the adapter. An absent blob starts
// an empty cart; a malformed blob is logged and also starts an empty cart,
// never a failed construction.
func NewCartService(c context.Context, adapter store.Adapter) *CartService {
	c, span := otel.Tracer.Start(c, "NewCartService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NewCartService").
		Str(log.KeyProcess, "loading persisted cart").
		Logger()

	logger.Info().Msg("loading persisted cart")
	items, found, err := adapter.LoadCart(c)
	if err != nil {
		err = fmt.Errorf("failed loading persisted cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Warn().Err(err).Msg("starting with empty cart")
		items = nil
	}
	if !found {
		logger.Info().Msg("no persisted cart, starting empty")
	} else {
		logger.Info().Int(log.KeyCartItemCount, len(items)).Msg("loaded persisted cart")
	}

	return &CartService{items: items, store: adapter}
}

// AddItem merges the product into the cart. An existing line item for the
// same product id keeps its snapshotted attributes and only grows its
// quantity; otherwise the item is appended. Quantities below one are a
// caller error and are rejected, never clamped.
func (s *CartService) AddItem(c context.Context, item domain.CartItem) (domain.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeyProductID, item.ProductID).
		Int32(log.KeyQuantity, item.Quantity).
		Logger()

	if item.Quantity < 1 {
		err := fmt.Errorf(
			"failed adding productId=%s with error=%w",
			item.ProductID,
			inErrors.ErrInvalidQuantity,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return domain.CartItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logger = logger.With().Str(log.KeyProcess, "merging cart item").Logger()
	merged := item
	existing := false
	for i, line := range s.items {
		if line.ProductID != item.ProductID {
			continue
		}
		line.Quantity += item.Quantity
		s.items[i] = line
		merged = line
		existing = true
		logger.Info().
			Int32(log.KeyMergedQuantity, line.Quantity).
			Msg("merged cart item")
		break
	}
	if !existing {
		s.items = append(s.items, item)
		logger.Info().Msg("appended cart item")
	}

	c = logger.WithContext(c)
	s.syncLocked(c)

	return merged, nil
}

// RemoveItem deletes the line item for the product id. A missing id is a
// no-op, not an error.
func (s *CartService) RemoveItem(c context.Context, productID string) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeyProductID, productID).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.items {
		if line.ProductID != productID {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		logger.Info().Msg("removed cart item")

		c = logger.WithContext(c)
		s.syncLocked(c)
		return
	}
	logger.Info().Msg("cart item not found, nothing removed")
}

// UpdateQuantity sets the quantity of an existing line item. A quantity of
// zero or less removes the item, the designed equivalence with RemoveItem.
func (s *CartService) UpdateQuantity(c context.Context, productID string, quantity int32) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeyProductID, productID).
		Int32(log.KeyQuantity, quantity).
		Logger()

	if quantity <= 0 {
		logger.Info().Msg("non-positive quantity, removing cart item")
		c = logger.WithContext(c)
		s.RemoveItem(c, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.items {
		if line.ProductID != productID {
			continue
		}
		line.Quantity = quantity
		s.items[i] = line
		logger.Info().Msg("updated cart item quantity")

		c = logger.WithContext(c)
		s.syncLocked(c)
		return
	}
	logger.Info().Msg("cart item not found, nothing updated")
}

// Clear empties the cart.
func (s *CartService) Clear(c context.Context) {
	c, span := otel.Tracer.Start(c, "CartService Clear")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService Clear").
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	logger.Info().Msg("cleared cart")

	c = logger.WithContext(c)
	s.syncLocked(c)
}

// Items returns a copy of the current line items in insertion order.
func (s *CartService) Items(c context.Context) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is derived from the live line items on every call.
func (s *CartService) Total(c context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.items)
}

// ItemCount is the sum of quantities over the live line items.
func (s *CartService) ItemCount(c context.Context) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartItemCount(s.items)
}

// syncLocked mirrors the in-memory cart to the adapter. A write failure is
// a warning: in-memory state stays authoritative for the session and the
// mutation is never rolled back.
func (s *CartService) syncLocked(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyProcess, "persisting cart").
		Logger()
	if err := s.store.SaveCart(c, s.items); err != nil {
		err = fmt.Errorf("failed persisting cart with error=%w", err)
		logger.Warn().Err(err).Msg(err.Error())
	}
}
