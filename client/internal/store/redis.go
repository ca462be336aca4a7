package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/greenloop/marketplace/client/internal/domain"
)

const (
	keyCart   = "marketplace:%s:cart"
	keyOrders = "marketplace:%s:orders"
)

// RedisStore keeps the two blobs as JSON strings keyed by client profile,
// for deployments where the client state should survive the device.
type RedisStore struct {
	client  *redis.Client
	profile string
}

func NewRedisStore(client *redis.Client, profile string) *RedisStore {
	return &RedisStore{client: client, profile: profile}
}

func (s *RedisStore) LoadCart(c context.Context) ([]domain.CartItem, bool, error) {
	items := []domain.CartItem{}
	found, err := s.load(c, fmt.Sprintf(keyCart, s.profile), &items)
	if err != nil {
		return nil, found, err
	}
	return items, found, nil
}

func (s *RedisStore) SaveCart(c context.Context, items []domain.CartItem) error {
	return s.save(c, fmt.Sprintf(keyCart, s.profile), items)
}

func (s *RedisStore) LoadOrders(c context.Context) ([]domain.Order, bool, error) {
	orders := []domain.Order{}
	found, err := s.load(c, fmt.Sprintf(keyOrders, s.profile), &orders)
	if err != nil {
		return nil, found, err
	}
	return orders, found, nil
}

func (s *RedisStore) SaveOrders(c context.Context, orders []domain.Order) error {
	return s.save(c, fmt.Sprintf(keyOrders, s.profile), orders)
}

func (s *RedisStore) load(c context.Context, key string, v interface{}) (bool, error) {
	payload, err := s.client.Get(c, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed getting key=%s with error=%w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return true, fmt.Errorf("failed unmarshaling key=%s with error=%w", key, err)
	}
	return true, nil
}

func (s *RedisStore) save(c context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed marshaling key=%s with error=%w", key, err)
	}
	if err := s.client.Set(c, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed setting key=%s with error=%w", key, err)
	}
	return nil
}
