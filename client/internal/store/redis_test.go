package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/greenloop/marketplace/client/internal/domain"
)

func setupRedis(t *testing.T, c context.Context) *redis.Client {
	t.Helper()

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	return redisClient
}

func TestRedisStoreRoundTrip(t *testing.T) {
	c := context.Background()
	client := setupRedis(t, c)
	redisStore := NewRedisStore(client, "test-profile")

	items, found, err := redisStore.LoadCart(c)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)

	saved := []domain.CartItem{
		{ProductID: "1", Title: "shelf", Price: decimal.NewFromInt(10), Quantity: 2},
		{ProductID: "2", Title: "lamp", Price: decimal.NewFromInt(5), Quantity: 1},
	}
	assert.NoError(t, redisStore.SaveCart(c, saved))

	loaded, found, err := redisStore.LoadCart(c)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, loaded, 2)
	assert.True(t, decimal.NewFromInt(25).Equal(domain.CartTotal(loaded)))

	order := domain.Order{
		ID:     "order-1",
		Items:  saved,
		Total:  decimal.NewFromInt(25),
		Date:   time.Now().UTC().Truncate(time.Second),
		Status: domain.OrderStatusCompleted,
	}
	assert.NoError(t, redisStore.SaveOrders(c, []domain.Order{order}))

	orders, found, err := redisStore.LoadOrders(c)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, orders, 1)
	assert.EqualValues(t, "order-1", orders[0].ID)

	// profiles are independently keyed
	other := NewRedisStore(client, "other-profile")
	_, found, err = other.LoadCart(c)
	assert.NoError(t, err)
	assert.False(t, found)
}
