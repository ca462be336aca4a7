package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/greenloop/marketplace/client/internal/domain"
	"github.com/greenloop/marketplace/client/internal/store"
)

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

func testAdapter(t *testing.T) store.Adapter {
	t.Helper()
	adapter, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed creating file store with error: %s", err)
	}
	return adapter
}

func testItem(productID string, price int64, quantity int32) domain.CartItem {
	return domain.CartItem{
		ProductID: productID,
		Title:     "item " + productID,
		Price:     decimal.NewFromInt(price),
		Category:  "test",
		Quantity:  quantity,
	}
}
