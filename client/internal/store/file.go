package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/greenloop/marketplace/client/internal/domain"
)

const (
	cartFilename   = "cart.json"
	ordersFilename = "orders.json"
)

// FileStore persists the two blobs as JSON files under a per-profile
// directory. Writes go through a temp file and a rename so a crash mid-write
// never leaves a corrupt blob behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed creating store directory=%s with error=%w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadCart(c context.Context) ([]domain.CartItem, bool, error) {
	items := []domain.CartItem{}
	found, err := s.load(filepath.Join(s.dir, cartFilename), &items)
	if err != nil {
		return nil, found, err
	}
	return items, found, nil
}

func (s *FileStore) SaveCart(c context.Context, items []domain.CartItem) error {
	return s.save(filepath.Join(s.dir, cartFilename), items)
}

func (s *FileStore) LoadOrders(c context.Context) ([]domain.Order, bool, error) {
	orders := []domain.Order{}
	found, err := s.load(filepath.Join(s.dir, ordersFilename), &orders)
	if err != nil {
		return nil, found, err
	}
	return orders, found, nil
}

func (s *FileStore) SaveOrders(c context.Context, orders []domain.Order) error {
	return s.save(filepath.Join(s.dir, ordersFilename), orders)
}

func (s *FileStore) load(path string, v interface{}) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed opening %s with error=%w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return true, fmt.Errorf("failed decoding %s with error=%w", path, err)
	}
	return true, nil
}

func (s *FileStore) save(path string, v interface{}) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed creating %s with error=%w", tmp, err)
	}
	if err := json.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed encoding %s with error=%w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed closing %s with error=%w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed renaming %s with error=%w", tmp, err)
	}
	return nil
}
