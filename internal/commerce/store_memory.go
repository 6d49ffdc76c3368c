package commerce

import (
	"context"
	"sync"
)

// MemStore keeps raw JSON blobs per user, mirroring the key-value profile
// storage the service replaces. Reads go through the tolerant cart decoder,
// so corrupted or legacy-shaped blobs degrade to an empty cart instead of
// an error.
type MemStore struct {
	mu        sync.RWMutex
	carts     map[string][]byte
	purchases map[string][]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		carts:     make(map[string][]byte),
		purchases: make(map[string][]string),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) CartRead(ctx context.Context, userID string) ([]CartItem, error) {
	s.mu.RLock()
	raw := s.carts[userID]
	s.mu.RUnlock()

	return DecodeCartItems(raw), nil
}

func (s *MemStore) CartWrite(ctx context.Context, userID string, items []CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = EncodeCartItems(items)
	return nil
}

// SeedRawCart injects an arbitrary blob, standing in for data written by an
// older client. Test hook.
func (s *MemStore) SeedRawCart(userID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append([]byte(nil), raw...)
}

func (s *MemStore) PurchasedRead(ctx context.Context, userID string) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.purchases[userID]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), ids...), true, nil
}

func (s *MemStore) PurchasedWrite(ctx context.Context, userID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchases[userID] = append([]string(nil), ids...)
	return nil
}
