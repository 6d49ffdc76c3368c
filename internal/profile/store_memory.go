package profile

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore keeps JSON blobs per user and key, the same way the browser
// profile storage it replaces did. Corrupt blobs read as absent.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) read(key string, v any) bool {
	s.mu.RLock()
	raw, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func (s *MemStore) write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.m[key] = raw
	s.mu.Unlock()
	return nil
}

// SeedRaw injects an arbitrary blob under a storage key. Test hook.
func (s *MemStore) SeedRaw(key string, raw []byte) {
	s.mu.Lock()
	s.m[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

func (s *MemStore) ProfileRead(ctx context.Context, userID string) (ProfileData, bool, error) {
	var p ProfileData
	ok := s.read("profile:"+userID, &p)
	return p, ok, nil
}

func (s *MemStore) ProfileWrite(ctx context.Context, userID string, p ProfileData) error {
	return s.write("profile:"+userID, p)
}

func (s *MemStore) SettingsRead(ctx context.Context, userID string) (Settings, bool, error) {
	var v Settings
	ok := s.read("settings:"+userID, &v)
	return v, ok, nil
}

func (s *MemStore) SettingsWrite(ctx context.Context, userID string, v Settings) error {
	return s.write("settings:"+userID, v)
}

func (s *MemStore) ThemeRead(ctx context.Context, userID string) (string, bool, error) {
	var t string
	ok := s.read("theme:"+userID, &t)
	return t, ok, nil
}

func (s *MemStore) ThemeWrite(ctx context.Context, userID string, theme string) error {
	return s.write("theme:"+userID, theme)
}
