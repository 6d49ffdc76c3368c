package catalog

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	byID   map[string]Course
	bySlug map[string]Course
}

func NewMemStore() *MemStore {
	s := &MemStore{
		byID:   make(map[string]Course),
		bySlug: make(map[string]Course),
	}
	for _, c := range seedCourses() {
		s.byID[c.ID] = c
		s.bySlug[c.Slug] = c
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListSortedByID(ctx context.Context) ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Course, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Course, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	return c, ok, nil
}

func (s *MemStore) GetBySlug(ctx context.Context, slug string) (Course, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.bySlug[slug]
	return c, ok, nil
}
