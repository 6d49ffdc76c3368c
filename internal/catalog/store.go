package catalog

import "context"

type Store interface {
	Ping(ctx context.Context) error
	ListSortedByID(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, id string) (Course, bool, error)
	GetBySlug(ctx context.Context, slug string) (Course, bool, error)
}

func NewStore() Store {
	return NewMemStore()
}
