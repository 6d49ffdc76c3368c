package commerce

import "context"

// Store persists per-user cart and purchase records. Cart blobs are opaque
// JSON so that legacy shapes survive until the next write; DecodeCartItems
// absorbs the differences on read.
type Store interface {
	Ping(ctx context.Context) error

	CartRead(ctx context.Context, userID string) ([]CartItem, error)
	CartWrite(ctx context.Context, userID string, items []CartItem) error

	// PurchasedRead reports ok=false when the user has no purchase record
	// yet, letting the caller substitute first-run demo data.
	PurchasedRead(ctx context.Context, userID string) (ids []string, ok bool, err error)
	PurchasedWrite(ctx context.Context, userID string, ids []string) error
}

func NewStore() Store {
	return NewMemStore()
}
