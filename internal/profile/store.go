package profile

import "context"

// Store persists per-user profile records. Reads of missing or corrupted
// records report ok=false so callers can fall back to defaults; they never
// surface parse errors.
type Store interface {
	Ping(ctx context.Context) error

	ProfileRead(ctx context.Context, userID string) (ProfileData, bool, error)
	ProfileWrite(ctx context.Context, userID string, p ProfileData) error

	SettingsRead(ctx context.Context, userID string) (Settings, bool, error)
	SettingsWrite(ctx context.Context, userID string, s Settings) error

	ThemeRead(ctx context.Context, userID string) (string, bool, error)
	ThemeWrite(ctx context.Context, userID string, theme string) error
}

func NewStore() Store {
	return NewMemStore()
}
