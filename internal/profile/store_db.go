package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore keeps one jsonb blob per user and kind. The tolerant-read
// contract carries over: undecodable blobs read as absent.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenDB opens a pgx-backed database/sql pool for the given DSN.
func OpenDB(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) read(ctx context.Context, userID, kind string, v any) (bool, error) {
	var raw []byte

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT doc
			FROM profile_docs
			WHERE user_id = $1 AND kind = $2
		`, userID, kind).Scan(&raw)
	})

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if json.Unmarshal(raw, v) != nil {
		return false, nil
	}
	return true, nil
}

func (s *PostgresStore) write(ctx context.Context, userID, kind string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO profile_docs (user_id, kind, doc, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (user_id, kind) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
		`, userID, kind, raw)
		return err
	})
}

func (s *PostgresStore) ProfileRead(ctx context.Context, userID string) (ProfileData, bool, error) {
	var p ProfileData
	ok, err := s.read(ctx, userID, "profile", &p)
	return p, ok, err
}

func (s *PostgresStore) ProfileWrite(ctx context.Context, userID string, p ProfileData) error {
	return s.write(ctx, userID, "profile", p)
}

func (s *PostgresStore) SettingsRead(ctx context.Context, userID string) (Settings, bool, error) {
	var v Settings
	ok, err := s.read(ctx, userID, "settings", &v)
	return v, ok, err
}

func (s *PostgresStore) SettingsWrite(ctx context.Context, userID string, v Settings) error {
	return s.write(ctx, userID, "settings", v)
}

func (s *PostgresStore) ThemeRead(ctx context.Context, userID string) (string, bool, error) {
	var t string
	ok, err := s.read(ctx, userID, "theme", &t)
	return t, ok, err
}

func (s *PostgresStore) ThemeWrite(ctx context.Context, userID string, theme string) error {
	return s.write(ctx, userID, "theme", theme)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
