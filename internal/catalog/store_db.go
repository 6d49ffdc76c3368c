package catalog

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

// PostgresStore keeps the full course document as jsonb next to the lookup
// columns. The catalog is read-only at runtime; Seed is meant for migrations
// and local bootstrap.
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

func (s *PostgresStore) Seed(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		for _, c := range seedCourses() {
			doc, err := json.Marshal(c)
			if err != nil {
				return err
			}
			_, err = s.db.ExecContext(ctx, `
				INSERT INTO courses (id, slug, doc)
				VALUES ($1, $2, $3)
				ON CONFLICT (id) DO NOTHING
			`, c.ID, c.Slug, doc)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) ListSortedByID(ctx context.Context) ([]Course, error) {
	var out []Course

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT doc
			FROM courses
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Course, 0, 16)
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			var c Course
			if err := json.Unmarshal(raw, &c); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Course, bool, error) {
	return s.getByColumn(ctx, "id", id)
}

func (s *PostgresStore) GetBySlug(ctx context.Context, slug string) (Course, bool, error) {
	return s.getByColumn(ctx, "slug", slug)
}

func (s *PostgresStore) getByColumn(ctx context.Context, col, val string) (Course, bool, error) {
	var raw []byte

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		q := `SELECT doc FROM courses WHERE id = $1`
		if col == "slug" {
			q = `SELECT doc FROM courses WHERE slug = $1`
		}
		return s.db.QueryRowContext(ctx, q, val).Scan(&raw)
	})

	if err == sql.ErrNoRows {
		return Course{}, false, nil
	}
	if err != nil {
		return Course{}, false, err
	}

	var c Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return Course{}, false, err
	}
	return c, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
