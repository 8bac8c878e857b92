package leaderboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the same append-sort-truncate contract as the
// file store, backed by a scores table.
type PostgresStore struct {
	db   *pgxpool.Pool
	size int
}

func NewPostgresStore(db *pgxpool.Pool, size int) *PostgresStore {
	return &PostgresStore{db: db, size: size}
}

// EnsureSchema creates the scores table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scores (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT      NOT NULL,
			score       INT       NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) Record(ctx context.Context, name string, score int) ([]Entry, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO scores (name, score) VALUES ($1, $2)`, name, score); err != nil {
		return nil, err
	}

	// Truncate to the top N, mirroring the file store.
	if _, err := tx.Exec(ctx, `
		DELETE FROM scores
		WHERE id NOT IN (
			SELECT id FROM scores ORDER BY score ASC, id ASC LIMIT $1
		)`, s.size); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.Top(ctx)
}

func (s *PostgresStore) Top(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, score, recorded_at
		FROM scores
		ORDER BY score ASC, id ASC
		LIMIT $1`, s.size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			at time.Time
		)
		if err := rows.Scan(&e.Name, &e.Score, &at); err != nil {
			return nil, err
		}
		e.Date = at.Format("2006-01-02")
		out = append(out, e)
	}

	return out, rows.Err()
}
