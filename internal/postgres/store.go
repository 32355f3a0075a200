package postgres

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ kv.Store = (*Store)(nil)

// Store menyimpan satu baris per koleksi di tabel kv_blobs.
type Store struct{ DB *pgxpool.Pool }

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var b []byte
	err := s.DB.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key=$1`, key).Scan(&b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Write upserts the whole blob in one statement.
func (s *Store) Write(ctx context.Context, key string, blob []byte) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO kv_blobs(key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, string(blob))
	return err
}
