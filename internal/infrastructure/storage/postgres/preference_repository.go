package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// PreferenceRepository stores collection blobs in the preferences table.
type PreferenceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPreferenceRepository(pool *pgxpool.Pool, log *slog.Logger) *PreferenceRepository {
	return &PreferenceRepository{
		pool: pool,
		log:  log.With("component", "preference_repository"),
	}
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM preferences WHERE key = $1`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		r.log.Error("failed to get preference", "key", key, "error", err)
		return nil, false, fmt.Errorf("get preference: %w", err)
	}

	return value, true, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		r.log.Error("failed to set preference", "key", key, "bytes", len(value), "error", err)
		return fmt.Errorf("set preference: %w", err)
	}

	return nil
}
