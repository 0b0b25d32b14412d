package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"projectx/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
	*PreferenceRepository
}

// New connects to databaseURI and, when migrationsPath is set, applies the
// schema migrations found there before returning.
func New(ctx context.Context, databaseURI, migrationsPath string, log *slog.Logger) (*Storage, error) {
	if migrationsPath != "" {
		mg := migration.NewMigration(migrationsPath, databaseURI, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{
		pool:                 pool,
		PreferenceRepository: NewPreferenceRepository(pool, log),
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
