package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"projectx/internal/infrastructure/storage/memory"
	"projectx/internal/infrastructure/storage/postgres"
	"projectx/internal/infrastructure/storage/redis"
	"projectx/internal/infrastructure/storage/sqlite"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Storage is a durable key-value namespace of opaque blobs.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type Options struct {
	Driver         string
	SQLitePath     string
	DatabaseURI    string
	MigrationsPath string
	RedisURL       string
	RedisPrefix    string
}

// Open returns the backend selected by opts.Driver. A SQLite file that
// cannot be opened falls back to memory so the workspace still runs;
// the other drivers fail hard.
func Open(ctx context.Context, opts Options, log *slog.Logger) (Storage, error) {
	log = log.With("component", "storage", "driver", opts.Driver)

	switch opts.Driver {
	case DriverMemory:
		return memory.New(), nil
	case DriverSQLite, "":
		s, err := sqlite.New(opts.SQLitePath)
		if err != nil {
			log.Warn("failed to open SQLite, falling back to memory", "path", opts.SQLitePath, "error", err)
			return memory.New(), nil
		}
		log.Debug("storage opened", "path", opts.SQLitePath)
		return s, nil
	case DriverPostgres:
		s, err := postgres.New(ctx, opts.DatabaseURI, opts.MigrationsPath, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, nil
	case DriverRedis:
		s, err := redis.New(ctx, opts.RedisURL, opts.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
