// Package repomanager opens the configured storage backend, runs its schema
// migrations and vends the entries repository bound to it.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophclip/internal/server/config"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Entries() entries.Repository
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// New opens the storage backend selected by cfg. For database backends the
// connection is verified with a ping before returning.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	backend, dsn := cfg.StorageBackend, cfg.DatabaseDSN
	switch backend {
	case config.BackendMemory:
		return NewMemoryRepositoryManager(), nil
	case config.BackendPostgres, config.BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", backend)
	}

	driver := "pgx"
	if backend == config.BackendSQLite {
		driver = "sqlite"
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", backend, err)
	}

	if backend == config.BackendSQLite {
		// one writer at a time keeps the conditional insert atomic
		db.SetMaxOpenConns(1)
		return NewSQLiteRepositoryManager(db), nil
	}
	return NewPostgresRepositoryManager(db), nil
}
