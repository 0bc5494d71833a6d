package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophclip/internal/server/migrations"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager owns a modernc.org/sqlite *sql.DB.
type SQLiteRepositoryManager struct {
	db *sql.DB
}

func NewSQLiteRepositoryManager(db *sql.DB) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{db: db}
}

func (m *SQLiteRepositoryManager) Entries() entries.Repository {
	return entries.NewSQLiteRepository(m.db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, "sqlite")
}

func (m *SQLiteRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
