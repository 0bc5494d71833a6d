package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/dmitrijs2005/gophclip/internal/dbx"
	"github.com/dmitrijs2005/gophclip/internal/server/models"
)

// SQLiteRepository implements Repository on SQLite. Timestamps are stored
// as unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func unixNano(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixNano()
}

// Insert relies on SQLite running each statement under a single writer lock,
// so the existence check and the insert cannot interleave with another
// writer.
func (r *SQLiteRepository) Insert(ctx context.Context, entry *models.Entry) error {
	query := `
		INSERT INTO clipboard_entries (code, content, created_at, expires_at)
		SELECT ?1, ?2, ?3, ?4
		WHERE NOT EXISTS (
			SELECT 1 FROM clipboard_entries
			WHERE code = ?1 AND (expires_at IS NULL OR expires_at > ?3)
		)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.Code, entry.Content, entry.CreatedAt.UnixNano(), unixNano(entry.ExpiresAt)).Scan(&entry.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrCodeTaken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ExistsLive(ctx context.Context, code string, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM clipboard_entries
			WHERE code = ?1 AND (expires_at IS NULL OR expires_at > ?2)
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code, now.UnixNano()).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) FindLive(ctx context.Context, code string, now time.Time) (*models.Entry, error) {
	query := `
		SELECT id, code, content, created_at, expires_at
		FROM clipboard_entries
		WHERE code = ?1 AND (expires_at IS NULL OR expires_at > ?2)
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var (
		entry     models.Entry
		createdAt int64
		expiresAt sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, code, now.UnixNano()).
		Scan(&entry.ID, &entry.Code, &entry.Content, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	entry.CreatedAt = time.Unix(0, createdAt).UTC()
	if expiresAt.Valid {
		t := time.Unix(0, expiresAt.Int64).UTC()
		entry.ExpiresAt = &t
	}
	return &entry, nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM clipboard_entries WHERE expires_at IS NOT NULL AND expires_at <= ?1`
	res, err := r.db.ExecContext(ctx, query, now.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
