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

// PostgresRepository implements Repository on PostgreSQL through the pgx
// database/sql driver.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository constructs a repository bound to the given pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert serializes writers of the same code with a transaction-scoped
// advisory lock, then inserts only if no live row holds the code.
func (r *PostgresRepository) Insert(ctx context.Context, entry *models.Entry) error {
	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1))`
	insertQuery := `
		INSERT INTO clipboard_entries (code, content, created_at, expires_at)
		SELECT $1::varchar, $2::text, $3::timestamptz, $4::timestamptz
		WHERE NOT EXISTS (
			SELECT 1 FROM clipboard_entries
			WHERE code = $1 AND (expires_at IS NULL OR expires_at > $3)
		)
		RETURNING id
	`

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, lockQuery, entry.Code); err != nil {
			return fmt.Errorf("lock error: %w", err)
		}

		err := tx.QueryRowContext(ctx, insertQuery,
			entry.Code, entry.Content, entry.CreatedAt, nullTime(entry.ExpiresAt)).Scan(&entry.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrCodeTaken
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) ExistsLive(ctx context.Context, code string, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM clipboard_entries
			WHERE code = $1 AND (expires_at IS NULL OR expires_at > $2)
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) FindLive(ctx context.Context, code string, now time.Time) (*models.Entry, error) {
	query := `
		SELECT id, code, content, created_at, expires_at
		FROM clipboard_entries
		WHERE code = $1 AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var (
		entry     models.Entry
		expiresAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, code, now).
		Scan(&entry.ID, &entry.Code, &entry.Content, &entry.CreatedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if expiresAt.Valid {
		entry.ExpiresAt = &expiresAt.Time
	}
	return &entry, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM clipboard_entries
		WHERE expires_at IS NOT NULL AND expires_at <= $1
	`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
