package recovery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/dbx"
	"github.com/mareviva/mareviva/internal/models"
)

// SQLiteRepository implements Repository over a DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Set(ctx context.Context, c *models.RecoveryCode) error {
	query := `INSERT INTO recovery_codes (email, code, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET code = excluded.code, expires_at = excluded.expires_at`
	_, err := r.db.ExecContext(ctx, query, strings.ToLower(c.Email), c.Code, c.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to upsert recovery code: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, email string) (*models.RecoveryCode, error) {
	query := `SELECT email, code, expires_at FROM recovery_codes WHERE email = ?`
	var c models.RecoveryCode
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(&c.Email, &c.Code, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select recovery code: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recovery_codes WHERE email = ?`, strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("failed to delete recovery code: %w", err)
	}
	return nil
}
