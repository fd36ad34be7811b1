package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *SQLiteRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT user_id, name, email, address FROM profiles WHERE user_id = ?`
	var p models.UserProfile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Name, &p.Email, &p.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, p *models.UserProfile) error {
	query := `INSERT INTO profiles (user_id, name, email, address) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET name = excluded.name, email = excluded.email, address = excluded.address`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Name, p.Email, p.Address)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
