package products

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

const productColumns = `id, name, quantity, price, description, fishing_date, image_uri, seller_id, seller_name, created_at`

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Quantity, p.Price, p.Description, p.FishingDate,
		p.ImageURI, p.SellerID, p.SellerName, common.TimeToDB(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select product: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	return r.selectMany(ctx, query)
}

func (r *SQLiteRepository) GetBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_id = ? ORDER BY created_at, id`
	return r.selectMany(ctx, query, sellerID)
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET
			name = ?, quantity = ?, price = ?, description = ?, fishing_date = ?,
			image_uri = CASE WHEN ? = '' THEN image_uri ELSE ? END
		WHERE id = ? AND seller_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Quantity, p.Price, p.Description, p.FishingDate,
		p.ImageURI, p.ImageURI, p.ID, p.SellerID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id, sellerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND seller_id = ?`, id, sellerID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	result := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	var p models.Product
	var createdAt string
	if err := scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.Description,
		&p.FishingDate, &p.ImageURI, &p.SellerID, &p.SellerName, &createdAt); err != nil {
		return nil, err
	}
	t, err := common.TimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product timestamp: %w", err)
	}
	p.CreatedAt = t
	return &p, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
