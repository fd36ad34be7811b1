package products

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE products (
  id           TEXT PRIMARY KEY,
  name         TEXT NOT NULL,
  quantity     TEXT NOT NULL,
  price        REAL NOT NULL,
  description  TEXT NOT NULL,
  fishing_date TEXT NOT NULL,
  image_uri    TEXT NOT NULL DEFAULT '',
  seller_id    TEXT NOT NULL,
  seller_name  TEXT NOT NULL,
  created_at   TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func sampleProduct(id, sellerID string, createdAt time.Time) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        "Tainha",
		Quantity:    "1kg",
		Price:       35,
		Description: "Tainha fresca pescada hoje.",
		FishingDate: "31/12",
		ImageURI:    "local:tainha",
		SellerID:    sellerID,
		SellerName:  "José João",
		CreatedAt:   createdAt,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.Create(ctx, sampleProduct("p1", "u1", created)))

	got, err := r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tainha", got.Name)
	assert.Equal(t, 35.0, got.Price)
	assert.Equal(t, "local:tainha", got.ImageURI)
	assert.True(t, got.CreatedAt.Equal(created))

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAll_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.Create(ctx, sampleProduct("p2", "u1", base.Add(time.Second))))
	require.NoError(t, r.Create(ctx, sampleProduct("p1", "u2", base)))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
}

func TestGetBySeller(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, r.Create(ctx, sampleProduct("p1", "u1", now)))
	require.NoError(t, r.Create(ctx, sampleProduct("p2", "u2", now)))
	require.NoError(t, r.Create(ctx, sampleProduct("p3", "u1", now)))

	mine, err := r.GetBySeller(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	none, err := r.GetBySeller(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdate_OwnershipAndImageFallback(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleProduct("p1", "u1", time.Now())))

	// wrong seller: not found, row untouched
	err := r.Update(ctx, &models.Product{ID: "p1", SellerID: "u2", Name: "Atum", Quantity: "2kg", Price: 40, Description: "d", FishingDate: "01/01"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	got, err := r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tainha", got.Name)

	// owner update with empty image keeps the stored one
	err = r.Update(ctx, &models.Product{ID: "p1", SellerID: "u1", Name: "Atum", Quantity: "2kg", Price: 40, Description: "d", FishingDate: "01/01"})
	require.NoError(t, err)

	got, err = r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Atum", got.Name)
	assert.Equal(t, 40.0, got.Price)
	assert.Equal(t, "local:tainha", got.ImageURI)

	// explicit image replaces it
	err = r.Update(ctx, &models.Product{ID: "p1", SellerID: "u1", Name: "Atum", Quantity: "2kg", Price: 40, Description: "d", FishingDate: "01/01", ImageURI: "https://example.com/atum.jpg"})
	require.NoError(t, err)

	got, err = r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/atum.jpg", got.ImageURI)
}

func TestDelete_Ownership(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleProduct("p1", "u1", time.Now())))

	err := r.Delete(ctx, "p1", "u2")
	assert.ErrorIs(t, err, common.ErrNotFound)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "catalog unchanged after rejected delete")

	require.NoError(t, r.Delete(ctx, "p1", "u1"))

	all, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
