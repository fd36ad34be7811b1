package profiles

import (
	"context"
	"database/sql"
	"testing"

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
CREATE TABLE profiles (
  user_id TEXT PRIMARY KEY,
  name    TEXT NOT NULL,
  email   TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsert_InsertAndReplace(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p := &models.UserProfile{UserID: "u1", Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, r.Upsert(ctx, p))

	got, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Empty(t, got.Address)

	p.Name = "Ana Maria"
	p.Address = "Rua do Mar, 10"
	require.NoError(t, r.Upsert(ctx, p))

	got, err = r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "Rua do Mar, 10", got.Address)
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
