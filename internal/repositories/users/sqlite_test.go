package users

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
CREATE TABLE users (
  id            TEXT PRIMARY KEY,
  name          TEXT NOT NULL,
  email         TEXT NOT NULL,
  password_hash TEXT NOT NULL
);
CREATE UNIQUE INDEX idx_users_email ON users(email);
`)
	require.NoError(t, err)

	return db
}

func TestCreate_LowercasesEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{ID: "u1", Name: "Ana", Email: "Ana@X.Com", PasswordHash: "h"}
	require.NoError(t, r.Create(ctx, u))

	var stored string
	require.NoError(t, db.QueryRow(`SELECT email FROM users WHERE id='u1'`).Scan(&stored))
	assert.Equal(t, "ana@x.com", stored)
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Name: "Ana", Email: "ana@x.com", PasswordHash: "h"}))

	// same address in different case hits the unique index
	err := r.Create(ctx, &models.User{ID: "u2", Name: "Outra", Email: "ANA@x.com", PasswordHash: "h"})
	require.Error(t, err)
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Name: "Ana", Email: "ana@x.com", PasswordHash: "h"}))

	got, err := r.GetByEmail(ctx, "ANA@X.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "h", got.PasswordHash)

	_, err = r.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Name: "Ana", Email: "ana@x.com", PasswordHash: "h"}))

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePasswordHash(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Name: "Ana", Email: "ana@x.com", PasswordHash: "old"}))

	require.NoError(t, r.UpdatePasswordHash(ctx, "Ana@X.com", "new"))

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	err = r.UpdatePasswordHash(ctx, "nobody@x.com", "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
