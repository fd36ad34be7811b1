package recovery

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
CREATE TABLE recovery_codes (
  email      TEXT PRIMARY KEY,
  code       TEXT NOT NULL,
  expires_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSet_OverwritesPreviousCode(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, &models.RecoveryCode{Email: "ana@x.com", Code: "111111", ExpiresAt: 100}))
	require.NoError(t, r.Set(ctx, &models.RecoveryCode{Email: "Ana@X.com", Code: "222222", ExpiresAt: 200}))

	got, err := r.Get(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
	assert.Equal(t, int64(200), got.ExpiresAt)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM recovery_codes`).Scan(&n))
	assert.Equal(t, 1, n, "one pending code per email")
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.Get(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, &models.RecoveryCode{Email: "ana@x.com", Code: "111111", ExpiresAt: 100}))
	require.NoError(t, r.Delete(ctx, "ANA@x.com"))

	_, err := r.Get(ctx, "ana@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, r.Delete(ctx, "ana@x.com"))
}
