package metadata

import (
	"context"
	"database/sql"
	"testing"

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
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSetGetDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, got, "absent key reads as nil")

	require.NoError(t, r.Set(ctx, KeyCurrentUser, []byte(`{"id":"u1"}`)))
	require.NoError(t, r.Set(ctx, KeyCurrentUser, []byte(`{"id":"u2"}`)))

	got, err = r.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"u2"}`), got, "set overwrites")

	require.NoError(t, r.Delete(ctx, KeyCurrentUser))

	got, err = r.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyCurrentUser, []byte("a")))
	require.NoError(t, r.Set(ctx, KeySeedFlag, []byte("true")))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{KeyCurrentUser, KeySeedFlag} {
		got, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}
