package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mareviva/mareviva/internal/models"

	_ "modernc.org/sqlite"
)

func TestOpenMigratesAndWires(t *testing.T) {
	ctx := context.Background()

	db, repos, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	u := &models.User{ID: "u1", Name: "Maria", Email: "maria@praia.com", PasswordHash: "hash"}
	require.NoError(t, repos.Users.Create(ctx, u))

	got, err := repos.Users.GetByEmail(ctx, "maria@praia.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	// every table from the migration is present
	for _, table := range []string{"users", "recovery_codes", "products", "chats", "messages", "profiles", "metadata"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()

	dsn := "file:" + t.TempDir() + "/mareviva.db"

	db, repos, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.Products.Create(ctx, &models.Product{
		ID: "p1", Name: "Tainha", Quantity: "1kg", Price: 35,
		Description: "fresca", FishingDate: "31/12",
		SellerID: "u1", SellerName: "Maria",
	}))
	require.NoError(t, db.Close())

	// reopening an already-migrated database applies nothing and loses nothing
	db, repos, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	list, err := repos.Products.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
