package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/repositories/metadata"
	"github.com/mareviva/mareviva/internal/repositories/products"
	"github.com/mareviva/mareviva/internal/repositories/profiles"
	"github.com/mareviva/mareviva/internal/repositories/recovery"
	"github.com/mareviva/mareviva/internal/repositories/users"

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

CREATE TABLE recovery_codes (
  email      TEXT PRIMARY KEY,
  code       TEXT NOT NULL,
  expires_at INTEGER NOT NULL
);

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

CREATE TABLE chats (
  id                TEXT PRIMARY KEY,
  user_id1          TEXT NOT NULL,
  user_name1        TEXT NOT NULL,
  user_id2          TEXT NOT NULL,
  user_name2        TEXT NOT NULL,
  product_id        TEXT NOT NULL DEFAULT '',
  product_name      TEXT NOT NULL DEFAULT '',
  last_message      TEXT NOT NULL DEFAULT '',
  last_message_time TEXT NOT NULL DEFAULT '',
  unread_count      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE messages (
  id            TEXT PRIMARY KEY,
  chat_id       TEXT NOT NULL,
  sender_id     TEXT NOT NULL,
  sender_name   TEXT NOT NULL,
  receiver_id   TEXT NOT NULL,
  receiver_name TEXT NOT NULL,
  text          TEXT NOT NULL,
  timestamp     TEXT NOT NULL,
  product_id    TEXT NOT NULL DEFAULT '',
  product_name  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE profiles (
  user_id TEXT PRIMARY KEY,
  name    TEXT NOT NULL,
  email   TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testEnv struct {
	db       *sql.DB
	meta     metadata.Repository
	auth     *authService
	products *productService
	messages *messageService
	profiles *profileService
	seed     *SeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupDB(t)
	log := testLogger()

	metaRepo := metadata.NewSQLiteRepository(db)
	auth := NewAuthService(users.NewSQLiteRepository(db), recovery.NewSQLiteRepository(db), metaRepo, log).(*authService)
	prod := NewProductService(products.NewSQLiteRepository(db), log).(*productService)
	msg := NewMessageService(db, log).(*messageService)
	prof := NewProfileService(profiles.NewSQLiteRepository(db), log).(*profileService)

	return &testEnv{
		db:       db,
		meta:     metaRepo,
		auth:     auth,
		products: prod,
		messages: msg,
		profiles: prof,
		seed:     NewSeedService(db, metaRepo, prod, msg, log),
	}
}
