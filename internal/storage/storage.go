// Package storage opens the local SQLite database, applies the embedded
// migrations, and bundles the repository set the services are built from.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mareviva/mareviva/internal/migrations"
	"github.com/mareviva/mareviva/internal/repositories/chats"
	"github.com/mareviva/mareviva/internal/repositories/messages"
	"github.com/mareviva/mareviva/internal/repositories/metadata"
	"github.com/mareviva/mareviva/internal/repositories/products"
	"github.com/mareviva/mareviva/internal/repositories/profiles"
	"github.com/mareviva/mareviva/internal/repositories/recovery"
	"github.com/mareviva/mareviva/internal/repositories/users"
)

// Repositories is the full repository set over one database handle.
type Repositories struct {
	Users    users.Repository
	Recovery recovery.Repository
	Products products.Repository
	Chats    chats.Repository
	Messages messages.Repository
	Profiles profiles.Repository
	Metadata metadata.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single connection: SQLite allows one writer, and a ":memory:" DSN
	// would otherwise give every pooled connection its own database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, NewRepositories(db), nil
}

// NewRepositories builds the repository set over an already-open handle.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:    users.NewSQLiteRepository(db),
		Recovery: recovery.NewSQLiteRepository(db),
		Products: products.NewSQLiteRepository(db),
		Chats:    chats.NewSQLiteRepository(db),
		Messages: messages.NewSQLiteRepository(db),
		Profiles: profiles.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
	}
}
