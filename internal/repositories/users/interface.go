// Package users persists registered user accounts.
package users

import (
	"context"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores user records. Emails are persisted lowercased; lookups by
// email expect the caller to pass any casing and match case-insensitively.
type Repository interface {
	// Create inserts a new user. The unique email index rejects duplicates.
	Create(ctx context.Context, u *models.User) error

	// GetByEmail returns the user with the given email, matched
	// case-insensitively, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePasswordHash overwrites the stored credential of the user with
	// the given email. Returns common.ErrNotFound when no user matches.
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}
