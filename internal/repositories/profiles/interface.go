// Package profiles persists editable user profiles, kept separately from the
// user identity records.
package profiles

import (
	"context"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores one profile per user id.
type Repository interface {
	// Get returns the profile or common.ErrNotFound.
	Get(ctx context.Context, userID string) (*models.UserProfile, error)

	// Upsert creates or replaces the profile for p.UserID.
	Upsert(ctx context.Context, p *models.UserProfile) error
}
