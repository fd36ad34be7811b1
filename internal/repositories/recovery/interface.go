// Package recovery persists pending password-recovery codes.
package recovery

import (
	"context"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores at most one pending code per email (lowercased key).
// A new Set for the same email overwrites the previous code.
type Repository interface {
	Set(ctx context.Context, c *models.RecoveryCode) error

	// Get returns the pending code for the email or common.ErrNotFound.
	// Expiry is not checked here; the service owns that rule.
	Get(ctx context.Context, email string) (*models.RecoveryCode, error)

	// Delete removes the pending code. Deleting an absent code is a no-op.
	Delete(ctx context.Context, email string) error
}
