// Package chats persists chat heads: one row per unordered user pair with the
// latest-activity summary and the unread counter.
package chats

import (
	"context"
	"time"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores chat records. Chats are created lazily and never deleted.
type Repository interface {
	// Get returns the chat with the given derived id or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Chat, error)

	Create(ctx context.Context, c *models.Chat) error

	// GetByUser returns the chats the user participates in, most recent
	// activity first. Chats without any message yet sort last.
	GetByUser(ctx context.Context, userID string) ([]models.Chat, error)

	SetLastMessage(ctx context.Context, id, text string, at time.Time) error

	// SetProduct overwrites the chat's product association.
	SetProduct(ctx context.Context, id, productID, productName string) error

	IncrementUnread(ctx context.Context, id string) error

	ResetUnread(ctx context.Context, id string) error
}
