// Package messages persists the append-only chat message log.
package messages

import (
	"context"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores messages. Messages are immutable: there is no update or
// delete operation.
type Repository interface {
	Create(ctx context.Context, m *models.Message) error

	// GetByChat returns the chat's messages ordered by timestamp ascending.
	GetByChat(ctx context.Context, chatID string) ([]models.Message, error)
}
