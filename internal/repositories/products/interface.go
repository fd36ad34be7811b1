// Package products persists catalog listings.
package products

import (
	"context"

	"github.com/mareviva/mareviva/internal/models"
)

// Repository stores product listings. Listing order is creation order.
// Update and Delete match on both id and seller id, so a caller that does not
// own the row gets common.ErrNotFound and the catalog stays unchanged.
type Repository interface {
	Create(ctx context.Context, p *models.Product) error

	// GetByID returns the listing or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	GetAll(ctx context.Context) ([]models.Product, error)

	GetBySeller(ctx context.Context, sellerID string) ([]models.Product, error)

	// Update replaces the editable fields of the row matching p.ID and
	// p.SellerID, keeping id, seller and creation time. An empty p.ImageURI
	// keeps the stored image.
	Update(ctx context.Context, p *models.Product) error

	Delete(ctx context.Context, id, sellerID string) error
}
