package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/repositories/products"
)

// ProductInput carries the seller-editable fields of a listing.
type ProductInput struct {
	Name        string
	Price       float64
	Quantity    string
	Description string
	FishingDate string
	ImageURI    string
}

// ProductService manages the product catalog. Ownership is enforced on
// update and delete: a product can only be changed by its seller.
type ProductService interface {
	AllProducts(ctx context.Context) []models.Product
	ProductByID(ctx context.Context, id string) *models.Product
	ProductsBySeller(ctx context.Context, sellerID string) []models.Product

	CreateProduct(ctx context.Context, sellerID, sellerName string, in ProductInput) models.ProductResult
	UpdateProduct(ctx context.Context, productID, sellerID string, in ProductInput) models.ProductResult
	DeleteProduct(ctx context.Context, productID, sellerID string) models.Result
}

type productService struct {
	products products.Repository
	log      logging.Logger

	now func() time.Time
}

// NewProductService constructs a ProductService over the given repository.
func NewProductService(products products.Repository, log logging.Logger) ProductService {
	return &productService{products: products, log: log, now: time.Now}
}

func (s *productService) AllProducts(ctx context.Context) []models.Product {
	list, err := s.products.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "product list failed", "error", err)
		return nil
	}
	return list
}

func (s *productService) ProductByID(ctx context.Context, id string) *models.Product {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "product lookup failed", "error", err)
		}
		return nil
	}
	return p
}

func (s *productService) ProductsBySeller(ctx context.Context, sellerID string) []models.Product {
	list, err := s.products.GetBySeller(ctx, sellerID)
	if err != nil {
		s.log.Error(ctx, "seller product list failed", "error", err)
		return nil
	}
	return list
}

func (s *productService) CreateProduct(ctx context.Context, sellerID, sellerName string, in ProductInput) models.ProductResult {
	if res := validateProductInput(in); res != nil {
		return models.ProductResult{Result: *res}
	}

	p := &models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		FishingDate: in.FishingDate,
		ImageURI:    in.ImageURI,
		SellerID:    sellerID,
		SellerName:  sellerName,
		CreatedAt:   s.now(),
	}
	if err := s.products.Create(ctx, p); err != nil {
		s.log.Error(ctx, "product insert failed", "error", err)
		return models.ProductResult{Result: models.Failure("Erro ao anunciar produto. Tente novamente.")}
	}

	s.log.Info(ctx, "product listed", "productId", p.ID)
	return models.ProductResult{Result: models.OK("Produto anunciado com sucesso!"), Product: p}
}

func (s *productService) UpdateProduct(ctx context.Context, productID, sellerID string, in ProductInput) models.ProductResult {
	if res := validateProductInput(in); res != nil {
		return models.ProductResult{Result: *res}
	}

	p := &models.Product{
		ID:          productID,
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		FishingDate: in.FishingDate,
		ImageURI:    in.ImageURI,
		SellerID:    sellerID,
	}
	if err := s.products.Update(ctx, p); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// unknown id and foreign ownership answer the same way
			return models.ProductResult{Result: models.Failure("Produto não encontrado")}
		}
		s.log.Error(ctx, "product update failed", "error", err)
		return models.ProductResult{Result: models.Failure("Erro ao atualizar produto. Tente novamente.")}
	}

	updated, err := s.products.GetByID(ctx, productID)
	if err != nil {
		s.log.Warn(ctx, "updated product re-read failed", "error", err)
	}
	return models.ProductResult{Result: models.OK("Produto atualizado com sucesso!"), Product: updated}
}

func (s *productService) DeleteProduct(ctx context.Context, productID, sellerID string) models.Result {
	if err := s.products.Delete(ctx, productID, sellerID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Failure("Produto não encontrado")
		}
		s.log.Error(ctx, "product delete failed", "error", err)
		return models.Failure("Erro ao remover produto. Tente novamente.")
	}
	return models.OK("Produto removido com sucesso!")
}

func validateProductInput(in ProductInput) *models.Result {
	if in.Name == "" || in.Quantity == "" || in.Description == "" || in.FishingDate == "" {
		res := models.Failure(msgFillAllFields)
		return &res
	}
	if in.Price <= 0 {
		res := models.Failure("O preço deve ser maior que zero")
		return &res
	}
	return nil
}
