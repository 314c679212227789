package repositories

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ProductRepository persists catalogue products, owner-scoped.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID, userID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID, userID string) error
}
