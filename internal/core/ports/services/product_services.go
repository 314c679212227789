package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
)

// ProductSvcFacade manages the acting user's product catalogue.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, userID string, req dto.SaveProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID, userID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID, userID string, req dto.SaveProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID, userID string) error
}
