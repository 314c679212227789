package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
)

const defaultProductUnit = "unit"

type productService struct {
	productRepo portsrepo.ProductRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewProductService creates the product catalogue service.
func NewProductService(productRepo portsrepo.ProductRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, activitySvc: activitySvc}
}

func (s *productService) CreateProduct(ctx context.Context, userID string, req dto.SaveProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("product price must not be negative: %w", apperrors.ErrValidation)
	}

	unit := req.Unit
	if unit == "" {
		unit = defaultProductUnit
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        unit,
		Category:    req.Category,
		IsService:   req.IsService,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityProduct,
		fmt.Sprintf("Product %s created", product.Name), &product.ProductID)

	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID, userID string, req dto.SaveProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("product price must not be negative: %w", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for update: %w", err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	product.Category = req.Category
	product.IsService = req.IsService
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityProduct,
		fmt.Sprintf("Product %s updated", product.Name), &product.ProductID)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID, userID string) error {
	product, err := s.productRepo.FindProductByID(ctx, productID, userID)
	if err != nil {
		return fmt.Errorf("failed to load product for delete: %w", err)
	}

	if err := s.productRepo.DeleteProduct(ctx, productID, userID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityProduct,
		fmt.Sprintf("Product %s deleted", product.Name), nil)

	return nil
}
