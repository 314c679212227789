package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveProductRequest carries the full mutable state of a product.
type SaveProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	IsService   bool            `json:"isService"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category,omitempty"`
	IsService   bool            `json:"isService"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		Category:    p.Category,
		IsService:   p.IsService,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductListResponse converts a slice of products.
func ToProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
