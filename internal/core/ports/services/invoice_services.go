package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
)

// InvoiceSvcFacade manages invoices. Totals are always recomputed server-side
// from the submitted items and discount.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, []domain.InvoiceItem, error)
	GetInvoiceByID(ctx context.Context, invoiceID, userID string) (*domain.Invoice, []domain.InvoiceItem, error)
	ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID, userID string, status domain.InvoiceStatus) (*domain.Invoice, error)
}
