package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// InvoiceRepository persists invoices and their line items. Creation assigns
// the sequential display number from an atomic sequence and inserts the
// invoice with all items in one transaction; a partial document can never be
// observed.
type InvoiceRepository interface {
	// CreateInvoiceWithItems stores the invoice and its items atomically,
	// assigning InvoiceNumber on the passed invoice before insert.
	CreateInvoiceWithItems(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
	FindInvoiceByID(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error)
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID, userID string, status domain.InvoiceStatus, updatedAt time.Time, updatedBy string) error
}
