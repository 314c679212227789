package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// QuoteRepository persists quotes and their line items, and performs the
// quote-to-invoice conversion as a single transaction.
type QuoteRepository interface {
	CreateQuoteWithItems(ctx context.Context, quote *domain.Quote, items []domain.QuoteItem) error
	FindQuoteByID(ctx context.Context, quoteID, userID string) (*domain.Quote, error)
	FindItemsByQuoteID(ctx context.Context, quoteID string) ([]domain.QuoteItem, error)
	ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error)
	UpdateQuoteStatus(ctx context.Context, quoteID, userID string, status domain.QuoteStatus, updatedAt time.Time, updatedBy string) error
	// ConvertQuote atomically inserts the invoice (assigning its number) with
	// all items and marks the source quote Accepted. Either everything
	// commits or nothing does.
	ConvertQuote(ctx context.Context, quote domain.Quote, invoice *domain.Invoice, items []domain.InvoiceItem) error
}
