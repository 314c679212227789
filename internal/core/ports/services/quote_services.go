package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
)

// QuoteSvcFacade manages quotes and the quote-to-invoice conversion.
type QuoteSvcFacade interface {
	CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*domain.Quote, []domain.QuoteItem, error)
	GetQuoteByID(ctx context.Context, quoteID, userID string) (*domain.Quote, []domain.QuoteItem, error)
	ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error)
	UpdateQuoteStatus(ctx context.Context, quoteID, userID string, status domain.QuoteStatus) (*domain.Quote, error)
	// ConvertToInvoice creates an invoice from the quote, copying totals and
	// items verbatim, and marks the quote Accepted. Converting a quote that is
	// already Accepted returns apperrors.ErrValidation.
	ConvertToInvoice(ctx context.Context, quoteID, userID string) (*domain.Invoice, []domain.InvoiceItem, error)
}
