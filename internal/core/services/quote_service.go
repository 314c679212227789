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
	"github.com/invoiceflow/backend/internal/utils/pricing"
)

type quoteService struct {
	quoteRepo   portsrepo.QuoteRepository
	clientRepo  portsrepo.ClientRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewQuoteService creates the quote service.
func NewQuoteService(quoteRepo portsrepo.QuoteRepository, clientRepo portsrepo.ClientRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.QuoteSvcFacade {
	return &quoteService{quoteRepo: quoteRepo, clientRepo: clientRepo, activitySvc: activitySvc}
}

func (s *quoteService) CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*domain.Quote, []domain.QuoteItem, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("client %s not found: %w", req.ClientID, apperrors.ErrValidation)
	}

	status := domain.QuoteStatus(req.Status)
	if status == "" {
		status = domain.QuoteDraft
	}

	lines := make([]pricing.LineInput, len(req.Items))
	items := make([]domain.QuoteItem, len(req.Items))
	for i, it := range req.Items {
		rate := pricing.DefaultTaxRate
		if it.TaxRate != nil {
			rate = *it.TaxRate
		}
		lines[i] = pricing.LineInput{Quantity: it.Quantity, Price: it.Price, TaxRate: rate}
		items[i] = domain.QuoteItem{
			ItemID:      uuid.NewString(),
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TaxRate:     rate,
			Total:       pricing.LineTotal(it.Quantity, it.Price),
		}
	}
	totals, err := pricing.ComputeTotals(lines, req.Discount)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	quote := domain.Quote{
		QuoteID:     uuid.NewString(),
		UserID:      userID,
		ClientID:    &client.ClientID,
		Date:        now,
		ExpiryDate:  req.ExpiryDate,
		Amount:      totals.Amount,
		TaxAmount:   totals.TaxAmount,
		Discount:    req.Discount,
		Status:      status,
		Description: req.Description,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i := range items {
		items[i].QuoteID = quote.QuoteID
	}

	if err := s.quoteRepo.CreateQuoteWithItems(ctx, &quote, items); err != nil {
		return nil, nil, fmt.Errorf("failed to create quote: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityQuote,
		fmt.Sprintf("Quote %s created for %s", quote.QuoteNumber, client.Name), &quote.QuoteID)

	return &quote, items, nil
}

func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID, userID string) (*domain.Quote, []domain.QuoteItem, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get quote: %w", err)
	}
	items, err := s.quoteRepo.FindItemsByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load quote items: %w", err)
	}
	return quote, items, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *quoteService) UpdateQuoteStatus(ctx context.Context, quoteID, userID string, status domain.QuoteStatus) (*domain.Quote, error) {
	if !domain.ValidQuoteStatus(status) {
		return nil, fmt.Errorf("unknown quote status %q: %w", status, apperrors.ErrValidation)
	}

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote for status update: %w", err)
	}

	now := time.Now().UTC()
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, quoteID, userID, status, now, userID); err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	quote.Status = status
	quote.LastUpdatedAt = now
	quote.LastUpdatedBy = userID

	s.activitySvc.Record(ctx, userID, domain.ActivityQuote,
		fmt.Sprintf("Quote %s marked %s", quote.QuoteNumber, status), &quote.QuoteID)

	return quote, nil
}

// ConvertToInvoice turns a quote into a draft invoice. Totals, discount and
// items are copied verbatim rather than recomputed, so the invoice bills
// exactly what was quoted. The quote is marked Accepted in the same
// transaction; a quote that is already Accepted cannot be converted again.
func (s *quoteService) ConvertToInvoice(ctx context.Context, quoteID, userID string) (*domain.Invoice, []domain.InvoiceItem, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load quote for conversion: %w", err)
	}
	if quote.Status == domain.QuoteAccepted {
		return nil, nil, fmt.Errorf("quote %s has already been converted: %w", quote.QuoteNumber, apperrors.ErrValidation)
	}

	quoteItems, err := s.quoteRepo.FindItemsByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load quote items for conversion: %w", err)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		UserID:      userID,
		ClientID:    quote.ClientID,
		QuoteID:     &quote.QuoteID,
		Date:        now,
		Amount:      quote.Amount,
		TaxAmount:   quote.TaxAmount,
		Discount:    quote.Discount,
		Status:      domain.InvoiceDraft,
		Description: quote.Description,
		Notes:       quote.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	invoiceItems := make([]domain.InvoiceItem, len(quoteItems))
	for i, qi := range quoteItems {
		invoiceItems[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoice.InvoiceID,
			ProductID:   qi.ProductID,
			Description: qi.Description,
			Quantity:    qi.Quantity,
			Price:       qi.Price,
			TaxRate:     qi.TaxRate,
			Total:       qi.Total,
		}
	}

	accepted := *quote
	accepted.Status = domain.QuoteAccepted
	accepted.LastUpdatedAt = now
	accepted.LastUpdatedBy = userID

	if err := s.quoteRepo.ConvertQuote(ctx, accepted, &invoice, invoiceItems); err != nil {
		return nil, nil, fmt.Errorf("failed to convert quote: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityInvoice,
		fmt.Sprintf("Quote %s converted to invoice %s", quote.QuoteNumber, invoice.InvoiceNumber), &invoice.InvoiceID)

	return &invoice, invoiceItems, nil
}
