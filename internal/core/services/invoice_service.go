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

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepository
	clientRepo  portsrepo.ClientRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, clientRepo portsrepo.ClientRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo, activitySvc: activitySvc}
}

// buildDocumentItems converts submitted line items, applying the default tax
// rate where none is given and deriving each line total. Caller-supplied
// totals never enter the system.
func buildDocumentItems(reqItems []dto.DocumentItemRequest) ([]pricing.LineInput, []domain.InvoiceItem, error) {
	lines := make([]pricing.LineInput, len(reqItems))
	items := make([]domain.InvoiceItem, len(reqItems))
	for i, it := range reqItems {
		rate := pricing.DefaultTaxRate
		if it.TaxRate != nil {
			rate = *it.TaxRate
		}
		lines[i] = pricing.LineInput{Quantity: it.Quantity, Price: it.Price, TaxRate: rate}
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TaxRate:     rate,
			Total:       pricing.LineTotal(it.Quantity, it.Price),
		}
	}
	return lines, items, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, []domain.InvoiceItem, error) {
	// Ownership check doubles as existence check; a foreign client ID is
	// indistinguishable from a missing one.
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("client %s not found: %w", req.ClientID, apperrors.ErrValidation)
	}

	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceDraft
	}

	lines, items, err := buildDocumentItems(req.Items)
	if err != nil {
		return nil, nil, err
	}
	totals, err := pricing.ComputeTotals(lines, req.Discount)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:    uuid.NewString(),
		UserID:       userID,
		ClientID:     &client.ClientID,
		Date:         now,
		DueDate:      req.DueDate,
		Amount:       totals.Amount,
		TaxAmount:    totals.TaxAmount,
		Discount:     req.Discount,
		Status:       status,
		Description:  req.Description,
		Notes:        req.Notes,
		PaymentTerms: req.PaymentTerms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i := range items {
		items[i].InvoiceID = invoice.InvoiceID
	}

	if err := s.invoiceRepo.CreateInvoiceWithItems(ctx, &invoice, items); err != nil {
		return nil, nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityInvoice,
		fmt.Sprintf("Invoice %s created for %s", invoice.InvoiceNumber, client.Name), &invoice.InvoiceID)

	return &invoice, items, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID, userID string) (*domain.Invoice, []domain.InvoiceItem, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load invoice items: %w", err)
	}
	return invoice, items, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID, userID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("unknown invoice status %q: %w", status, apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice for status update: %w", err)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, userID, status, now, userID); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	invoice.Status = status
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	s.activitySvc.Record(ctx, userID, domain.ActivityInvoice,
		fmt.Sprintf("Invoice %s marked %s", invoice.InvoiceNumber, status), &invoice.InvoiceID)

	return invoice, nil
}
