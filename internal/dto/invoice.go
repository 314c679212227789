package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentItemRequest is a line item submitted with an invoice or a quote.
// Amounts and totals are never accepted from the caller; the server derives
// them from quantity, price and tax rate.
type DocumentItemRequest struct {
	ProductID   *string          `json:"productID"`
	Description string           `json:"description" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	TaxRate     *decimal.Decimal `json:"taxRate"` // defaults to the standard rate when omitted
}

// CreateInvoiceRequest creates an invoice with its line items.
type CreateInvoiceRequest struct {
	ClientID     string                `json:"clientID" binding:"required"`
	DueDate      *time.Time            `json:"dueDate"`
	Discount     decimal.Decimal       `json:"discount"`
	Status       string                `json:"status" binding:"omitempty,invoicestatus"`
	Description  string                `json:"description"`
	Notes        string                `json:"notes"`
	PaymentTerms string                `json:"paymentTerms"`
	Items        []DocumentItemRequest `json:"items" binding:"dive"`
}

// UpdateInvoiceStatusRequest moves an invoice to a new lifecycle state.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,invoicestatus"`
}

// DocumentItemResponse is the public view of an invoice or quote line item.
type DocumentItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse is the public view of an invoice, with items when loaded.
type InvoiceResponse struct {
	InvoiceID     string                 `json:"invoiceID"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	ClientID      *string                `json:"clientID"`
	QuoteID       *string                `json:"quoteID,omitempty"`
	Date          time.Time              `json:"date"`
	DueDate       *time.Time             `json:"dueDate,omitempty"`
	Amount        decimal.Decimal        `json:"amount"`
	TaxAmount     decimal.Decimal        `json:"taxAmount"`
	Discount      decimal.Decimal        `json:"discount"`
	Status        string                 `json:"status"`
	Description   string                 `json:"description,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	PaymentTerms  string                 `json:"paymentTerms,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	Items         []DocumentItemResponse `json:"items,omitempty"`
}

func toInvoiceItemResponses(items []domain.InvoiceItem) []DocumentItemResponse {
	out := make([]DocumentItemResponse, len(items))
	for i, it := range items {
		out[i] = DocumentItemResponse{
			ItemID:      it.ItemID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TaxRate:     it.TaxRate,
			Total:       it.Total,
		}
	}
	return out
}

// ToInvoiceResponse converts a domain.Invoice and its items to a response DTO.
func ToInvoiceResponse(inv *domain.Invoice, items []domain.InvoiceItem) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		QuoteID:       inv.QuoteID,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		Discount:      inv.Discount,
		Status:        string(inv.Status),
		Description:   inv.Description,
		Notes:         inv.Notes,
		PaymentTerms:  inv.PaymentTerms,
		CreatedAt:     inv.CreatedAt,
		Items:         toInvoiceItemResponses(items),
	}
}

// ToInvoiceListResponse converts invoices without their items.
func ToInvoiceListResponse(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i], nil)
	}
	return out
}
