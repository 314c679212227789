package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoiceSent      InvoiceStatus = "Sent"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// ValidInvoiceStatus reports whether s is one of the known invoice statuses.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// Invoice is a numbered, line-itemized document billed to a client.
// Amount and TaxAmount are always derived from the item collection and the
// discount percent; they are never taken from caller input.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"` // e.g. INV004, assigned once, never reused
	UserID        string          `json:"userID"`
	ClientID      *string         `json:"clientID"` // nil after the client was deleted
	QuoteID       *string         `json:"quoteID,omitempty"`
	Date          time.Time       `json:"date"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Discount      decimal.Decimal `json:"discount"` // whole-document percent [0,100]
	Status        InvoiceStatus   `json:"status"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	AuditFields
}

// InvoiceItem is a single priced row within an invoice. Total is
// quantity x price, before tax and before the document discount.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
}
