package domain

import "fmt"

// DocumentType identifies the two numbered document kinds.
type DocumentType string

const (
	DocumentInvoice DocumentType = "invoice"
	DocumentQuote   DocumentType = "quote"
)

const (
	InvoiceNumberPrefix = "INV"
	QuoteNumberPrefix   = "DEV"
)

// FormatDocumentNumber renders a display number from a sequence ordinal,
// zero-padded to three digits (INV004). Ordinals past 999 simply widen.
func FormatDocumentNumber(prefix string, ordinal int64) string {
	return fmt.Sprintf("%s%03d", prefix, ordinal)
}
