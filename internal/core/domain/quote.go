package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "Draft"
	QuoteSent     QuoteStatus = "Sent"
	QuoteAccepted QuoteStatus = "Accepted"
	QuoteRejected QuoteStatus = "Rejected"
	QuoteExpired  QuoteStatus = "Expired"
)

// ValidQuoteStatus reports whether s is one of the known quote statuses.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}

// Quote mirrors Invoice: a numbered, line-itemized document that may later be
// converted into an invoice. Totals follow the same derivation contract.
type Quote struct {
	QuoteID     string          `json:"quoteID"`
	QuoteNumber string          `json:"quoteNumber"` // e.g. DEV004
	UserID      string          `json:"userID"`
	ClientID    *string         `json:"clientID"`
	Date        time.Time       `json:"date"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Discount    decimal.Decimal `json:"discount"`
	Status      QuoteStatus     `json:"status"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}

// QuoteItem is a single priced row within a quote.
type QuoteItem struct {
	ItemID      string          `json:"itemID"`
	QuoteID     string          `json:"quoteID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
}
