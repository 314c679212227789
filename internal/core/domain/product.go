package domain

import "github.com/shopspring/decimal"

// Product is a catalogue entry (good or service) whose price and description
// can be copied into document line items. Line items reference products
// optionally; deleting a product does not touch documents that copied from it.
type Product struct {
	ProductID   string          `json:"productID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category,omitempty"`
	IsService   bool            `json:"isService"`
	AuditFields
}
