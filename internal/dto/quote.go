package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest creates a quote with its line items.
type CreateQuoteRequest struct {
	ClientID    string                `json:"clientID" binding:"required"`
	ExpiryDate  *time.Time            `json:"expiryDate"`
	Discount    decimal.Decimal       `json:"discount"`
	Status      string                `json:"status" binding:"omitempty,quotestatus"`
	Description string                `json:"description"`
	Notes       string                `json:"notes"`
	Items       []DocumentItemRequest `json:"items" binding:"dive"`
}

// UpdateQuoteStatusRequest moves a quote to a new lifecycle state.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,quotestatus"`
}

// QuoteResponse is the public view of a quote, with items when loaded.
type QuoteResponse struct {
	QuoteID     string                 `json:"quoteID"`
	QuoteNumber string                 `json:"quoteNumber"`
	ClientID    *string                `json:"clientID"`
	Date        time.Time              `json:"date"`
	ExpiryDate  *time.Time             `json:"expiryDate,omitempty"`
	Amount      decimal.Decimal        `json:"amount"`
	TaxAmount   decimal.Decimal        `json:"taxAmount"`
	Discount    decimal.Decimal        `json:"discount"`
	Status      string                 `json:"status"`
	Description string                 `json:"description,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	Items       []DocumentItemResponse `json:"items,omitempty"`
}

func toQuoteItemResponses(items []domain.QuoteItem) []DocumentItemResponse {
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

// ToQuoteResponse converts a domain.Quote and its items to a response DTO.
func ToQuoteResponse(q *domain.Quote, items []domain.QuoteItem) QuoteResponse {
	return QuoteResponse{
		QuoteID:     q.QuoteID,
		QuoteNumber: q.QuoteNumber,
		ClientID:    q.ClientID,
		Date:        q.Date,
		ExpiryDate:  q.ExpiryDate,
		Amount:      q.Amount,
		TaxAmount:   q.TaxAmount,
		Discount:    q.Discount,
		Status:      string(q.Status),
		Description: q.Description,
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt,
		Items:       toQuoteItemResponses(items),
	}
}

// ToQuoteListResponse converts quotes without their items.
func ToQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = ToQuoteResponse(&quotes[i], nil)
	}
	return out
}
