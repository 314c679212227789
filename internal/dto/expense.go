package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveExpenseRequest carries the full mutable state of an expense.
type SaveExpenseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	ExpenseDate *time.Time      `json:"expenseDate"`
	ReceiptPath string          `json:"receiptPath"`
	IsBillable  bool            `json:"isBillable"`
	ClientID    *string         `json:"clientID"`
	Status      string          `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}

// ExpenseResponse is the public view of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"`
	ReceiptPath string          `json:"receiptPath,omitempty"`
	IsBillable  bool            `json:"isBillable"`
	ClientID    *string         `json:"clientID,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		ExpenseDate: e.ExpenseDate,
		ReceiptPath: e.ReceiptPath,
		IsBillable:  e.IsBillable,
		ClientID:    e.ClientID,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses.
func ToExpenseListResponse(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
