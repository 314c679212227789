package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "Pending"
	ExpenseApproved ExpenseStatus = "Approved"
	ExpenseRejected ExpenseStatus = "Rejected"
)

// Expense is a business cost, optionally billable to a client.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	UserID      string          `json:"userID"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"`
	ReceiptPath string          `json:"receiptPath,omitempty"`
	IsBillable  bool            `json:"isBillable"`
	ClientID    *string         `json:"clientID,omitempty"` // set when billable to a client
	Status      ExpenseStatus   `json:"status"`
	AuditFields
}
