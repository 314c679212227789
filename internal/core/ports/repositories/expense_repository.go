package repositories

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ExpenseRepository persists expenses, owner-scoped.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID, userID string) error
}
