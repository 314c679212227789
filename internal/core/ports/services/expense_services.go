package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
)

// ExpenseSvcFacade manages the acting user's expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID, userID string) error
}
