package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepository
	clientRepo  portsrepo.ClientRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewExpenseService creates the expense tracking service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, clientRepo portsrepo.ClientRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, clientRepo: clientRepo, activitySvc: activitySvc}
}

// verifyClientRef confirms a referenced client exists and belongs to the
// acting user. A dangling or foreign reference is a validation failure.
func (s *expenseService) verifyClientRef(ctx context.Context, clientID *string, userID string) error {
	if clientID == nil || *clientID == "" {
		return nil
	}
	if _, err := s.clientRepo.FindClientByID(ctx, *clientID, userID); err != nil {
		return fmt.Errorf("referenced client %s not found: %w", *clientID, apperrors.ErrValidation)
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("expense amount must not be negative: %w", apperrors.ErrValidation)
	}
	if err := s.verifyClientRef(ctx, req.ClientID, userID); err != nil {
		return nil, err
	}

	status := domain.ExpenseStatus(req.Status)
	if status == "" {
		status = domain.ExpensePending
	}

	now := time.Now().UTC()
	expenseDate := now
	if req.ExpenseDate != nil {
		expenseDate = req.ExpenseDate.UTC()
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		ExpenseDate: expenseDate,
		ReceiptPath: req.ReceiptPath,
		IsBillable:  req.IsBillable,
		ClientID:    req.ClientID,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityExpense,
		fmt.Sprintf("Expense %s recorded", expense.Title), &expense.ExpenseID)

	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("expense amount must not be negative: %w", apperrors.ErrValidation)
	}
	if err := s.verifyClientRef(ctx, req.ClientID, userID); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense for update: %w", err)
	}

	expense.Title = req.Title
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.Category = req.Category
	if req.ExpenseDate != nil {
		expense.ExpenseDate = req.ExpenseDate.UTC()
	}
	expense.ReceiptPath = req.ReceiptPath
	expense.IsBillable = req.IsBillable
	expense.ClientID = req.ClientID
	if req.Status != "" {
		expense.Status = domain.ExpenseStatus(req.Status)
	}
	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityExpense,
		fmt.Sprintf("Expense %s updated", expense.Title), &expense.ExpenseID)

	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID, userID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to load expense for delete: %w", err)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, userID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityExpense,
		fmt.Sprintf("Expense %s deleted", expense.Title), nil)

	return nil
}
