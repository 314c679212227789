package repositories

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail returns apperrors.ErrNotFound when no account uses the email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
}
