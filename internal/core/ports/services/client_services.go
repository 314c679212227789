package services

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
)

// ClientSvcFacade manages clients on behalf of the acting user. Resources
// owned by other users surface as apperrors.ErrNotFound.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, userID string, req dto.SaveClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID, userID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	// UpdateClient replaces all mutable fields of the client.
	UpdateClient(ctx context.Context, clientID, userID string, req dto.SaveClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID, userID string) error
}
