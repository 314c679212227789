package repositories

import (
	"context"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ClientRepository persists clients. Every read and write is scoped by the
// owning user; a client belonging to another user behaves as absent.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID, userID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID, userID string) error
}
