package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
)

type clientService struct {
	clientRepo  portsrepo.ClientRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewClientService creates the client management service.
func NewClientService(clientRepo portsrepo.ClientRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo, activitySvc: activitySvc}
}

func (s *clientService) CreateClient(ctx context.Context, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	status := domain.ClientStatus(req.Status)
	if status == "" {
		status = domain.ClientActive
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:      uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		TaxID:         req.TaxID,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityClient,
		fmt.Sprintf("Client %s created", client.Name), &client.ClientID)

	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client for update: %w", err)
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.TaxID = req.TaxID
	client.ContactPerson = req.ContactPerson
	client.Notes = req.Notes
	if req.Status != "" {
		client.Status = domain.ClientStatus(req.Status)
	}
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityClient,
		fmt.Sprintf("Client %s updated", client.Name), &client.ClientID)

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID, userID string) error {
	// Load first so the activity entry can name the client, and so a
	// cross-user ID fails with ErrNotFound before any write.
	client, err := s.clientRepo.FindClientByID(ctx, clientID, userID)
	if err != nil {
		return fmt.Errorf("failed to load client for delete: %w", err)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID, userID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.activitySvc.Record(ctx, userID, domain.ActivityClient,
		fmt.Sprintf("Client %s deleted", client.Name), nil)

	return nil
}
