package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// SaveClientRequest carries the full mutable state of a client. Updates use
// replace semantics, so the same shape serves create and update.
type SaveClientRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxID         string `json:"taxID"`
	ContactPerson string `json:"contactPerson"`
	Notes         string `json:"notes"`
	Status        string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// ClientResponse is the public view of a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	TaxID         string    `json:"taxID,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		Notes:         c.Notes,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

// ToClientListResponse converts a slice of clients.
func ToClientListResponse(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
