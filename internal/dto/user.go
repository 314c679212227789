package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// UserResponse is the public view of a user account. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"isActive"`
	CompanyName string    `json:"companyName,omitempty"`
	TaxID       string    `json:"taxID,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateProfileRequest updates the caller's own profile. Profile updates are
// partial: pointer fields distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	TaxID       *string `json:"taxID"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		CompanyName: u.CompanyName,
		TaxID:       u.TaxID,
		Address:     u.Address,
		Phone:       u.Phone,
		CreatedAt:   u.CreatedAt,
	}
}
