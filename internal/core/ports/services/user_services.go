package services

import (
	"context"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/invoiceflow/backend/internal/dto"
	"golang.org/x/oauth2"
)

// UserSvcFacade manages user accounts and authentication checks.
type UserSvcFacade interface {
	// Register creates an account; a taken email returns apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies email/password, returning apperrors.ErrUnauthorized on mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// UpdateProfile applies a partial profile update to the caller's own account.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	// FindOrCreateGoogleUser resolves a verified Google identity to a local
	// account, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade drives the Google sign-in redirect flow.
type GoogleOAuthSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateIDToken verifies the ID token in the exchanged OAuth token and
	// extracts the user's identity claims.
	ValidateIDToken(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
