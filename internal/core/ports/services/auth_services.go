package services

import (
	"context"

	"github.com/curex-labs/currency_exchange_app/internal/dto"
	"github.com/curex-labs/currency_exchange_app/internal/models"
)

// AuthSvcFacade handles registration and opaque-session authentication.
type AuthSvcFacade interface {
	// Register creates a user with a bcrypt-hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues a new session.
	Login(ctx context.Context, req dto.LoginRequest) (*models.Session, *models.User, error)

	// Logout deletes the session; unknown sessions are not an error.
	Logout(ctx context.Context, sessionID string) error

	// ValidateSession resolves a session token to its user, rejecting
	// unknown or expired sessions with apperrors.ErrUnauthorized.
	ValidateSession(ctx context.Context, sessionID string) (*models.User, error)
}
