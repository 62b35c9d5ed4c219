package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/dto"
	"github.com/curex-labs/currency_exchange_app/internal/models"
	"github.com/curex-labs/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
)

// AuthService implements registration and opaque-session authentication.
type AuthService struct {
	userRepo    ports.UserRepository
	sessionRepo ports.SessionRepository
	sessionTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo ports.UserRepository, sessionRepo ports.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// Ensure AuthService implements the facade
var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Register creates a user with a bcrypt-hashed password. A hashing failure
// propagates as an error; it is never swallowed into an empty credential.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user in service: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username '%s' is taken", apperrors.ErrDuplicate, req.Username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password in service: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and issues a new session.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.Session, *models.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to find user in service: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, apperrors.ErrUnauthorized
	}

	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to save session in service: %w", err)
	}
	return &session, user, nil
}

// Logout deletes the session. Deleting an unknown session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session in service: %w", err)
	}
	return nil
}

// ValidateSession resolves a session token to its user.
func (s *AuthService) ValidateSession(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find session in service: %w", err)
	}

	if s.sessionTTL > 0 && time.Since(session.CreatedAt) > s.sessionTTL {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find session user in service: %w", err)
	}
	return user, nil
}
