package ports

import (
	"context"

	"github.com/curex-labs/currency_exchange_app/internal/models"
)

// Note: Context is included on every method for cancellation/timeouts.

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionRepository defines persistence operations for login Sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	FindSessionByID(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ConversionRecordRepository defines persistence operations for ConversionRecords.
// Deletion is owner-scoped: a record is only removed when both the record ID
// and the user ID match.
type ConversionRecordRepository interface {
	SaveRecord(ctx context.Context, record models.ConversionRecord) error
	FindRecordsByUserID(ctx context.Context, userID string) ([]models.ConversionRecord, error)
	DeleteRecord(ctx context.Context, recordID, userID string) error
}
