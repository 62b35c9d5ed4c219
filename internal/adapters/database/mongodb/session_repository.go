package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	"github.com/curex-labs/currency_exchange_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const sessionsCollection = "sessions"

type SessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository returns a session repository backed by the sessions
// collection.
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

// Ensure SessionRepository implements ports.SessionRepository
var _ ports.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
