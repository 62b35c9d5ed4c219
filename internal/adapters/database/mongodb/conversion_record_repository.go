package mongodb

import (
	"context"
	"fmt"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	"github.com/curex-labs/currency_exchange_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordsCollection = "records"

type ConversionRecordRepository struct {
	coll *mongo.Collection
}

// NewConversionRecordRepository returns a conversion-record repository backed
// by the records collection.
func NewConversionRecordRepository(db *mongo.Database) *ConversionRecordRepository {
	return &ConversionRecordRepository{coll: db.Collection(recordsCollection)}
}

// Ensure ConversionRecordRepository implements ports.ConversionRecordRepository
var _ ports.ConversionRecordRepository = (*ConversionRecordRepository)(nil)

func (r *ConversionRecordRepository) SaveRecord(ctx context.Context, record models.ConversionRecord) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to save conversion record: %w", err)
	}
	return nil
}

func (r *ConversionRecordRepository) FindRecordsByUserID(ctx context.Context, userID string) ([]models.ConversionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.ConversionRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode conversion records: %w", err)
	}
	return records, nil
}

func (r *ConversionRecordRepository) DeleteRecord(ctx context.Context, recordID, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"record_id": recordID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete conversion record: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
