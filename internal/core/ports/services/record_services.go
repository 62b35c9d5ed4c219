package services

import (
	"context"
	"encoding/json"

	"github.com/curex-labs/currency_exchange_app/internal/models"
)

// ConversionRecordSvcFacade converts amounts and manages the per-user
// conversion history.
type ConversionRecordSvcFacade interface {
	// ConvertAndRecord performs a conversion and, when userID is non-empty,
	// persists it. Anonymous conversions still get a record ID in the
	// response but are not stored.
	ConvertAndRecord(ctx context.Context, userID, base, target string, amount json.Number) (*models.ConversionRecord, error)

	// ListRecords returns the user's conversion history, newest first.
	ListRecords(ctx context.Context, userID string) ([]models.ConversionRecord, error)

	// DeleteRecord removes one of the user's records. Records belonging to
	// other users are invisible and yield apperrors.ErrNotFound.
	DeleteRecord(ctx context.Context, recordID, userID string) error
}
