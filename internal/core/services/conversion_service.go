package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/models"
	"github.com/google/uuid"
)

// ConversionService converts amounts via the rate service and maintains the
// per-user conversion history.
type ConversionService struct {
	rates      portssvc.RateSvcFacade
	recordRepo ports.ConversionRecordRepository
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rates portssvc.RateSvcFacade, recordRepo ports.ConversionRecordRepository) *ConversionService {
	return &ConversionService{
		rates:      rates,
		recordRepo: recordRepo,
	}
}

// Ensure ConversionService implements the facade
var _ portssvc.ConversionRecordSvcFacade = (*ConversionService)(nil)

// ConvertAndRecord performs a conversion and persists it for authenticated
// callers. Anonymous callers (empty userID) get the conversion result with a
// record ID, but nothing is stored.
func (s *ConversionService) ConvertAndRecord(ctx context.Context, userID, base, target string, amount json.Number) (*models.ConversionRecord, error) {
	conv, err := s.rates.Convert(ctx, base, target, amount)
	if err != nil {
		return nil, err
	}

	record := models.ConversionRecord{
		RecordID:       uuid.NewString(),
		UserID:         userID,
		Timestamp:      time.Now().UTC(),
		BaseCurrency:   conv.Base,
		TargetCurrency: conv.Target,
		Amount:         conv.Amount.String(),
		Rate:           conv.Rate.String(),
		Result:         conv.Result.String(),
	}

	if userID != "" {
		if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save conversion record in service: %w", err)
		}
	}
	return &record, nil
}

// ListRecords returns the user's conversion history, newest first.
func (s *ConversionService) ListRecords(ctx context.Context, userID string) ([]models.ConversionRecord, error) {
	records, err := s.recordRepo.FindRecordsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion records in service: %w", err)
	}
	if records == nil {
		return []models.ConversionRecord{}, nil
	}
	return records, nil
}

// DeleteRecord removes one of the user's records.
func (s *ConversionService) DeleteRecord(ctx context.Context, recordID, userID string) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordID, userID); err != nil {
		return fmt.Errorf("failed to delete conversion record in service: %w", err)
	}
	return nil
}
