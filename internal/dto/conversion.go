package dto

import (
	"encoding/json"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/models"
)

// ConvertRequest defines a conversion between two currencies. Amount is
// decoded as json.Number so the exact textual value reaches the decimal
// normalizer without a float round-trip.
type ConvertRequest struct {
	BaseCurrency   string      `json:"baseCurrency" binding:"required,currency"`
	TargetCurrency string      `json:"targetCurrency" binding:"required,currency"`
	Amount         json.Number `json:"amount" binding:"required"`
}

// ConversionResponse mirrors a conversion record. Decimal fields are
// canonical strings.
type ConversionResponse struct {
	RecordID       string    `json:"recordID"`
	Timestamp      time.Time `json:"timestamp"`
	BaseCurrency   string    `json:"baseCurrency"`
	TargetCurrency string    `json:"targetCurrency"`
	Amount         string    `json:"amount"`
	Rate           string    `json:"rate"`
	Result         string    `json:"result"`
}

// ToConversionResponse converts a models.ConversionRecord to its DTO.
func ToConversionResponse(rec *models.ConversionRecord) ConversionResponse {
	return ConversionResponse{
		RecordID:       rec.RecordID,
		Timestamp:      rec.Timestamp,
		BaseCurrency:   rec.BaseCurrency,
		TargetCurrency: rec.TargetCurrency,
		Amount:         rec.Amount,
		Rate:           rec.Rate,
		Result:         rec.Result,
	}
}

// ToListConversionResponse converts a slice of records to DTOs.
func ToListConversionResponse(records []models.ConversionRecord) []ConversionResponse {
	res := make([]ConversionResponse, len(records))
	for i := range records {
		res[i] = ToConversionResponse(&records[i])
	}
	return res
}
