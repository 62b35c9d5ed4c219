package models

import "time"

// ConversionRecord is a persisted conversion performed by an authenticated user.
// Amount, Rate and Result are stored as canonical decimal strings rather than
// BSON doubles so the stored values stay exact.
type ConversionRecord struct {
	RecordID       string    `bson:"record_id"`
	UserID         string    `bson:"user_id"`
	Timestamp      time.Time `bson:"timestamp"`
	BaseCurrency   string    `bson:"base_currency"`
	TargetCurrency string    `bson:"target_currency"`
	Amount         string    `bson:"amount"`
	Rate           string    `bson:"rate"`
	Result         string    `bson:"result"`
}
