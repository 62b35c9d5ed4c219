package domain

import "github.com/shopspring/decimal"

// Conversion is the outcome of converting an amount between two currencies.
// Result is Amount * Rate rounded to 4 decimal places with banker's rounding;
// it is derived, never stored independently of its inputs.
type Conversion struct {
	Base   string
	Target string
	Amount decimal.Decimal
	Rate   decimal.Decimal
	Result decimal.Decimal
}
