package numeric

import (
	"encoding/json"
	"fmt"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

func init() {
	// Chained rate*amount math must not lose precision mid-calculation.
	// The default division precision (16) is too low for FX work.
	if decimal.DivisionPrecision < 28 {
		decimal.DivisionPrecision = 28
	}
}

// ToDecimal converts the accepted numeric representations into an exact
// decimal. Integers and textual values parse exactly; floats go through
// their shortest round-trip representation first so binary artifacts never
// leak in (0.1 becomes exactly "0.1"). Anything else fails with
// apperrors.ErrTypeConversion.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case json.Number:
		return parseExact(n.String())
	case string:
		return parseExact(n)
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		// NewFromFloat uses the shortest decimal text that round-trips.
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %T", apperrors.ErrTypeConversion, v)
	}
}

func parseExact(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal", apperrors.ErrTypeConversion, s)
	}
	return d, nil
}
