package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateProvider is the outbound port to the upstream FX data source.
// Implementations own transport concerns (retries, timeouts, decoding) and
// surface the typed failures defined by the fxapi adapter and apperrors.
type RateProvider interface {
	// LatestRate returns the current rate for one unit of base in symbol.
	// A well-formed response that omits the symbol yields apperrors.ErrRateNotFound.
	LatestRate(ctx context.Context, base, symbol string) (decimal.Decimal, error)

	// Currencies returns the upstream code -> display-name mapping.
	Currencies(ctx context.Context) (map[string]string, error)

	// TimeSeries returns the rates reported for [start, end], keyed by ISO
	// date. The upstream may omit non-business days; callers fill the gaps.
	TimeSeries(ctx context.Context, base, symbol string, start, end time.Time) (map[string]decimal.Decimal, error)
}
