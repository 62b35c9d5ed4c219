package services

import (
	"context"

	"github.com/curex-labs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations against the FX upstream.
type RateReaderSvc interface {
	// CurrentRate returns units of target per one unit of base. Identical
	// codes return exactly 1 without touching the network.
	CurrentRate(ctx context.Context, base, target string) (decimal.Decimal, error)

	// SupportedCurrencies returns the upstream currency codes, upper-cased
	// and sorted ascending.
	SupportedCurrencies(ctx context.Context) ([]string, error)

	// MonthlySeries returns exactly domain.SeriesDays daily rates for
	// [today-29, today], oldest first, with gaps carried forward.
	MonthlySeries(ctx context.Context, base, target string) (domain.RateSeries, error)
}

// ConverterSvc defines amount conversion.
type ConverterSvc interface {
	// Convert computes amount * CurrentRate(base, target) rounded to 4
	// decimal places (round-half-even). Non-decimal amounts pass through
	// the numeric normalizer first.
	Convert(ctx context.Context, base, target string, amount any) (*domain.Conversion, error)
}

// TrendSvc classifies a rate series. Pure; never fails.
type TrendSvc interface {
	Trend(series domain.RateSeries) domain.Trend
}

// RateSvcFacade combines all FX rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	ConverterSvc
	TrendSvc
}
