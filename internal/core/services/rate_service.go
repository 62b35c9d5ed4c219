package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/core/domain"
	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// conversionScale is the fixed scale of conversion results.
const conversionScale = 4

const seriesDateLayout = "2006-01-02"

var one = decimal.NewFromInt(1)

// RateService provides FX business logic on top of an upstream rate provider.
type RateService struct {
	provider ports.RateProvider
}

// NewRateService creates a new RateService.
func NewRateService(provider ports.RateProvider) *RateService {
	return &RateService{provider: provider}
}

// Ensure RateService implements the facade
var _ portssvc.RateSvcFacade = (*RateService)(nil)

// CurrentRate returns units of target per one unit of base. Identical codes
// return exactly 1 without a network call.
func (s *RateService) CurrentRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	base, target, err := normalizePair(base, target)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if base == target {
		return one, nil
	}

	rate, err := s.provider.LatestRate(ctx, base, target)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get current rate in service: %w", err)
	}
	return rate, nil
}

// SupportedCurrencies returns the upstream currency codes, upper-cased and
// sorted ascending.
func (s *RateService) SupportedCurrencies(ctx context.Context) ([]string, error) {
	currencies, err := s.provider.Currencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supported currencies in service: %w", err)
	}

	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, strings.ToUpper(code))
	}
	slices.Sort(codes)
	return slices.Compact(codes), nil
}

// Convert computes amount * CurrentRate(base, target), rounded to 4 decimal
// places with banker's rounding.
func (s *RateService) Convert(ctx context.Context, base, target string, amount any) (*domain.Conversion, error) {
	amt, err := numeric.ToDecimal(amount)
	if err != nil {
		return nil, err
	}

	base, target, err = normalizePair(base, target)
	if err != nil {
		return nil, err
	}

	rate, err := s.CurrentRate(ctx, base, target)
	if err != nil {
		return nil, err
	}

	return &domain.Conversion{
		Base:   base,
		Target: target,
		Amount: amt,
		Rate:   rate,
		Result: amt.Mul(rate).RoundBank(conversionScale),
	}, nil
}

// MonthlySeries builds the daily rate series for [today-29, today], oldest
// first. Dates the upstream omits are carried forward from the last known
// value; when the window starts with a gap and the upstream reported nothing
// earlier, a single live CurrentRate call seeds the series.
func (s *RateService) MonthlySeries(ctx context.Context, base, target string) (domain.RateSeries, error) {
	base, target, err := normalizePair(base, target)
	if err != nil {
		return nil, err
	}

	series := make(domain.RateSeries, 0, domain.SeriesDays)
	if base == target {
		for i := 0; i < domain.SeriesDays; i++ {
			series = append(series, one)
		}
		return series, nil
	}

	today := time.Now()
	start := today.AddDate(0, 0, -(domain.SeriesDays - 1))

	known, err := s.provider.TimeSeries(ctx, base, target, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly rates in service: %w", err)
	}

	var lastVal decimal.Decimal
	haveLast := false
	for i := 0; i < domain.SeriesDays; i++ {
		day := start.AddDate(0, 0, i).Format(seriesDateLayout)
		if v, ok := known[day]; ok {
			lastVal = v
			haveLast = true
		} else if !haveLast {
			// Nothing reported yet in the window; seed from the live rate.
			// haveLast memoizes the seed so this happens at most once.
			seed, err := s.CurrentRate(ctx, base, target)
			if err != nil {
				return nil, err
			}
			lastVal = seed
			haveLast = true
		}
		series = append(series, lastVal)
	}
	return series, nil
}

// Trend classifies a rate series. Pure; never fails.
func (s *RateService) Trend(series domain.RateSeries) domain.Trend {
	return domain.ClassifyTrend(series)
}

// normalizePair upper-cases and validates a currency pair.
func normalizePair(base, target string) (string, string, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))
	if len(base) != 3 || len(target) != 3 {
		return "", "", fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	return base, target, nil
}
