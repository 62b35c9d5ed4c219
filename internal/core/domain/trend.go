package domain

import "github.com/shopspring/decimal"

// Trend is the direction of a rate series over its window.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// flatThreshold is the relative change (in percent) below which a series is
// considered flat.
var flatThreshold = decimal.RequireFromString("0.1")

var oneHundred = decimal.NewFromInt(100)

// ClassifyTrend reduces a rate series to up, down or flat by comparing the
// first and last entries against a 0.1% relative-change threshold.
// Intermediate entries deliberately do not affect the result; this is an
// endpoint comparison, not a regression fit.
func ClassifyTrend(series RateSeries) Trend {
	if len(series) < 2 {
		return TrendFlat
	}

	first := series[0]
	last := series[len(series)-1]
	if first.IsZero() {
		return TrendFlat
	}

	change := last.Sub(first).Div(first).Mul(oneHundred)
	if change.Abs().LessThan(flatThreshold) {
		return TrendFlat
	}
	if change.IsPositive() {
		return TrendUp
	}
	return TrendDown
}
