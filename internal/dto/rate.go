package dto

import (
	"github.com/curex-labs/currency_exchange_app/internal/core/domain"
)

// RateResponse is the current rate for a currency pair.
type RateResponse struct {
	Base   string `json:"base"`
	Target string `json:"target"`
	Rate   string `json:"rate"`
	Date   string `json:"date"`
}

// TrendResponse is the 30-day trend classification plus the underlying series.
type TrendResponse struct {
	Base   string   `json:"base"`
	Target string   `json:"target"`
	Trend  string   `json:"trend"`
	Rates  []string `json:"rates"`
}

// ToTrendResponse renders a classified series with its rates as canonical
// decimal strings.
func ToTrendResponse(base, target string, trend domain.Trend, series domain.RateSeries) TrendResponse {
	rates := make([]string, len(series))
	for i, r := range series {
		rates[i] = r.String()
	}
	return TrendResponse{
		Base:   base,
		Target: target,
		Trend:  string(trend),
		Rates:  rates,
	}
}
