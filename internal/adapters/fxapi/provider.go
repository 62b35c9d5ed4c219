package fxapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/core/ports"
	"github.com/curex-labs/currency_exchange_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// dateLayout is the ISO date format used by the Frankfurter time-series endpoint.
const dateLayout = "2006-01-02"

// Ensure Client implements ports.RateProvider
var _ ports.RateProvider = (*Client)(nil)

// latestResponse mirrors GET /latest?base=X&symbols=Y.
type latestResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// seriesResponse mirrors GET /{start}..{end}?base=X&symbols=Y.
type seriesResponse struct {
	Rates map[string]map[string]json.Number `json:"rates"`
}

// LatestRate fetches the current rate for one unit of base in symbol.
func (c *Client) LatestRate(ctx context.Context, base, symbol string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("symbols", symbol)

	var out latestResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/latest", query, &out); err != nil {
		return decimal.Decimal{}, err
	}

	raw, ok := out.Rates[symbol]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s->%s", apperrors.ErrRateNotFound, base, symbol)
	}
	return numeric.ToDecimal(raw)
}

// Currencies fetches the upstream currency list as a code -> display-name map.
// A top-level shape that is not a JSON object surfaces as an UpstreamFormatError.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	currenciesURL := c.baseURL + "/currencies"

	var out map[string]string
	if err := c.fetchJSON(ctx, currenciesURL, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		// A body of `null` decodes into a nil map without a decoder error.
		// That is valid JSON but not the code->name object, and must not
		// pass as an empty currency list.
		return nil, &UpstreamFormatError{URL: currenciesURL, Err: errors.New("response is not a JSON object")}
	}
	return out, nil
}

// TimeSeries fetches the reported rates for [start, end], keyed by ISO date.
// Dates the upstream omits (weekends, holidays) are simply absent from the map.
func (c *Client) TimeSeries(ctx context.Context, base, symbol string, start, end time.Time) (map[string]decimal.Decimal, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("symbols", symbol)

	seriesURL := fmt.Sprintf("%s/%s..%s", c.baseURL, start.Format(dateLayout), end.Format(dateLayout))

	var out seriesResponse
	if err := c.fetchJSON(ctx, seriesURL, query, &out); err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(out.Rates))
	for day, symbols := range out.Rates {
		raw, ok := symbols[symbol]
		if !ok {
			continue
		}
		d, err := numeric.ToDecimal(raw)
		if err != nil {
			return nil, err
		}
		rates[day] = d
	}
	return rates, nil
}
