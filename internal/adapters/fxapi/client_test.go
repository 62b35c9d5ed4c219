package fxapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/adapters/fxapi"
	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/curex-labs/currency_exchange_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at the given test server with a tight retry
// backoff so the full retry budget is exercised in milliseconds.
func newTestClient(serverURL string) *fxapi.Client {
	cfg := &config.Config{
		FXBaseURL:        serverURL,
		FXConnectTimeout: 2 * time.Second,
		FXReadTimeout:    2 * time.Second,
		FXRetryMax:       2,
		FXRetryWaitMin:   10 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fxapi.NewClient(cfg, logger)
}

func TestLatestRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "EUR", r.URL.Query().Get("base"))
		assert.Equal(t, "USD", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"base":"EUR","date":"2026-08-25","rates":{"USD":1.0842}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rate, err := client.LatestRate(context.Background(), "EUR", "USD")

	require.NoError(t, err)
	// The rate must survive as exact decimal text, not a float artifact.
	assert.Equal(t, "1.0842", rate.String())
}

func TestLatestRate_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, `{"rates":{"USD":1.1}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rate, err := client.LatestRate(context.Background(), "EUR", "USD")

	require.NoError(t, err)
	assert.Equal(t, "1.1", rate.String())
	assert.Equal(t, int32(2), attempts.Load())
}

func TestLatestRate_RetryBudgetExhausted(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `upstream down`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.LatestRate(context.Background(), "EUR", "USD")

	require.Error(t, err)
	var httpErr *fxapi.UpstreamHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "upstream down", httpErr.Body)
	// 1 initial attempt + 2 retries.
	assert.Equal(t, int32(3), attempts.Load())
}

func TestLatestRate_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	longBody := strings.Repeat("x", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, longBody)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.LatestRate(context.Background(), "EUR", "XXX")

	require.Error(t, err)
	var httpErr *fxapi.UpstreamHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	// The body excerpt stays bounded no matter how large the upstream answer.
	assert.Len(t, httpErr.Body, 300)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestLatestRate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>not json</html>`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.LatestRate(context.Background(), "EUR", "USD")

	require.Error(t, err)
	var formatErr *fxapi.UpstreamFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestLatestRate_MissingSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"rates":{"GBP":0.85}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.LatestRate(context.Background(), "EUR", "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestCurrencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currencies", r.URL.Path)
		io.WriteString(w, `{"EUR":"Euro","USD":"United States Dollar"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	currencies, err := client.Currencies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"EUR": "Euro", "USD": "United States Dollar"}, currencies)
}

func TestCurrencies_NullBody(t *testing.T) {
	// `null` is valid JSON and decodes into a nil map without an error; it
	// must surface as a format failure, not an empty currency list.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	currencies, err := client.Currencies(context.Background())

	require.Error(t, err)
	assert.Nil(t, currencies)
	var formatErr *fxapi.UpstreamFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestTimeSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2026-07-27..2026-08-25", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "CNY", r.URL.Query().Get("symbols"))
		io.WriteString(w, `{
			"rates": {
				"2026-08-24": {"CNY": 7.1234},
				"2026-08-25": {"CNY": 7.1301},
				"2026-08-23": {"EUR": 0.92}
			}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	start := time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	rates, err := client.TimeSeries(context.Background(), "USD", "CNY", start, end)

	require.NoError(t, err)
	// Days without the requested symbol are dropped, not zero-filled.
	require.Len(t, rates, 2)
	assert.True(t, decimal.RequireFromString("7.1234").Equal(rates["2026-08-24"]))
	assert.True(t, decimal.RequireFromString("7.1301").Equal(rates["2026-08-25"]))
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.LatestRate(ctx, "EUR", "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
