package fxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/curex-labs/currency_exchange_app/internal/platform/config"
	"github.com/hashicorp/go-retryablehttp"
)

// bodyExcerptLimit bounds how much of an upstream error body is carried in an
// UpstreamHTTPError.
const bodyExcerptLimit = 300

// retryableStatus lists the statuses treated as transient. Anything else is
// returned to the caller on the first attempt.
var retryableStatus = map[int]struct{}{
	http.StatusTooManyRequests:    {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// Client is the shared HTTP client for the FX upstream. It is constructed
// once at process start and is safe for concurrent use; the underlying
// transport pools connections across calls.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *slog.Logger
}

// NewClient builds a Client from configuration. Only GET requests are issued,
// so automatic retry is safe; the budget is cfg.FXRetryMax retries after the
// first attempt with exponential backoff from cfg.FXRetryWaitMin.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.FXRetryMax
	rc.RetryWaitMin = cfg.FXRetryWaitMin
	rc.RetryWaitMax = 10 * cfg.FXRetryWaitMin
	rc.Logger = nil
	rc.CheckRetry = transientRetryPolicy
	// Hand the last response back so the caller can build a typed error from
	// the final status and body.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient = &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: cfg.FXConnectTimeout,
			}).DialContext,
			TLSHandshakeTimeout:   cfg.FXConnectTimeout,
			ResponseHeaderTimeout: cfg.FXReadTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}

	return &Client{
		baseURL: cfg.FXBaseURL,
		http:    rc,
		logger:  logger,
	}
}

// transientRetryPolicy retries connection-level failures and the transient
// status set. Context cancellation always wins and is never retried.
func transientRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		// The default policy knows the permanent transport failures
		// (unsupported scheme, redirect loops, untrusted certificates);
		// everything else transport-level is retried.
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp == nil {
		return false, nil
	}
	_, ok := retryableStatus[resp.StatusCode]
	return ok, nil
}

// fetchJSON performs a GET against rawURL with the given query and decodes
// the response body into out. Numeric fields in out should be json.Number so
// rates reach the normalizer as exact text.
func (c *Client) fetchJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	reqURL := rawURL
	if len(query) > 0 {
		reqURL = rawURL + "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build fx request for %s: %w", reqURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fx request to %s failed: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit))
		c.logger.Warn("FX upstream returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("url", reqURL),
		)
		return &UpstreamHTTPError{
			StatusCode: resp.StatusCode,
			URL:        reqURL,
			Body:       string(excerpt),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return &UpstreamFormatError{URL: reqURL, Err: err}
	}
	return nil
}
