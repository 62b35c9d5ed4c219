package fxapi

import "fmt"

// UpstreamHTTPError is returned when the FX upstream answers with a 4xx/5xx
// status after the retry budget is spent. Body holds at most bodyExcerptLimit
// bytes of the response so error logs stay bounded.
type UpstreamHTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("HTTP %d error for %s: %s", e.StatusCode, e.URL, e.Body)
}

// UpstreamFormatError is returned when a 2xx response body cannot be decoded
// into the expected JSON shape.
type UpstreamFormatError struct {
	URL string
	Err error
}

func (e *UpstreamFormatError) Error() string {
	return fmt.Sprintf("invalid JSON returned from %s: %v", e.URL, e.Err)
}

func (e *UpstreamFormatError) Unwrap() error {
	return e.Err
}
