// Package poller fetches the status and weather endpoints on fixed intervals.
package poller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Failure classes. Semantic unavailability (available=false) is data, not
// an error, and never appears here.
var (
	ErrTransport = errors.New("transport failure")
	ErrParse     = errors.New("parse failure")
)

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Failure names an error's class for logs and metrics.
type Failure string

const (
	FailureNone      Failure = "none"
	FailureTransport Failure = "transport"
	FailureParse     Failure = "parse"
)

// FailureKind returns the failure class of err.
func FailureKind(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrParse):
		return FailureParse
	default:
		return FailureTransport
	}
}

// Fetcher performs JSON GETs against the portal backend.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewFetcher creates a fetcher for baseURL with the given request timeout.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "homeportal/1.0",
	}
}

// URL joins path onto the base URL.
func (f *Fetcher) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return f.baseURL + path
}

// GetJSON fetches path and decodes the body into v. It returns the request
// id sent in X-Request-ID so callers can correlate log lines.
func (f *Fetcher) GetJSON(ctx context.Context, path string, v interface{}) (string, error) {
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(path), nil)
	if err != nil {
		return reqID, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("X-Request-ID", reqID)

	resp, err := f.client.Do(req)
	if err != nil {
		return reqID, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return reqID, fmt.Errorf("%w: bad status: %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return reqID, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return reqID, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return reqID, nil
}
