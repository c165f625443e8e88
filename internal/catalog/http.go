package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"sonard/pkg/types"
)

// maxCatalogBytes bounds the body read from a catalog backend.
const maxCatalogBytes = 8 << 20

// HTTPSupplier fetches a JSON catalog from a backend URL.
type HTTPSupplier struct {
	URL    string
	Client *http.Client
	// Attempts is the total number of tries (<=1 means one try).
	Attempts   int
	Backoff    time.Duration
	MaxBackoff time.Duration
}

// NewHTTPSupplier returns a supplier with a tuned client and three attempts.
func NewHTTPSupplier(url string, timeout time.Duration) *HTTPSupplier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSupplier{
		URL:        url,
		Client:     newHTTPClient(timeout),
		Attempts:   3,
		Backoff:    250 * time.Millisecond,
		MaxBackoff: 2 * time.Second,
	}
}

func (h *HTTPSupplier) Name() string { return "http" }

func (h *HTTPSupplier) Load(ctx context.Context) ([]types.Event, error) {
	var events []types.Event
	err := retry(ctx, h.Attempts, h.Backoff, h.MaxBackoff, func() error {
		var err error
		events, err = h.fetch(ctx)
		return err
	})
	if err != nil {
		var perm permanentError
		if errors.As(err, &perm) {
			return nil, perm.err
		}
		return nil, unavailable(h.URL, err)
	}
	return events, nil
}

func (h *HTTPSupplier) fetch(ctx context.Context) ([]types.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, permanentError{err}
	}
	req.Header.Set("Accept", "application/json")
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, err
	}
	events, err := Decode(b, "json")
	if err != nil {
		return nil, permanentError{fmt.Errorf("decode catalog from %s: %w", h.URL, err)}
	}
	return events, nil
}

// permanentError stops retry; the wrapped error is returned as-is.
type permanentError struct{ err error }

func (p permanentError) Error() string { return p.err.Error() }

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        16,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// retry runs fn up to attempts times with doubling backoff capped at max.
// A permanentError ends the loop immediately.
func retry(ctx context.Context, attempts int, initial, max time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	d := initial
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return ctx.Err()
			}
			if d < max {
				d *= 2
				if d > max {
					d = max
				}
			}
		}
		if err = fn(); err == nil {
			return nil
		}
		var perm permanentError
		if errors.As(err, &perm) {
			return err
		}
	}
	return err
}
