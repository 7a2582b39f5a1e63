// Package sheets fetches published Google Sheets CSV exports over HTTP.
//
// It implements the core.Fetcher capability: one GET per dataset with a
// cache-busting timestamp parameter and no-store headers, because the
// sheets are edited continuously and a stale intermediary copy must never
// be served.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kitaygorod/tracker/internal/core"
)

// HTTPFetcher fetches CSV text with a plain http.Client.
type HTTPFetcher struct {
	client *http.Client
	now    func() time.Time
}

// NewHTTPFetcher creates a fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// Fetch retrieves the raw CSV text at url. Any failure — request build,
// transport, non-2xx status, body read — is returned as a
// *core.TransportError so the resolver can classify it.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bustCache(url, f.now()), nil)
	if err != nil {
		return "", &core.TransportError{URL: url, Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &core.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &core.TransportError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.TransportError{URL: url, Err: err}
	}
	return string(body), nil
}

// bustCache appends a t=<unix millis> query parameter so every fetch gets a
// distinct URL past any intermediary cache.
func bustCache(url string, now time.Time) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%st=%d", url, sep, now.UnixMilli())
}
