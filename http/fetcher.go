// Package http provides an HTTP implementation of newsdesk.Fetcher used to
// call the reader proxy and the image mirrors.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newsdesk"
)

// DefaultUserAgent identifies requests as a desktop browser. The reader
// proxy and the mirrors serve reduced pages to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// maxBodySize caps the bytes read from a single response.
const maxBodySize = 10 << 20

// Ensure Fetcher implements newsdesk.Fetcher at compile time.
var _ newsdesk.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies with plain GET requests.
// It never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets a client timeout for each request.
// By default there is none and only the caller's context applies.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient uses c instead of a new http.Client. WithTimeout is ignored.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch returns the body of url. Transport failures and non-2xx statuses
// are returned as EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsdesk.WrapError(newsdesk.EFETCH, err, "invalid request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/plain, text/html;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", newsdesk.WrapError(newsdesk.EFETCH, err, "request to %s failed", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newsdesk.Errorf(newsdesk.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", newsdesk.WrapError(newsdesk.EFETCH, err, "reading %s", url)
	}

	return string(body), nil
}
