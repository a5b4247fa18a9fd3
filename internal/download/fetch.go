package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds a single retrieval.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxBytes caps the size of a retrieved image.
const DefaultMaxBytes = 64 << 20

// Ensure HTTPFetcher implements Fetcher at compile time.
var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher retrieves http(s) locators with GET and reads file:// locators
// and bare paths from disk.
type HTTPFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// FetchOption configures an HTTPFetcher.
type FetchOption func(*HTTPFetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetchOption {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the largest body Fetch will accept.
func WithMaxBytes(n int64) FetchOption {
	return func(f *HTTPFetcher) {
		f.maxBytes = n
	}
}

// NewHTTPFetcher creates a Fetcher backed by net/http.
func NewHTTPFetcher(opts ...FetchOption) *HTTPFetcher {
	f := &HTTPFetcher{
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	return f
}

// Fetch returns the bytes behind locator.
// Non-2xx responses and oversized bodies are reported as ErrRetrieval.
func (f *HTTPFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid locator %q: %v", ErrRetrieval, locator, err)
	}

	switch u.Scheme {
	case "http", "https":
		return f.fetchHTTP(ctx, locator)
	case "file":
		return f.readFile(u.Path)
	case "":
		return f.readFile(locator)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrRetrieval, u.Scheme)
	}
}

func (f *HTTPFetcher) fetchHTTP(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrRetrieval, resp.StatusCode, locator)
	}

	return f.readAll(resp.Body)
}

func (f *HTTPFetcher) readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	defer func() { _ = file.Close() }()
	return f.readAll(file)
}

func (f *HTTPFetcher) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrRetrieval, f.maxBytes)
	}
	return data, nil
}

// ResolveLocator makes a site-relative locator such as "/maps/paris.jpg" absolute
// against base. Absolute URLs, and any locator when base is empty, are returned as is.
func ResolveLocator(base, locator string) string {
	if base == "" {
		return locator
	}
	u, err := url.Parse(locator)
	if err != nil || u.IsAbs() {
		return locator
	}
	b, err := url.Parse(strings.TrimSuffix(base, "/") + "/")
	if err != nil {
		return locator
	}
	return b.ResolveReference(u).String()
}
