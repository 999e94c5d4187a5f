package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/wordcalc/pkg/caching"
)

// maxBodyBytes bounds how much of a fetched page is read.
const maxBodyBytes = 10 << 20

// Fetcher downloads web pages, optionally through a page cache.
type Fetcher struct {
	client *http.Client
	cache  *caching.Cache
	logger *slog.Logger
}

// NewFetcher returns a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: slog.Default(),
	}
}

// WithCache returns a copy of f that serves fresh pages from cache and
// stores what it downloads.
func (f *Fetcher) WithCache(cache *caching.Cache, logger *slog.Logger) *Fetcher {
	cp := *f
	cp.cache = cache
	if logger != nil {
		cp.logger = logger
	}
	return &cp
}

// GetHTML fetches url and returns the response body.
func (f *Fetcher) GetHTML(ctx context.Context, rawURL string) (string, error) {
	key, err := normalizeURL(rawURL)
	if err != nil {
		return "", err
	}
	if f.cache != nil {
		if data, ok := f.cache.Get(key); ok {
			f.logger.Debug("Page found in cache", "url", rawURL)
			return string(data), nil
		}
	}

	body, err := f.download(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if f.cache != nil {
		if err := f.cache.Set(key, body); err != nil {
			f.logger.Warn("Failed to cache page", "url", rawURL, "error", err)
		}
	}
	return string(body), nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// normalizeURL canonicalizes a URL for use as a cache key: lowercase
// host, sorted query parameters, no fragment.
func normalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	u.Host = strings.ToLower(u.Host)
	if u.RawQuery != "" {
		params := u.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sorted := url.Values{}
		for _, k := range keys {
			for _, v := range params[k] {
				sorted.Add(k, v)
			}
		}
		u.RawQuery = sorted.Encode()
	}
	u.Fragment = ""

	return u.String(), nil
}
