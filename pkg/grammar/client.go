// Package grammar talks to a LanguageTool-compatible grammar service and
// applies or ignores the matches it reports.
package grammar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/caching"
)

// ErrServiceUnavailable means the grammar service could not be used. Local
// stats and transforms are unaffected.
var ErrServiceUnavailable = errors.New("grammar service unavailable")

// maxResponseBytes bounds how much of a service reply is read.
const maxResponseBytes = 4 << 20

// Client checks text against a grammar service.
type Client struct {
	endpoint string
	language string
	http     *http.Client
	cache    *caching.Cache
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache stores successful responses in cache.
func WithCache(cache *caching.Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for endpoint. language is used for requests
// that do not name one.
func NewClient(endpoint, language string, timeout time.Duration, opts ...Option) *Client {
	if language == "" {
		language = models.DefaultGrammarLanguage
	}
	c := &Client{
		endpoint: endpoint,
		language: language,
		http:     &http.Client{Timeout: timeout},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "grammar")
	return c
}

// Check sends req to the service. Blank text yields no matches without a
// request. Every failure to obtain a usable reply wraps ErrServiceUnavailable.
func (c *Client) Check(ctx context.Context, req models.CheckRequest) (*models.CheckResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return &models.CheckResponse{Matches: []models.Match{}}, nil
	}
	if req.Language == "" {
		req.Language = c.language
	}

	cacheKey := req.Language + "\x00" + req.Text
	if c.cache != nil {
		if data, ok := c.cache.Get(cacheKey); ok {
			var cached models.CheckResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				c.logger.Debug("grammar cache hit", "matches", len(cached.Matches))
				return &cached, nil
			}
		}
	}

	body, err := c.post(ctx, req)
	if err != nil {
		c.logger.Warn("grammar check failed", "endpoint", c.endpoint, "error", err)
		return nil, err
	}

	var resp models.CheckResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrServiceUnavailable, err)
	}
	if resp.Matches == nil {
		resp.Matches = []models.Match{}
	}

	if c.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := c.cache.Set(cacheKey, data); err != nil {
				c.logger.Warn("failed to cache grammar response", "error", err)
			}
		}
	}

	c.logger.Info("grammar check complete", "language", req.Language, "matches", len(resp.Matches))
	return &resp, nil
}

func (c *Client) post(ctx context.Context, req models.CheckRequest) ([]byte, error) {
	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("language", req.Language)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrServiceUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrServiceUnavailable, err)
	}
	return body, nil
}
