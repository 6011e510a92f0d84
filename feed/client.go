// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "frontdesk/1.0"
	// maxBodyBytes bounds a single feed payload.
	maxBodyBytes = 32 << 20
)

// Fetcher retrieves the raw bytes of a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RetryConfig controls retries of failed fetches.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	StatusCodes map[int]struct{}
}

// DefaultRetryConfig retries three times on network errors, 429 and 5xx.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		StatusCodes: map[int]struct{}{
			http.StatusTooManyRequests:     {},
			http.StatusInternalServerError: {},
			http.StatusBadGateway:          {},
			http.StatusServiceUnavailable:  {},
			http.StatusGatewayTimeout:      {},
		},
	}
}

// HTTPClient fetches feeds over HTTP with a per-attempt timeout and retries.
// URLs without an http(s) scheme are read from the local filesystem.
type HTTPClient struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	retry      RetryConfig
	logger     *slog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *HTTPClient) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryConfig sets the retry policy.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *HTTPClient) {
		c.retry = cfg
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewHTTPClient creates a feed client.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
		timeout:    defaultTimeout,
		retry:      DefaultRetryConfig(),
		logger:     slog.Default().With("component", "feed-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the body of url, retrying transient failures.
func (c *HTTPClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if !isHTTP(url) {
		return readLocal(url)
	}

	maxAttempts := c.retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		statusCode, body, err := c.doRequest(ctx, url)
		if err == nil && statusCode >= 200 && statusCode < 300 {
			if attempt > 1 {
				c.logger.Debug("fetch succeeded after retry", "url", url, "attempt", attempt)
			}
			return body, nil
		}
		if err == nil {
			err = &StatusError{URL: url, StatusCode: statusCode}
		}
		lastErr = err

		if !c.shouldRetry(statusCode, err) || attempt == maxAttempts {
			break
		}
		c.logger.Debug("fetch failed, will retry", "url", url, "attempt", attempt, "maxAttempts", maxAttempts, "err", err)
		if err := sleepWithContext(ctx, c.retryDelay(attempt)); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *HTTPClient) doRequest(ctx context.Context, url string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/xml, text/xml, */*")
	if strings.TrimSpace(c.userAgent) != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func (c *HTTPClient) shouldRetry(statusCode int, err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		_, ok := c.retry.StatusCodes[statusCode]
		return ok
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return err != nil
}

func (c *HTTPClient) retryDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return c.retry.BaseDelay
	}
	delay := c.retry.BaseDelay << (attempt - 1)
	if c.retry.MaxDelay > 0 && delay > c.retry.MaxDelay {
		delay = c.retry.MaxDelay
	}
	if delay <= 0 {
		return 200 * time.Millisecond
	}
	return delay
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isHTTP(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func readLocal(path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}
	return data, nil
}
