package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations for the scrapers.
//
// Client provides:
//   - A browser-like User-Agent header (both sites serve crawl pages on it)
//   - Timeout handling
//   - Retries with a growing cooldown for transient failures
//
// Example usage:
//
//	client := NewClient()
//	html, err := client.GetString(ctx, "https://www.youtube.com/results?search_query=query")
type Client struct {
	httpClient *http.Client
	userAgent  string
	retries    int
	cooldown   time.Duration
}

// NewClient creates a new HTTP client configured for scraping.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "Mozilla/5.0 (compatible; cratekeeper)",
		retries:   3,
		cooldown:  time.Second,
	}
}

// statusError is a non-200 response. It keeps the code so the retry
// loop can tell rate limits and server hiccups from hard failures.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.code, e.status)
}

// Get performs a GET request and returns the response body as bytes.
// Connection errors, HTTP 429 and 5xx responses are retried; other
// failures return immediately.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			c.waitForRetry(ctx, attempt)
		}
		body, err = c.get(ctx, url)
		if err == nil || !retryable(err) || ctx.Err() != nil {
			return body, err
		}
	}
	return body, err
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return true
}

func (c *Client) waitForRetry(ctx context.Context, attempt int) {
	select {
	case <-ctx.Done():
	case <-time.After(c.cooldown * time.Duration(attempt)):
	}
}
