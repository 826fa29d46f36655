// Package users is the HTTP client for the user-directory service.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/plateful/recipe-search/internal/domain"
)

const searchPath = "/search"

// Client searches usernames in the user directory. The call is
// unauthenticated and the upstream payload is proxied verbatim.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a user-directory client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 500 * time.Millisecond
	rc.Logger = nil
	rc.HTTPClient.Timeout = timeout

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc.StandardClient(),
	}
}

// Search returns user summaries matching q, paginated by skip/limit.
func (c *Client) Search(ctx context.Context, q string, skip, limit int) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("skip", strconv.Itoa(skip))
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUserDirectoryUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUserDirectoryUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrUserDirectoryUnavailable, err)
	}

	var results []json.RawMessage
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrUserDirectoryUnavailable, err)
	}
	if results == nil {
		results = []json.RawMessage{}
	}
	return results, nil
}
