// Package social is the HTTP client for the relationship service.
package social

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/relationship"
)

const (
	followingPath = "/follows/following/me"
	savedPath     = "/saved/me"
)

// Client fetches viewer relationship sets. Both calls are bearer-token
// authenticated with the viewer's own credential, forwarded unmodified.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a relationship-service client with a bounded
// per-call timeout.
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

// Following returns the set of user IDs the credential's owner follows.
func (c *Client) Following(ctx context.Context, token string) (relationship.Set, error) {
	return c.fetch(ctx, followingPath, token, relationship.FollowingIDField)
}

// Saved returns the set of recipe IDs the credential's owner has saved.
func (c *Client) Saved(ctx context.Context, token string) (relationship.Set, error) {
	return c.fetch(ctx, savedPath, token, relationship.SavedIDField)
}

func (c *Client) fetch(ctx context.Context, path, token, idField string) (relationship.Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Authorization", bearerPrefix+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRelationshipServiceUnavailable, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d",
			domain.ErrRelationshipServiceUnavailable, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %w",
			domain.ErrRelationshipServiceUnavailable, path, err)
	}

	set, err := relationship.Normalize(body, idField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

const bearerPrefix = "Bearer "
