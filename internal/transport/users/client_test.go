package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plateful/recipe-search/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestSearch_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "ali" || q.Get("skip") != "0" || q.Get("limit") != "20" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "username": "alice"}]`))
	})

	results, err := c.Search(context.Background(), "ali", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// Payloads pass through verbatim.
	if string(results[0]) != `{"id": 1, "username": "alice"}` {
		t.Errorf("unexpected payload: %s", results[0])
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "ali", 0, 20)
	if !errors.Is(err, domain.ErrUserDirectoryUnavailable) {
		t.Fatalf("expected ErrUserDirectoryUnavailable, got %v", err)
	}
}

func TestSearch_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Search(context.Background(), "ali", 0, 20)
	if !errors.Is(err, domain.ErrUserDirectoryUnavailable) {
		t.Fatalf("expected ErrUserDirectoryUnavailable, got %v", err)
	}
}

func TestSearch_NullBecomesEmptySlice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	results, err := c.Search(context.Background(), "ali", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty slice, got %v", results)
	}
}
