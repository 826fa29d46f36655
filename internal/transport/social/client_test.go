package social

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

func TestFollowing_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/follows/following/me" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		_, _ = w.Write([]byte(`[{"following_id": 3}, {"following_id": 5}]`))
	})

	set, err := c.Following(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains(3) || !set.Contains(5) {
		t.Errorf("unexpected set: %v", set)
	}
}

func TestSaved_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/saved/me" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[10, 11]`))
	})

	set, err := c.Saved(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("unexpected set: %v", set)
	}
}

func TestFollowing_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Following(context.Background(), "tok")
	if !errors.Is(err, domain.ErrRelationshipServiceUnavailable) {
		t.Fatalf("expected ErrRelationshipServiceUnavailable, got %v", err)
	}
}

func TestFollowing_MalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
	})

	_, err := c.Following(context.Background(), "tok")
	if !errors.Is(err, domain.ErrMalformedRelationshipData) {
		t.Fatalf("expected ErrMalformedRelationshipData, got %v", err)
	}
}

func TestFollowing_EmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	set, err := c.Following(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.IsEmpty() {
		t.Errorf("expected empty set, got %v", set)
	}
}
