package request

import (
	"errors"
	"testing"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/search/view"
)

func TestNew_Valid(t *testing.T) {
	r, err := New(view.Explore, "pasta", "italian", 45, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.View() != view.Explore {
		t.Errorf("unexpected view: %s", r.View())
	}
	if r.Query() != "pasta" || r.Category() != "italian" {
		t.Errorf("unexpected filters: %q %q", r.Query(), r.Category())
	}
	if r.MaxTotalTime() != 45 || r.Skip() != 10 || r.Limit() != 20 {
		t.Errorf("unexpected numbers: %d %d %d", r.MaxTotalTime(), r.Skip(), r.Limit())
	}
}

func TestNew_InvalidView(t *testing.T) {
	if _, err := New(view.View("popular"), "", "", 0, 0, DefaultLimit); err == nil {
		t.Fatal("expected error")
	}
}

func TestNew_PaginationBounds(t *testing.T) {
	cases := []struct {
		name        string
		skip, limit int
	}{
		{"negative skip", -1, 20},
		{"zero limit", 0, 0},
		{"limit above max", 0, MaxLimit + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(view.Explore, "", "", 0, tc.skip, tc.limit)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidPagination) {
				t.Errorf("expected ErrInvalidPagination, got %v", err)
			}
		})
	}
}

func TestNew_MaxLimitAccepted(t *testing.T) {
	r, err := New(view.Explore, "", "", 0, 0, MaxLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("expected limit %d, got %d", MaxLimit, r.Limit())
	}
}

func TestNew_NegativeMaxTotalTimeCoerced(t *testing.T) {
	r, err := New(view.Explore, "", "", -5, 0, DefaultLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.MaxTotalTime() != 0 {
		t.Errorf("expected 0, got %d", r.MaxTotalTime())
	}
}
