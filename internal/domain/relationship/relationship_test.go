package relationship

import (
	"errors"
	"testing"

	"github.com/plateful/recipe-search/internal/domain"
)

func TestNormalize_ScalarList(t *testing.T) {
	set, err := Normalize([]byte(`[1, 2, 3]`), FollowingIDField)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 members, got %d", len(set))
	}
	for _, id := range []int64{1, 2, 3} {
		if !set.Contains(id) {
			t.Errorf("expected set to contain %d", id)
		}
	}
}

func TestNormalize_RecordList(t *testing.T) {
	payload := `[{"following_id": 7, "username": "alice"}, {"following_id": 9}]`
	set, err := Normalize([]byte(payload), FollowingIDField)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains(7) || !set.Contains(9) {
		t.Errorf("unexpected set: %v", set)
	}
}

func TestNormalize_MixedList(t *testing.T) {
	payload := `[4, {"recipe_id": 5}]`
	set, err := Normalize([]byte(payload), SavedIDField)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains(4) || !set.Contains(5) {
		t.Errorf("unexpected set: %v", set)
	}
}

func TestNormalize_EmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "[]"} {
		set, err := Normalize([]byte(payload), FollowingIDField)
		if err != nil {
			t.Fatalf("payload %q: unexpected error: %v", payload, err)
		}
		if !set.IsEmpty() {
			t.Errorf("payload %q: expected empty set", payload)
		}
	}
}

func TestNormalize_DuplicatesCollapse(t *testing.T) {
	set, err := Normalize([]byte(`[1, 1, {"following_id": 1}]`), FollowingIDField)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 1 {
		t.Errorf("expected 1 member, got %d", len(set))
	}
}

func TestNormalize_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not a list", `{"following_id": 1}`},
		{"record missing id field", `[{"username": "alice"}]`},
		{"non numeric id", `[{"following_id": "abc"}]`},
		{"fractional id", `[1.5]`},
		{"null element", `[null]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize([]byte(tc.payload), FollowingIDField)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrMalformedRelationshipData) {
				t.Errorf("expected ErrMalformedRelationshipData, got %v", err)
			}
		})
	}
}

func TestSorted_Ascending(t *testing.T) {
	set := NewSet(30, 10, 20)
	got := set.Sorted()
	want := []int64{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
