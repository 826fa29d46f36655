// Package relationship holds viewer-scoped ID sets fetched from the
// relationship service and the normalizer for its payloads.
package relationship

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/plateful/recipe-search/internal/domain"
)

// Known ID field names in relationship-service record payloads.
const (
	FollowingIDField = "following_id"
	SavedIDField     = "recipe_id"
)

// Set is an unordered set of entity IDs. It is a transient per-request
// value, never cached across requests.
type Set map[int64]struct{}

// NewSet builds a set from the given IDs.
func NewSet(ids ...int64) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports set membership.
func (s Set) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return len(s) == 0 }

// Sorted returns the members in ascending order. Query composition uses
// this so identical sets always produce identical clauses.
func (s Set) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Normalize canonicalizes a relationship-service payload into a Set.
//
// The upstream returns either a list of bare integer IDs or a list of
// records each carrying the ID under idField. An empty or absent payload
// yields an empty set. Anything else is an upstream-contract violation
// and fails with ErrMalformedRelationshipData.
func Normalize(raw []byte, idField string) (Set, error) {
	if len(raw) == 0 {
		return Set{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: payload is not a list: %w", domain.ErrMalformedRelationshipData, err)
	}

	set := make(Set, len(elems))
	for i, elem := range elems {
		id, err := decodeID(elem, idField)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", domain.ErrMalformedRelationshipData, i, err)
		}
		set[id] = struct{}{}
	}
	return set, nil
}

// decodeID decodes a single list element: a bare scalar ID or a record
// carrying idField.
func decodeID(elem json.RawMessage, idField string) (int64, error) {
	var scalar json.Number
	if err := json.Unmarshal(elem, &scalar); err == nil {
		return scalar.Int64()
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(elem, &record); err != nil {
		return 0, fmt.Errorf("neither scalar nor record: %w", err)
	}
	raw, ok := record[idField]
	if !ok {
		return 0, fmt.Errorf("record is missing field %q", idField)
	}
	var val json.Number
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0, fmt.Errorf("field %q is not a number: %w", idField, err)
	}
	id, err := val.Int64()
	if err != nil {
		return 0, fmt.Errorf("field %q is not an integer: %w", idField, err)
	}
	return id, nil
}
