// Package result defines the stable search hit shape.
package result

// Hit is a single search result. Score is nil when results are ordered
// by a stored field instead of relevance.
type Hit struct {
	id     string
	score  *float64
	fields map[string]any
}

// New creates a hit.
func New(id string, score *float64, fields map[string]any) Hit {
	return Hit{id: id, score: score, fields: fields}
}

// ID returns the document identifier.
func (h *Hit) ID() string { return h.id }

// Score returns the relevance score, or nil under field sort.
func (h *Hit) Score() *float64 { return h.score }

// Fields returns the document's stored field map, unmodified in content.
func (h *Hit) Fields() map[string]any { return h.fields }
