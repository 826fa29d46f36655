// Package query defines the boolean access-predicate tree and the
// composed query shape sent to the document index.
package query

// Clause is a node of the boolean predicate tree. All clauses except
// Text are non-scoring filters.
type Clause interface {
	clause()
}

// Tag matches a string field exactly.
type Tag struct {
	Field string
	Value string
}

// NumEq matches a numeric field exactly.
type NumEq struct {
	Field string
	Value int64
}

// NumIn matches a numeric field against a set of values. Values must be
// sorted ascending so identical sets compose into identical clauses.
type NumIn struct {
	Field  string
	Values []int64
}

// NumRange bounds a numeric field inclusively. Nil means unbounded.
type NumRange struct {
	Field string
	GTE   *float64
	LTE   *float64
}

// Text is the fuzzy full-text scoring clause over the named indexed
// fields. Relative field weights are fixed in the index schema.
type Text struct {
	Query  string
	Fields []string
}

// Bool combines sub-clauses: all of Must, at least one of Should, and
// none of MustNot.
type Bool struct {
	Must    []Clause
	Should  []Clause
	MustNot []Clause
}

func (Tag) clause()      {}
func (NumEq) clause()    {}
func (NumIn) clause()    {}
func (NumRange) clause() {}
func (Text) clause()     {}
func (Bool) clause()     {}

// Sort orders results by a stored field.
type Sort struct {
	Field string
	Desc  bool
}

// Query is the composed query executed against the index: a conjunction
// of non-scoring filters, an optional scoring clause, a sort directive
// (nil means relevance order), and pagination.
type Query struct {
	Filters []Clause
	Scoring *Text
	Sort    *Sort
	Offset  int
	Limit   int
}

// ByRelevance reports whether results are ordered by relevance score.
func (q *Query) ByRelevance() bool {
	return q.Sort == nil
}
