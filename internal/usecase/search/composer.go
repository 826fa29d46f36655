package search

import (
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/request"
)

// compose merges the access predicate with the request's content filters
// into one executable query. It is pure: the same access clauses and
// request always yield a structurally identical query.
//
// A request with a full-text query is scored and ordered by relevance;
// without one, results are ordered by creation time, newest first.
func compose(access []query.Clause, req *request.Request) *query.Query {
	filters := make([]query.Clause, 0, len(access)+2)
	filters = append(filters, access...)

	if req.Category() != "" {
		filters = append(filters, query.Tag{Field: fieldCategory, Value: req.Category()})
	}
	if req.MaxTotalTime() > 0 {
		lte := float64(req.MaxTotalTime())
		filters = append(filters, query.NumRange{Field: fieldTotalTime, LTE: &lte})
	}

	q := &query.Query{
		Filters: filters,
		Offset:  req.Skip(),
		Limit:   req.Limit(),
	}

	if req.Query() != "" {
		q.Scoring = &query.Text{Query: req.Query(), Fields: textSearchFields}
	} else {
		q.Sort = &query.Sort{Field: fieldCreatedAt, Desc: true}
	}
	return q
}
