package search

import (
	"context"

	"github.com/plateful/recipe-search/internal/domain/relationship"
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/result"
)

// Index executes composed queries against the recipe index.
type Index interface {
	Search(ctx context.Context, q *query.Query) ([]result.Hit, error)
}

// SocialGraph fetches viewer relationship sets from the relationship
// service, authenticated with the viewer's own credential.
type SocialGraph interface {
	Following(ctx context.Context, token string) (relationship.Set, error)
	Saved(ctx context.Context, token string) (relationship.Set, error)
}
