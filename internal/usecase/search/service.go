// Package search composes visibility-scoped recipe queries and executes
// them against the index. The access predicate is decided here, never in
// the transport or storage layers.
package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/relationship"
	"github.com/plateful/recipe-search/internal/domain/search/request"
	"github.com/plateful/recipe-search/internal/domain/search/result"
	"github.com/plateful/recipe-search/internal/domain/search/view"
	"github.com/plateful/recipe-search/internal/domain/viewer"
	"github.com/plateful/recipe-search/internal/metrics"
)

// Service executes visibility-scoped recipe searches.
type Service struct {
	index   Index
	social  SocialGraph
	metrics *metrics.SearchMetrics
}

// New creates a search service.
func New(index Index, social SocialGraph, m *metrics.SearchMetrics) *Service {
	return &Service{index: index, social: social, metrics: m}
}

// Search runs one search for the given viewer. The authentication gate
// is checked before any network call. Views whose predicate depends on
// an empty relationship set short-circuit to an empty result without
// touching the index; that counts as a zero-result success.
func (s *Service) Search(ctx context.Context, vc viewer.Context, req *request.Request) ([]result.Hit, error) {
	v := req.View()

	if v.RequiresAuth() && vc.IsAnonymous() {
		return nil, fmt.Errorf("%w: view %q", domain.ErrAuthenticationRequired, v)
	}

	following, saved, err := s.fetchRelationships(ctx, vc, v)
	if err != nil {
		s.metrics.ObserveError(v.String())
		return nil, err
	}

	if shortCircuit(v, following, saved) {
		s.metrics.ObserveSuccess(v.String(), 0)
		return []result.Hit{}, nil
	}

	q := compose(accessClauses(v, vc, following, saved), req)

	hits, err := s.index.Search(ctx, q)
	if err != nil {
		s.metrics.ObserveError(v.String())
		return nil, err
	}

	s.metrics.ObserveSuccess(v.String(), len(hits))
	return hits, nil
}

// fetchRelationships retrieves the relationship sets the view's predicate
// depends on. The saved view needs both sets and fetches them in parallel.
func (s *Service) fetchRelationships(
	ctx context.Context, vc viewer.Context, v view.View,
) (following, saved relationship.Set, err error) {
	needFollowing := v.NeedsFollowing() && !vc.IsAnonymous()
	needSaved := v.NeedsSaved()

	if needFollowing && needSaved {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var gerr error
			following, gerr = s.social.Following(gctx, vc.Token())
			return gerr
		})
		g.Go(func() error {
			var gerr error
			saved, gerr = s.social.Saved(gctx, vc.Token())
			return gerr
		})
		if err = g.Wait(); err != nil {
			return nil, nil, err
		}
		return following, saved, nil
	}

	if needFollowing {
		if following, err = s.social.Following(ctx, vc.Token()); err != nil {
			return nil, nil, err
		}
	}
	if needSaved {
		if saved, err = s.social.Saved(ctx, vc.Token()); err != nil {
			return nil, nil, err
		}
	}
	return following, saved, nil
}

// shortCircuit reports whether the view's predicate is unsatisfiable
// without querying the index. A feed with nobody followed and a saved
// view with nothing saved can match no document.
func shortCircuit(v view.View, following, saved relationship.Set) bool {
	switch v {
	case view.Feed:
		return following.IsEmpty()
	case view.Saved:
		return saved.IsEmpty()
	}
	return false
}
