package search

import (
	"github.com/plateful/recipe-search/internal/domain/relationship"
	"github.com/plateful/recipe-search/internal/domain/search/query"
	"github.com/plateful/recipe-search/internal/domain/search/view"
	"github.com/plateful/recipe-search/internal/domain/viewer"
)

// accessClauses builds the non-scoring access predicate for a view. The
// returned clauses are conjoined with any request filters, so a document
// is visible only when every clause holds. The predicates are pure
// functions of (view, viewer, relationship sets) and touch no I/O.
func accessClauses(v view.View, vc viewer.Context, following, saved relationship.Set) []query.Clause {
	switch v {
	case view.Feed:
		return feedClauses(vc, following)
	case view.Explore:
		return exploreClauses(vc, following)
	case view.Saved:
		return savedClauses(vc, following, saved)
	case view.MyRecipes:
		return myRecipesClauses(vc)
	}
	return nil
}

// feedClauses scopes results to recipes by followed authors that are
// public or followers-only, excluding the viewer's own recipes.
func feedClauses(vc viewer.Context, following relationship.Set) []query.Clause {
	return []query.Clause{
		query.Bool{
			Must: []query.Clause{
				query.NumIn{Field: fieldUserID, Values: following.Sorted()},
			},
			Should: []query.Clause{
				query.Tag{Field: fieldVisibility, Value: visibilityPublic},
				query.Tag{Field: fieldVisibility, Value: visibilityFollowersOnly},
			},
			MustNot: []query.Clause{
				query.NumEq{Field: fieldUserID, Value: vc.ID()},
			},
		},
	}
}

// exploreClauses scopes results to everything the viewer may see from
// other authors. Anonymous viewers see public recipes only. The
// own-recipe exclusion is a top-level clause so it binds regardless of
// which visibility branch admitted the document.
func exploreClauses(vc viewer.Context, following relationship.Set) []query.Clause {
	if vc.IsAnonymous() {
		return []query.Clause{
			query.Tag{Field: fieldVisibility, Value: visibilityPublic},
		}
	}
	return []query.Clause{
		query.Bool{
			Should: []query.Clause{
				query.Tag{Field: fieldVisibility, Value: visibilityPublic},
				query.Bool{
					Must: []query.Clause{
						query.NumIn{Field: fieldUserID, Values: following.Sorted()},
						query.Tag{Field: fieldVisibility, Value: visibilityFollowersOnly},
					},
				},
			},
		},
		query.Bool{
			MustNot: []query.Clause{
				query.NumEq{Field: fieldUserID, Value: vc.ID()},
			},
		},
	}
}

// savedClauses scopes results to the viewer's saved recipes, retaining
// only those still visible: public ones, followers-only ones by authors
// the viewer still follows, and the viewer's own private ones. A save is
// never a visibility grant on its own.
func savedClauses(vc viewer.Context, following, saved relationship.Set) []query.Clause {
	return []query.Clause{
		query.Bool{
			Must: []query.Clause{
				query.NumIn{Field: fieldRecipeID, Values: saved.Sorted()},
			},
			Should: []query.Clause{
				query.Tag{Field: fieldVisibility, Value: visibilityPublic},
				query.Bool{
					Must: []query.Clause{
						query.Tag{Field: fieldVisibility, Value: visibilityFollowersOnly},
						query.NumIn{Field: fieldUserID, Values: following.Sorted()},
					},
				},
				query.Bool{
					Must: []query.Clause{
						query.Tag{Field: fieldVisibility, Value: visibilityPrivate},
						query.NumEq{Field: fieldUserID, Value: vc.ID()},
					},
				},
			},
		},
	}
}

// myRecipesClauses scopes results to the viewer's own recipes across all
// visibility levels.
func myRecipesClauses(vc viewer.Context) []query.Clause {
	return []query.Clause{
		query.NumEq{Field: fieldUserID, Value: vc.ID()},
	}
}
