// Package view defines the access-controlled query modes.
package view

// View selects one of the access-controlled result scopes.
type View string

// Supported views.
const (
	Feed      View = "feed"
	Explore   View = "explore"
	Saved     View = "saved"
	MyRecipes View = "my_recipes"
)

// IsValid reports whether v is a known view.
func (v View) IsValid() bool {
	switch v {
	case Feed, Explore, Saved, MyRecipes:
		return true
	}
	return false
}

// RequiresAuth reports whether the view is unavailable to anonymous viewers.
func (v View) RequiresAuth() bool {
	return v != Explore
}

// NeedsFollowing reports whether the view's predicate depends on the
// viewer's following set. For explore this only applies to authenticated
// viewers; anonymous explore sees public documents only.
func (v View) NeedsFollowing() bool {
	return v == Feed || v == Explore || v == Saved
}

// NeedsSaved reports whether the view's predicate depends on the viewer's
// saved set.
func (v View) NeedsSaved() bool {
	return v == Saved
}

func (v View) String() string { return string(v) }
