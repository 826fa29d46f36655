package view

import "testing"

func TestIsValid(t *testing.T) {
	for _, v := range []View{Feed, Explore, Saved, MyRecipes} {
		if !v.IsValid() {
			t.Errorf("%s should be valid", v)
		}
	}
	if View("popular").IsValid() {
		t.Error("unknown view should be invalid")
	}
}

func TestRequiresAuth(t *testing.T) {
	if Explore.RequiresAuth() {
		t.Error("explore should allow anonymous viewers")
	}
	for _, v := range []View{Feed, Saved, MyRecipes} {
		if !v.RequiresAuth() {
			t.Errorf("%s should require authentication", v)
		}
	}
}

func TestRelationshipNeeds(t *testing.T) {
	if !Feed.NeedsFollowing() || !Explore.NeedsFollowing() || !Saved.NeedsFollowing() {
		t.Error("feed, explore, and saved depend on the following set")
	}
	if MyRecipes.NeedsFollowing() {
		t.Error("my_recipes should not depend on the following set")
	}
	if !Saved.NeedsSaved() {
		t.Error("saved depends on the saved set")
	}
	if Feed.NeedsSaved() {
		t.Error("feed should not depend on the saved set")
	}
}
