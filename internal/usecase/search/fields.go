package search

// Indexed recipe fields referenced by access predicates and filters.
const (
	fieldUserID     = "user_id"
	fieldRecipeID   = "recipe_id"
	fieldVisibility = "visibility"
	fieldCategory   = "category"
	fieldTotalTime  = "total_time"
	fieldCreatedAt  = "created_at"
)

// Visibility values stored on recipe documents.
const (
	visibilityPublic        = "public"
	visibilityFollowersOnly = "followers_only"
	visibilityPrivate       = "private"
)

// textSearchFields are the TEXT-indexed fields the scoring clause runs
// over. recipe_name carries a 3x weight in the index schema, and
// category_text is the TEXT alias of the category tag field.
var textSearchFields = []string{
	"recipe_name",
	"description",
	"ingredients",
	"keywords",
	"category_text",
}
