package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Recipe is the structured document the generative model is asked to
// produce. Title, ingredients and steps are always present; the rest is
// whatever the model chooses to fill in.
type Recipe struct {
	Title          string   `json:"title"`
	Ingredients    []string `json:"ingredients"`
	Steps          []string `json:"steps"`
	RecipeSource   string   `json:"recipeSource,omitempty"`
	FoodLocation   string   `json:"foodLocation,omitempty"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
	NutritionInfo  string   `json:"nutritionInfo,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	PrepTime       string   `json:"prepTime,omitempty"`
	CookTime       string   `json:"cookTime,omitempty"`
	Pairings       []string `json:"pairings,omitempty"`
	Substitutions  []string `json:"substitutions,omitempty"`
}

// GenerateResult is the outcome of an ingredients-based generation: the
// best match plus any alternates the model proposed.
type GenerateResult struct {
	Recipe       *Recipe  `json:"recipe"`
	OtherRecipes []Recipe `json:"otherRecipes"`
}

// SavedRecipe is a recipe a user chose to keep. The payload is opaque to
// this system; only the JSON parse is enforced, not a schema.
type SavedRecipe struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Recipe    json.RawMessage `json:"recipe"`
	UserID    uuid.UUID       `json:"user"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// RecipeRepository persists saved recipes. Every read and delete is
// scoped to the owning user; there is no cross-user access path.
type RecipeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SavedRecipe, error)
	Create(ctx context.Context, title string, payload json.RawMessage, userID uuid.UUID) (*SavedRecipe, error)
	DeleteByIDForUser(ctx context.Context, recipeID, userID uuid.UUID) error
}

// RecipeGenerator produces recipes from a generative model. A single
// call, a single parse, no retries; a hung upstream hangs only the
// calling request.
type RecipeGenerator interface {
	ByName(ctx context.Context, food, additionalText string) (*Recipe, error)
	ByIngredients(ctx context.Context, ingredients []string, additionalText string) (*GenerateResult, error)
	Random(ctx context.Context, additionalText string) (*Recipe, error)
	ByLeftovers(ctx context.Context, leftovers []string, additionalText string) (*Recipe, error)
}
