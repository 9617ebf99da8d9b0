package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/musamusakannike/dishful-app/internal/domain"
)

// textGenerator is the slice of Client the gateway depends on.
type textGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}

// Gateway implements domain.RecipeGenerator on top of a Gemini client.
type Gateway struct {
	gen textGenerator
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{gen: client}
}

// ByName generates a recipe for a named dish.
func (g *Gateway) ByName(ctx context.Context, food, additionalText string) (*domain.Recipe, error) {
	return g.generateRecipe(ctx, namePrompt(food, additionalText))
}

// ByIngredients generates a recipe from an ingredient list. If the model
// reports that nothing matches, it returns domain.ErrNoRecipeMatch;
// otherwise the result carries the primary recipe plus any alternates.
func (g *Gateway) ByIngredients(ctx context.Context, ingredients []string, additionalText string) (*domain.GenerateResult, error) {
	raw, err := g.gen.GenerateJSON(ctx, ingredientsPrompt(ingredients, additionalText), resultSchema)
	if err != nil {
		return nil, err
	}

	var response struct {
		Recipe       *domain.Recipe  `json:"recipe"`
		Message      string          `json:"message"`
		OtherRecipes []domain.Recipe `json:"otherRecipes"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	if strings.Contains(response.Message, "No recipe available") || response.Recipe == nil {
		return nil, domain.ErrNoRecipeMatch
	}

	return &domain.GenerateResult{
		Recipe:       response.Recipe,
		OtherRecipes: response.OtherRecipes,
	}, nil
}

// Random generates a recipe for a dish of the model's choosing.
func (g *Gateway) Random(ctx context.Context, additionalText string) (*domain.Recipe, error) {
	return g.generateRecipe(ctx, randomPrompt(additionalText))
}

// ByLeftovers generates a recipe reusing the given leftovers.
func (g *Gateway) ByLeftovers(ctx context.Context, leftovers []string, additionalText string) (*domain.Recipe, error) {
	return g.generateRecipe(ctx, leftoversPrompt(leftovers, additionalText))
}

func (g *Gateway) generateRecipe(ctx context.Context, prompt string) (*domain.Recipe, error) {
	raw, err := g.gen.GenerateJSON(ctx, prompt, recipeSchema)
	if err != nil {
		return nil, err
	}

	var recipe domain.Recipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	return &recipe, nil
}
