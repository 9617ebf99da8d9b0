package gemini

import "github.com/google/generative-ai-go/genai"

// recipeSchema constrains the model output to the recipe document shape.
// Only title, ingredients and steps are required; the rest is best effort.
var recipeSchema = &genai.Schema{
	Type:        genai.TypeObject,
	Description: "Complete recipe structure",
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "The name of the recipe",
		},
		"ingredients": {
			Type:        genai.TypeArray,
			Description: "List of ingredients required",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"steps": {
			Type:        genai.TypeArray,
			Description: "List of steps to prepare the dish",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"recipeSource": {
			Type:        genai.TypeString,
			Description: "Where the recipe originates from",
		},
		"foodLocation": {
			Type:        genai.TypeString,
			Description: "Where the food is consumed majorly",
		},
		"additionalInfo": {
			Type:        genai.TypeString,
			Description: "Any additional information about the recipe",
		},
		"nutritionInfo": {
			Type:        genai.TypeString,
			Description: "Approximate nutritional information per serving",
		},
		"difficulty": {
			Type:        genai.TypeString,
			Description: "How hard the dish is to prepare",
		},
		"prepTime": {
			Type:        genai.TypeString,
			Description: "Preparation time",
		},
		"cookTime": {
			Type:        genai.TypeString,
			Description: "Cooking time",
		},
		"pairings": {
			Type:        genai.TypeArray,
			Description: "Dishes or drinks that pair well",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"substitutions": {
			Type:        genai.TypeArray,
			Description: "Possible ingredient substitutions",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"title", "ingredients", "steps"},
}

// resultSchema wraps recipeSchema for the ingredients flow, where the
// model may report no match or propose alternates.
var resultSchema = &genai.Schema{
	Type:        genai.TypeObject,
	Description: "Recipe or message response",
	Properties: map[string]*genai.Schema{
		"recipe": recipeSchema,
		"message": {
			Type:        genai.TypeString,
			Description: "Message indicating if no recipe is available",
		},
		"otherRecipes": {
			Type:        genai.TypeArray,
			Description: "List of additional food recipes, if available",
			Items:       recipeSchema,
		},
	},
}
