package gemini

import (
	"fmt"
	"strings"
)

func namePrompt(food, additionalText string) string {
	prompt := fmt.Sprintf(
		"Provide a complete recipe for %s including title, ingredients, steps, recipe source, food location, and other necessary details.",
		food,
	)
	return withAdditionalText(prompt, additionalText)
}

func ingredientsPrompt(ingredients []string, additionalText string) string {
	prompt := fmt.Sprintf(
		"Based on the following ingredients: %s, provide a suitable recipe. "+
			"If no matching recipe exists, respond with a message saying 'No recipe available'. "+
			"If multiple foods match, provide the first recipe and add others under 'otherRecipes'.",
		strings.Join(ingredients, ", "),
	)
	return withAdditionalText(prompt, additionalText)
}

func randomPrompt(additionalText string) string {
	prompt := "Provide a complete recipe for a randomly chosen dish from any cuisine, " +
		"including title, ingredients, steps, recipe source, food location, and other necessary details."
	return withAdditionalText(prompt, additionalText)
}

func leftoversPrompt(leftovers []string, additionalText string) string {
	prompt := fmt.Sprintf(
		"I have the following leftovers: %s. Provide a suitable recipe that makes use of them, "+
			"including title, ingredients, steps, and other necessary details.",
		strings.Join(leftovers, ", "),
	)
	return withAdditionalText(prompt, additionalText)
}

func withAdditionalText(prompt, additionalText string) string {
	if additionalText == "" {
		return prompt
	}
	return fmt.Sprintf("%s Also take into account: %s", prompt, additionalText)
}
