// Package gemini is the recipe generation gateway: it turns structured
// requests into natural-language prompts, asks Google's generative model
// for schema-constrained JSON, and parses the result. One call, one
// parse, no retries. The response is trusted beyond the JSON parse
// itself; the model is under no contract to honor the schema.
package gemini
