// Package domain holds the core types shared across the application:
// users, saved recipes, generated recipes, and the repository and
// gateway contracts the adapters implement.
package domain
