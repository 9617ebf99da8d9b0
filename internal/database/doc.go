// Package database implements the persistence layer on PostgreSQL via
// pgx. User recipes are stored as opaque JSONB documents; no schema is
// enforced on the payload beyond valid JSON.
package database
