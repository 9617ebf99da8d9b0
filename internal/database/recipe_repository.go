package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/musamusakannike/dishful-app/internal/domain"
)

const recipeColumns = `id, title, recipe, user_id, created_at, updated_at`

// RecipeRepo implements domain.RecipeRepository backed by PostgreSQL.
type RecipeRepo struct {
	pool *pgxpool.Pool
}

func NewRecipeRepo(pool *pgxpool.Pool) *RecipeRepo {
	return &RecipeRepo{pool: pool}
}

// ListByUser returns every recipe saved by the given user. No pagination;
// insertion order is not guaranteed.
func (r *RecipeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedRecipe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recipeColumns+` FROM saved_recipes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]domain.SavedRecipe, 0)
	for rows.Next() {
		var rec domain.SavedRecipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Recipe, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepo) Create(ctx context.Context, title string, payload json.RawMessage, userID uuid.UUID) (*domain.SavedRecipe, error) {
	var rec domain.SavedRecipe
	err := r.pool.QueryRow(ctx, `
		INSERT INTO saved_recipes (title, recipe, user_id)
		VALUES ($1, $2, $3)
		RETURNING `+recipeColumns,
		title, payload, userID).
		Scan(&rec.ID, &rec.Title, &rec.Recipe, &rec.UserID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	return &rec, nil
}

// DeleteByIDForUser deletes a recipe only if it belongs to the given
// user. A wrong owner and a missing id are indistinguishable: both
// return domain.ErrRecipeNotFound, so a guessed id leaks nothing.
func (r *RecipeRepo) DeleteByIDForUser(ctx context.Context, recipeID, userID uuid.UUID) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM saved_recipes WHERE id = $1 AND user_id = $2`, recipeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved recipe: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}
