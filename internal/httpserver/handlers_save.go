package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/musamusakannike/dishful-app/internal/domain"
	apperrors "github.com/musamusakannike/dishful-app/internal/platform/errors"
)

type saveRecipeRequest struct {
	Title  string          `json:"title"`
	Recipe json.RawMessage `json:"recipe"`
}

func (s *Server) handleListSaved(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	recipes, err := s.recipes.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("Failed to fetch saved recipes", err)
	}

	return respond(c, http.StatusOK, "Saved recipes retrieved successfully", recipes)
}

func (s *Server) handleSaveRecipe(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req saveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}
	if req.Title == "" {
		return apperrors.ValidationError("Title is required")
	}
	if len(req.Recipe) == 0 || !json.Valid(req.Recipe) {
		return apperrors.ValidationError("Recipe is required and must be a JSON object")
	}

	saved, err := s.recipes.Create(c.Request().Context(), req.Title, req.Recipe, userID)
	if err != nil {
		return apperrors.InternalError("Failed to save recipe", err)
	}

	return respond(c, http.StatusCreated, "Recipe saved successfully", saved)
}

func (s *Server) handleDeleteSaved(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	idParam := c.Param("id")
	recipeID, err := uuid.Parse(idParam)
	if err != nil {
		return apperrors.ValidationError(fmt.Sprintf("Resource not found with ID: %s", idParam))
	}

	err = s.recipes.DeleteByIDForUser(c.Request().Context(), recipeID, userID)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return apperrors.NotFoundError("Recipe not found or unauthorized")
	}
	if err != nil {
		return apperrors.InternalError("Failed to delete recipe", err)
	}

	return respond(c, http.StatusOK, "Recipe deleted successfully", nil)
}

// ownerID extracts the authenticated user's ID from the verified claims.
func ownerID(c echo.Context) (uuid.UUID, error) {
	claims, ok := currentClaims(c)
	if !ok {
		return uuid.Nil, apperrors.UnauthorizedError("Unauthorized")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperrors.UnauthorizedError("Invalid token")
	}
	return userID, nil
}
