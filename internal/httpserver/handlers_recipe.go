package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musamusakannike/dishful-app/internal/domain"
	apperrors "github.com/musamusakannike/dishful-app/internal/platform/errors"
)

// The generation endpoints return the recipe document directly on
// success; only their failures go through the envelope. This is the
// documented legacy shape of the API.

type textRecipeRequest struct {
	Food           string `json:"food"`
	AdditionalText string `json:"additionalText"`
}

type ingredientsRecipeRequest struct {
	Ingredients    []string `json:"ingredients"`
	AdditionalText string   `json:"additionalText"`
}

type randomRecipeRequest struct {
	AdditionalText string `json:"additionalText"`
}

type leftoversRecipeRequest struct {
	Leftovers      []string `json:"leftovers"`
	AdditionalText string   `json:"additionalText"`
}

func (s *Server) handleTextRecipe(c echo.Context) error {
	var req textRecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}
	if req.Food == "" {
		return apperrors.ValidationError("Food is required in the request body")
	}

	recipe, err := s.generator.ByName(c.Request().Context(), req.Food, req.AdditionalText)
	if err != nil {
		return upstreamError(err)
	}

	return sendJSON(c, http.StatusOK, recipe)
}

func (s *Server) handleIngredientsRecipe(c echo.Context) error {
	var req ingredientsRecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}
	if len(req.Ingredients) == 0 {
		return apperrors.ValidationError("Ingredients list is required and cannot be empty")
	}

	result, err := s.generator.ByIngredients(c.Request().Context(), req.Ingredients, req.AdditionalText)
	if errors.Is(err, domain.ErrNoRecipeMatch) {
		return apperrors.NotFoundError("No recipe available")
	}
	if err != nil {
		return upstreamError(err)
	}

	if result.OtherRecipes == nil {
		result.OtherRecipes = []domain.Recipe{}
	}
	return sendJSON(c, http.StatusOK, result)
}

func (s *Server) handleRandomRecipe(c echo.Context) error {
	var req randomRecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	recipe, err := s.generator.Random(c.Request().Context(), req.AdditionalText)
	if err != nil {
		return upstreamError(err)
	}

	return sendJSON(c, http.StatusOK, recipe)
}

func (s *Server) handleLeftoversRecipe(c echo.Context) error {
	var req leftoversRecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}
	if len(req.Leftovers) == 0 {
		return apperrors.ValidationError("Leftovers list is required and cannot be empty")
	}

	recipe, err := s.generator.ByLeftovers(c.Request().Context(), req.Leftovers, req.AdditionalText)
	if err != nil {
		return upstreamError(err)
	}

	return sendJSON(c, http.StatusOK, recipe)
}

func upstreamError(err error) *apperrors.Error {
	return apperrors.UpstreamError("Failed to generate the recipe", err)
}

func sendJSON(c echo.Context, code int, body any) error {
	if err := c.JSON(code, body); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
