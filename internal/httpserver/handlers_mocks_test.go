package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/musamusakannike/dishful-app/internal/auth"
	"github.com/musamusakannike/dishful-app/internal/domain"
	"github.com/musamusakannike/dishful-app/internal/platform/config"
)

// --- Mock implementations ---

type mockUserRepo struct {
	createFn     func(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, email, passwordHash)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

type mockRecipeRepo struct {
	listByUserFn        func(ctx context.Context, userID uuid.UUID) ([]domain.SavedRecipe, error)
	createFn            func(ctx context.Context, title string, payload json.RawMessage, userID uuid.UUID) (*domain.SavedRecipe, error)
	deleteByIDForUserFn func(ctx context.Context, recipeID, userID uuid.UUID) error
}

func (m *mockRecipeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedRecipe, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []domain.SavedRecipe{}, nil
}

func (m *mockRecipeRepo) Create(ctx context.Context, title string, payload json.RawMessage, userID uuid.UUID) (*domain.SavedRecipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, payload, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRecipeRepo) DeleteByIDForUser(ctx context.Context, recipeID, userID uuid.UUID) error {
	if m.deleteByIDForUserFn != nil {
		return m.deleteByIDForUserFn(ctx, recipeID, userID)
	}
	return domain.ErrRecipeNotFound
}

type mockGenerator struct {
	byNameFn        func(ctx context.Context, food, additionalText string) (*domain.Recipe, error)
	byIngredientsFn func(ctx context.Context, ingredients []string, additionalText string) (*domain.GenerateResult, error)
	randomFn        func(ctx context.Context, additionalText string) (*domain.Recipe, error)
	byLeftoversFn   func(ctx context.Context, leftovers []string, additionalText string) (*domain.Recipe, error)
}

func (m *mockGenerator) ByName(ctx context.Context, food, additionalText string) (*domain.Recipe, error) {
	if m.byNameFn != nil {
		return m.byNameFn(ctx, food, additionalText)
	}
	return nil, errors.New("not implemented")
}

func (m *mockGenerator) ByIngredients(ctx context.Context, ingredients []string, additionalText string) (*domain.GenerateResult, error) {
	if m.byIngredientsFn != nil {
		return m.byIngredientsFn(ctx, ingredients, additionalText)
	}
	return nil, errors.New("not implemented")
}

func (m *mockGenerator) Random(ctx context.Context, additionalText string) (*domain.Recipe, error) {
	if m.randomFn != nil {
		return m.randomFn(ctx, additionalText)
	}
	return nil, errors.New("not implemented")
}

func (m *mockGenerator) ByLeftovers(ctx context.Context, leftovers []string, additionalText string) (*domain.Recipe, error) {
	if m.byLeftoversFn != nil {
		return m.byLeftoversFn(ctx, leftovers, additionalText)
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, users domain.UserRepository, recipes domain.RecipeRepository, generator domain.RecipeGenerator) *Server {
	t.Helper()

	if users == nil {
		users = &mockUserRepo{}
	}
	if recipes == nil {
		recipes = &mockRecipeRepo{}
	}
	if generator == nil {
		generator = &mockGenerator{}
	}

	tokens, err := auth.NewTokenService("test-signing-secret", 72*time.Hour, clockwork.NewRealClock())
	require.NoError(t, err)

	cfg := &config.Config{AppEnv: "test", Port: "0"}
	return NewServer(cfg, users, recipes, generator, tokens, nil)
}

// callHandler runs a handler under the terminal error middleware so error
// returns are rendered the way clients see them.
func callHandler(h echo.HandlerFunc, c echo.Context) error {
	return errorMiddleware()(h)(c)
}

func newTestContext(s *Server, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func setClaims(c echo.Context, userID uuid.UUID, username string) {
	c.Set(contextKeyClaims, &auth.Claims{UserID: userID.String(), Username: username})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}
