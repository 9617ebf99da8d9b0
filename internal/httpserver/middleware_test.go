package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musamusakannike/dishful-app/internal/domain"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	called := false
	recipes := &mockRecipeRepo{
		listByUserFn: func(ctx context.Context, userID uuid.UUID) ([]domain.SavedRecipe, error) {
			called = true
			return []domain.SavedRecipe{}, nil
		},
	}
	srv := newTestServer(t, nil, recipes, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/save", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "handler must not run without a token")

	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusError, body.Status)
	assert.Equal(t, "No token provided. Authorization denied.", body.Message)
	assert.Nil(t, body.Data)
}

func TestRequireAuth_NonBearerScheme(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/save", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "No token provided. Authorization denied.", body.Message)
}

func TestRequireAuth_BadToken(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/save", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusError, body.Status)
	assert.Equal(t, "Invalid token", body.Message)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	user := &domain.User{ID: uuid.New(), Username: "ana", Email: "a@x.com"}
	token, err := srv.tokens.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/save", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusSuccess, body.Status)
}

func TestErrorMiddleware_UnknownRouteGetsEnvelope(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusError, body.Status)
	assert.NotEmpty(t, body.Message)
	assert.Nil(t, body.Data)
}

func TestErrorMiddleware_MethodNotAllowedTreatedAsNotFound(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/register", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusError, body.Status)
}

func TestErrorMiddleware_InternalErrorHidesDetail(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
			return nil, assert.AnError
		},
	}
	srv := newTestServer(t, users, nil, nil)

	body := `{"username":"ana","email":"a@x.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "Server error", resp.Message)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestRootRoute(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, statusSuccess, body.Status)
	assert.Equal(t, "SERVER IS RUNNING....", body.Message)
}
