package httpserver

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/musamusakannike/dishful-app/internal/auth"
	"github.com/musamusakannike/dishful-app/internal/domain"
	apperrors "github.com/musamusakannike/dishful-app/internal/platform/errors"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 6
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the data payload for register and login.
type authResponse struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"token"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	if msg := validateRegister(req); msg != "" {
		return apperrors.ValidationError(msg)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	user, err := s.users.Create(c.Request().Context(), req.Username, req.Email, hash)
	if errors.Is(err, domain.ErrEmailTaken) {
		return apperrors.DuplicateError("User already exists")
	}
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	return respond(c, http.StatusCreated, "User registered successfully", authResponse{
		User:  user.Public(),
		Token: token,
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	if msg := validateLogin(req); msg != "" {
		return apperrors.ValidationError(msg)
	}

	user, err := s.users.GetByEmail(c.Request().Context(), req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Same message for unknown email and wrong password.
		return apperrors.ValidationError("Invalid email or password")
	}
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return apperrors.ValidationError("Invalid email or password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	return respond(c, http.StatusOK, "Login successful", authResponse{
		User:  user.Public(),
		Token: token,
	})
}

func (s *Server) handleCurrentUser(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return apperrors.UnauthorizedError("Unauthorized")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.UnauthorizedError("Invalid token")
	}

	user, err := s.users.GetByID(c.Request().Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.NotFoundError("User not found")
	}
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	return respond(c, http.StatusOK, "User retrieved successfully", map[string]any{
		"user": user.Public(),
	})
}

func validateRegister(req registerRequest) string {
	if len(req.Username) < usernameMinLen || len(req.Username) > usernameMaxLen {
		return "Username must be between 3 and 30 characters"
	}
	if !validEmail(req.Email) {
		return "A valid email is required"
	}
	if len(req.Password) < passwordMinLen {
		return "Password must be at least 6 characters"
	}
	return ""
}

func validateLogin(req loginRequest) string {
	if !validEmail(req.Email) {
		return "A valid email is required"
	}
	if len(req.Password) < passwordMinLen {
		return "Password must be at least 6 characters"
	}
	return ""
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
