package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/musamusakannike/dishful-app/internal/auth"
	"github.com/musamusakannike/dishful-app/internal/platform/correlation"
	apperrors "github.com/musamusakannike/dishful-app/internal/platform/errors"
)

// httpErrorsTotal tracks HTTP errors by type
var httpErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total HTTP errors by error type",
	},
	[]string{"type"},
)

const contextKeyClaims = "claims"

const bearerPrefix = "Bearer "

// requireAuth gates protected routes. A request is either VERIFIED (claims
// attached, handler runs) or REJECTED (401, nothing downstream executes).
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return apperrors.UnauthorizedError("No token provided. Authorization denied.")
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		claims, err := s.tokens.Verify(token)
		if err != nil {
			return apperrors.UnauthorizedError("Invalid token")
		}

		c.Set(contextKeyClaims, claims)
		return next(c)
	}
}

// currentClaims returns the verified claims requireAuth attached to the context.
func currentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*auth.Claims)
	return claims, ok
}

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// errorMiddleware is the terminal error normalizer: any error escaping a
// handler is mapped to its HTTP status and rendered as the envelope.
// Failure detail is logged server-side only.
func errorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var structuredErr *apperrors.Error
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				structuredErr = wrapHTTPError(httpErr)
			} else {
				structuredErr = apperrors.AsStructuredError(err)
			}

			httpErrorsTotal.WithLabelValues(string(structuredErr.Type)).Inc()
			logError(c, structuredErr)

			return respondError(c, structuredErr.HTTPStatus(), structuredErr.Message)
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	ctx := c.Request().Context()

	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if claims, ok := currentClaims(c); ok {
		attrs = append(attrs, "user_id", claims.UserID)
	}

	switch err.Type {
	case apperrors.TypeValidation, apperrors.TypeDuplicate:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeUnauthorized:
		slog.InfoContext(ctx, "Unauthorized", attrs...)
	case apperrors.TypeNotFound:
		slog.InfoContext(ctx, "Not found", attrs...)
	case apperrors.TypeUpstream:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Upstream service error", attrs...)
	default:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	}
}

// wrapHTTPError converts Echo's own errors (unknown route, bad method,
// bind failures) into structured errors so they share the envelope.
func wrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	message := "Server error"
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	var errType apperrors.ErrorType
	switch httpErr.Code {
	case http.StatusBadRequest:
		errType = apperrors.TypeValidation
	case http.StatusUnauthorized:
		errType = apperrors.TypeUnauthorized
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		errType = apperrors.TypeNotFound
	default:
		errType = apperrors.TypeInternal
	}

	err := &apperrors.Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]any),
	}
	if httpErr.Internal != nil {
		err.Cause = httpErr.Internal
	}
	return err
}
