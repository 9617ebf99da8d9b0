package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/musamusakannike/dishful-app/internal/auth"
	"github.com/musamusakannike/dishful-app/internal/domain"
	"github.com/musamusakannike/dishful-app/internal/platform/config"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config

	users     domain.UserRepository
	recipes   domain.RecipeRepository
	generator domain.RecipeGenerator
	tokens    *auth.TokenService

	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, users domain.UserRepository, recipes domain.RecipeRepository, generator domain.RecipeGenerator, tokens *auth.TokenService, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		users:        users,
		recipes:      recipes,
		generator:    generator,
		tokens:       tokens,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
