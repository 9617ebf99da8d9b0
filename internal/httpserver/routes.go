package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(correlationMiddleware)
	s.echo.Use(errorMiddleware())

	s.echo.GET("/", s.handleRoot)

	s.registerHealthRoutes()
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.GET("/current-user", s.handleCurrentUser, s.requireAuth)

	recipeGroup := api.Group("/recipe", s.requireAuth)
	recipeGroup.POST("/text-recipe", s.handleTextRecipe)
	recipeGroup.POST("/ingredients-recipe", s.handleIngredientsRecipe)
	recipeGroup.POST("/random-recipe", s.handleRandomRecipe)
	recipeGroup.POST("/leftovers-recipe", s.handleLeftoversRecipe)

	saveGroup := api.Group("/save", s.requireAuth)
	saveGroup.GET("", s.handleListSaved)
	saveGroup.POST("", s.handleSaveRecipe)
	saveGroup.DELETE("/:id", s.handleDeleteSaved)
}

func (s *Server) handleRoot(c echo.Context) error {
	return respond(c, http.StatusOK, "SERVER IS RUNNING....", nil)
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("Request", attrs...)
			return nil
		},
	})
}
