package httpserver

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper. Every endpoint emits it,
// success and failure alike, except the generation endpoints whose
// success payloads are the documented raw recipe shapes.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

func respond(c echo.Context, code int, message string, data any) error {
	body := envelope{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	}
	if err := c.JSON(code, body); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func respondError(c echo.Context, code int, message string) error {
	body := envelope{
		Status:  statusError,
		Message: message,
		Data:    nil,
	}
	if err := c.JSON(code, body); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
