package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/dto"
)

// ErrorHandler is the single place errors become JSON. Internal failures
// are logged with detail and returned as a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s -> %d: %v", c.Request().Method, c.Request().RequestURI, code, err)
		msg = "internal server error"
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
