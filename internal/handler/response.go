package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/middleware"
	"go.uber.org/zap"
)

// Response is the envelope of every API reply
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respondOK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Message: message})
}

// respondStoreError maps a store failure to its status. Storage details
// are logged, not returned.
func respondStoreError(c echo.Context, log *zap.Logger, err error, message string) error {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err))
		return respondError(c, status, "Database error")
	}
	log.Warn(message, zap.Error(err))

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return respondError(c, status, appErr.Message)
	}
	return respondError(c, status, message)
}

// requireClientID returns the authenticated client or writes a 401
func requireClientID(c echo.Context) (string, bool) {
	id, ok := middleware.ClientIDFromContext(c)
	if !ok {
		_ = respondError(c, http.StatusUnauthorized, "Invalid session")
	}
	return id, ok
}

// NotFound replies to unknown routes
func NotFound(c echo.Context) error {
	return respondError(c, http.StatusNotFound, "Route not found")
}

// ErrorHandler renders errors that escape the handlers in the envelope
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			_ = NotFound(c)
			return
		}
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		_ = respondError(c, he.Code, message)
		return
	}

	_ = respondError(c, apperr.HTTPStatus(err), "Internal server error")
}
