package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
)

const clientIDKey = "client_id"

// SessionResolver maps a bearer token to the client that owns it
type SessionResolver interface {
	Resolve(token string) (string, bool)
}

// SessionAuth rejects requests without a live session and stores the
// owning client id in the context for the handlers.
func SessionAuth(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return invalidSession(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				log.Warn("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_format")
				return invalidSession(c)
			}

			clientID, ok := sessions.Resolve(strings.TrimSpace(parts[1]))
			if !ok {
				log.Warn("Unknown or invalid session token")
				prometheus.RecordAuthError("invalid_session")
				return invalidSession(c)
			}

			c.Set(clientIDKey, clientID)
			c.Set("logger", log.With(zap.String("client_id", clientID)))

			return next(c)
		}
	}
}

func invalidSession(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": "Invalid session",
		"data":    nil,
	})
}

// ClientIDFromContext retrieves the authenticated client id.
// Returns "", false outside SessionAuth.
func ClientIDFromContext(c echo.Context) (string, bool) {
	clientID, ok := c.Get(clientIDKey).(string)
	return clientID, ok && clientID != ""
}
