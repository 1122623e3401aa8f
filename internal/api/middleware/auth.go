package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUser    = "auth.user"
	ContextSession = "auth.session"
)

// Authenticator resolves a bearer token to its owner and session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, *ports.Session, error)
}

// Auth validates the bearer token and injects the user and session into
// context. Rejections never reach the wrapped handler.
func Auth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, session, err := authn.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
				}
				return err
			}

			c.Set(ContextUser, user)
			c.Set(ContextSession, session)

			return next(c)
		}
	}
}
