package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/api/middleware"
	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

const msgLoginFirst = "Please login first!"

// ctxUser returns the user injected by the Auth middleware. Handlers
// re-check it so a route mounted without the middleware still fails closed.
func ctxUser(c echo.Context) (*domain.User, bool) {
	user, _ := c.Get(middleware.ContextUser).(*domain.User)
	return user, user != nil
}

// ctxSession returns the session of the presented bearer token.
func ctxSession(c echo.Context) (*ports.Session, bool) {
	session, _ := c.Get(middleware.ContextSession).(*ports.Session)
	return session, session != nil
}
