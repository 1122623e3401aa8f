package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

type stubAuthenticator struct {
	authenticateFn func(ctx context.Context, token string) (*domain.User, *ports.Session, error)
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, *ports.Session, error) {
	return s.authenticateFn(ctx, token)
}

func acceptOnly(valid string) *stubAuthenticator {
	return &stubAuthenticator{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, *ports.Session, error) {
			if token != valid {
				return nil, nil, fmt.Errorf("%w: bad signature", domain.ErrUnauthorized)
			}
			return &domain.User{ID: 7, Name: "alice"}, &ports.Session{TokenID: "jti-1", UserID: 7}, nil
		},
	}
}

func serve(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return c, called, err
}

func assertUnauthorized(t *testing.T, err error, called bool) {
	t.Helper()
	if called {
		t.Fatalf("next must not be called")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	c, called, err := serve(t, Auth(acceptOnly("good")), "Bearer good")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	user, ok := c.Get(ContextUser).(*domain.User)
	if !ok || user.ID != 7 {
		t.Fatalf("user not set: %#v", c.Get(ContextUser))
	}
	session, ok := c.Get(ContextSession).(*ports.Session)
	if !ok || session.TokenID != "jti-1" {
		t.Fatalf("session not set: %#v", c.Get(ContextSession))
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	_, called, err := serve(t, Auth(acceptOnly("good")), "bearer good")
	if err != nil || !called {
		t.Fatalf("expected pass-through, got err=%v called=%v", err, called)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, called, err := serve(t, Auth(acceptOnly("good")), "")
	assertUnauthorized(t, err, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, h := range []string{"good", "Basic good", "Bearer ", "Bearer"} {
		_, called, err := serve(t, Auth(acceptOnly("good")), h)
		assertUnauthorized(t, err, called)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	_, called, err := serve(t, Auth(acceptOnly("good")), "Bearer forged")
	assertUnauthorized(t, err, called)

	var he *echo.HTTPError
	errors.As(err, &he)
	if !errors.Is(he.Internal, domain.ErrUnauthorized) {
		t.Fatalf("expected cause to be kept, got %v", he.Internal)
	}
}

func TestAuthMiddleware_StoreFailureIsNotUnauthorized(t *testing.T) {
	storeErr := errors.New("redis: connection refused")
	authn := &stubAuthenticator{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, *ports.Session, error) {
			return nil, nil, storeErr
		},
	}

	_, called, err := serve(t, Auth(authn), "Bearer good")
	if called {
		t.Fatalf("next must not be called")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
