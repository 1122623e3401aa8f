package ports

import (
	"context"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

// RegisterInput carries the already validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	RoleName string
}

// AuthService covers registration, credential verification and the
// session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, session *Session) error
	// Authenticate validates a bearer token and resolves its owner.
	// Every rejection wraps domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, *Session, error)
}
