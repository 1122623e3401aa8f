package ports

import (
	"context"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// Create assigns the next internal id and stores the user. It returns
	// domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateProfile changes only the name and role label of the user.
	UpdateProfile(ctx context.Context, id int64, name, roleName string) error
}
