package ports

import (
	"context"
)

// UserService applies profile changes to an authenticated user.
type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, name, roleName string) error
}
