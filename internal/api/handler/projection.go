package handler

import (
	"fmt"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/pkg/hashid"
)

// toUserResponse projects a user for clients, replacing the internal id
// with its opaque code.
func toUserResponse(u *domain.User) (userResponse, error) {
	code, err := hashid.Encode(u.ID)
	if err != nil {
		return userResponse{}, fmt.Errorf("encode user id: %w", err)
	}
	return userResponse{
		ID:       code,
		Name:     u.Name,
		Email:    u.Email,
		RoleName: u.RoleName,
	}, nil
}
