package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// UpdateProfile changes the display name and role label of userID.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, name, roleName string) error {
	if err := s.repo.UpdateProfile(ctx, userID, name, roleName); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	s.log.Info().Int64("user_id", userID).Msg("profile updated")
	return nil
}
