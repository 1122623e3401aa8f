package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
	"github.com/99minutos/auth-profile-api/internal/pkg/metrics"
)

// AuthService implements registration, login, logout and bearer token
// authentication.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, denylist ports.TokenDenylist, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		denylist: denylist,
		log:      log,
		now:      time.Now,
	}
}

// Register hashes the password and stores the user. Field rules are checked
// by the caller; uniqueness of the email is enforced by the repository.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Email = domain.NormalizeEmail(in.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			ve := domain.NewValidationError()
			ve.Add("password", "The password field must not be greater than 72 bytes.")
			return nil, ve
		}
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleName:     in.RoleName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// EmailTaken reports whether an account already uses email.
func (s *AuthService) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrUserNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("email lookup: %w", err)
	}
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Logout places the session token on the denylist until it would have
// expired naturally.
func (s *AuthService) Logout(ctx context.Context, session *ports.Session) error {
	if session == nil {
		return domain.ErrUnauthorized
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if err := s.denylist.Deny(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	metrics.TokensRevokedTotal.Inc()
	s.log.Info().Int64("user_id", session.UserID).Str("token_id", session.TokenID).Msg("user logged out")
	return nil
}

// Authenticate validates token and loads its owner. Bad, expired or
// invalidated tokens and deleted users wrap domain.ErrUnauthorized; store
// failures are returned as they are.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, *ports.Session, error) {
	session, err := s.tokens.Parse(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	denied, err := s.denylist.IsDenied(ctx, session.TokenID)
	if err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}
	if denied {
		return nil, nil, fmt.Errorf("%w: token invalidated", domain.ErrUnauthorized)
	}

	user, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}

	return user, session, nil
}
