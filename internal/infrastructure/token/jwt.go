// Package token issues and verifies the HS256 bearer tokens that carry a
// user session. Each token has a unique id (jti) so that it can be placed on
// the denylist at logout.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

const (
	minSecretLength = 16
	defaultTTL      = time.Hour
)

var (
	ErrInvalidToken = errors.New("token: invalid")
	ErrExpiredToken = errors.New("token: expired")
)

// JWTIssuer implements ports.TokenIssuer.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer returns an issuer signing with secret. A non-positive ttl
// falls back to one hour.
func NewJWTIssuer(secret, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("token: secret must be at least %d characters", minSecretLength)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL is the lifetime given to new tokens.
func (j *JWTIssuer) TTL() time.Duration {
	return j.ttl
}

// Issue signs a new token for userID.
func (j *JWTIssuer) Issue(userID int64) (string, *ports.Session, error) {
	now := j.now().UTC().Truncate(time.Second)
	session := &ports.Session{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(j.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        session.TokenID,
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		NotBefore: jwt.NewNumericDate(session.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", nil, fmt.Errorf("token: sign: %w", err)
	}
	return signed, session, nil
}

// Parse verifies signature, issuer and expiry and returns the session.
func (j *JWTIssuer) Parse(raw string) (*ports.Session, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID < 0 {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}

	session := &ports.Session{
		TokenID:   claims.ID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}
