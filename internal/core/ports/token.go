package ports

import (
	"context"
	"time"
)

// Session is the decoded content of a valid bearer token.
type Session struct {
	TokenID   string
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(userID int64) (string, *Session, error)
	Parse(token string) (*Session, error)
}

// TokenDenylist records tokens invalidated before their natural expiry.
// Implementations must be shared by every instance of the service.
type TokenDenylist interface {
	Deny(ctx context.Context, tokenID string, ttl time.Duration) error
	IsDenied(ctx context.Context, tokenID string) (bool, error)
}
