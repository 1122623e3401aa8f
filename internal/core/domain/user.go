package domain

import (
	"strings"
	"time"
)

// User models a registered account. ID is the internal sequence number and
// is never rendered directly; the transport layer exposes it through the
// opaque id codec.
type User struct {
	ID           int64     `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleName     string    `json:"role_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
// Addresses differing only in case or surrounding space are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
