package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[int64]*domain.User
	nextID  int64
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.byID[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id int64, name, roleName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = name
	u.RoleName = roleName
	return nil
}

// ---------------------------------------------------------------------------
// Token issuer and denylist
// ---------------------------------------------------------------------------

// stubTokens issues "tok-<n>-<userID>" strings and remembers their sessions.
type stubTokens struct {
	issued   map[string]*ports.Session
	n        int
	issueErr error
}

func newStubTokens() *stubTokens {
	return &stubTokens{issued: make(map[string]*ports.Session)}
}

func (s *stubTokens) Issue(userID int64) (string, *ports.Session, error) {
	if s.issueErr != nil {
		return "", nil, s.issueErr
	}
	s.n++
	raw := fmt.Sprintf("tok-%d-%d", s.n, userID)
	now := time.Now()
	sess := &ports.Session{
		TokenID:   "jti-" + strconv.Itoa(s.n),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
	s.issued[raw] = sess
	return raw, sess, nil
}

func (s *stubTokens) Parse(raw string) (*ports.Session, error) {
	if !strings.HasPrefix(raw, "tok-") {
		return nil, errors.New("malformed token")
	}
	sess, ok := s.issued[raw]
	if !ok {
		return nil, errors.New("unknown token")
	}
	clone := *sess
	return &clone, nil
}

type stubDenylist struct {
	denied   map[string]time.Duration
	checkErr error
	denyErr  error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{denied: make(map[string]time.Duration)}
}

func (d *stubDenylist) Deny(_ context.Context, tokenID string, ttl time.Duration) error {
	if d.denyErr != nil {
		return d.denyErr
	}
	d.denied[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsDenied(_ context.Context, tokenID string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	_, ok := d.denied[tokenID]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Geolocator
// ---------------------------------------------------------------------------

type stubGeo struct {
	loc    *domain.Location
	err    error
	called []string
}

func (g *stubGeo) Lookup(_ context.Context, ip string) (*domain.Location, error) {
	g.called = append(g.called, ip)
	if g.err != nil {
		return nil, g.err
	}
	return g.loc, nil
}
