// Package auth authenticates credentials and issues and resolves bearer
// tokens. A token is valid while its signature checks out, it has not
// expired, and its subject still names an existing user.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/cryptox"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/users"
)

// DefaultTokenTTL applies when a zero ttl is requested.
const DefaultTokenTTL = 30 * time.Minute

type Service struct {
	users      users.Repository
	secret     cryptox.ServerSecret
	defaultTTL time.Duration
	now        func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds the auth service. A non-positive defaultTTL falls back to
// DefaultTokenTTL.
func NewService(repo users.Repository, secret cryptox.ServerSecret, defaultTTL time.Duration, opts ...Option) *Service {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	s := &Service{users: repo, secret: secret, defaultTTL: defaultTTL, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now reports the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Digest returns the stored form of a plaintext password.
func (s *Service) Digest(password string) []byte {
	return cryptox.Digest(password, s.secret)
}

// Authenticate checks email and password. An unknown email and a wrong
// password both yield common.ErrorInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keep timing close to the wrong-password path
			_ = s.Digest(password)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.Verify(password, s.secret, user.Digest) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a token for email valid for ttl, or for the default ttl
// when ttl is zero.
func (s *Service) IssueToken(email string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	return IssueToken(email, s.secret, ttl, s.now())
}

// ResolveToken returns the user named by token and records the access in
// the user's LastActive. Any failure is common.ErrorInvalidToken.
func (s *Service) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	now := s.now()

	email, err := ParseToken(token, s.secret, now)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	touched, err := s.users.TouchLastActive(ctx, user.ID, now)
	if err != nil {
		// deleted between lookup and touch
		return nil, common.ErrorInvalidToken
	}

	return touched, nil
}

// RequireActive rejects users whose status is Inactive.
func (s *Service) RequireActive(user *models.User) (*models.User, error) {
	if !user.IsActive() {
		return nil, common.ErrorInactiveUser
	}
	return user, nil
}
