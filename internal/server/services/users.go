package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/access"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/repomanager"
)

// NewUser is the input of Register and CreateUser. Empty Role defaults to
// User and empty Status to Active; other values are stored as given.
type NewUser struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     models.Role   `json:"role"`
	Status   models.Status `json:"status"`
	Password string        `json:"password"`
}

// UserService covers login, registration and user administration.
type UserService struct {
	repomanager repomanager.RepositoryManager
	auth        *auth.Service
	gate        *Gate
	log         logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, a *auth.Service, log logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		auth:        a,
		gate:        NewGate(a, log),
		log:         log,
	}
}

// Login authenticates email and password and issues a token with the
// default ttl. Inactive accounts are refused only after the password
// matches, so a wrong password never reveals account state.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			s.log.Warn(ctx, "login failed", "email", email)
		}
		return nil, boundary(ctx, s.log, err)
	}

	if _, err := s.auth.RequireActive(user); err != nil {
		s.log.Warn(ctx, "login refused for inactive user", "user_id", user.ID)
		return nil, err
	}

	token, err := s.auth.IssueToken(user.Email, 0)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	if _, err := s.repomanager.Users().TouchLastActive(ctx, user.ID, s.auth.Now()); err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)

	return &models.LoginResult{
		AccessToken: token,
		TokenType:   common.TokenType,
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

// Register creates an account without authentication.
func (s *UserService) Register(ctx context.Context, req NewUser) (*models.PublicUser, error) {
	u, err := s.create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", u.ID, "role", string(u.Role))
	return u, nil
}

// Me returns the caller's own profile.
func (s *UserService) Me(ctx context.Context, token string) (*models.PublicUser, error) {
	user, err := s.gate.Authorize(ctx, token, access.ReadProfile, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	pub := user.Public()
	return &pub, nil
}

// GetUser returns a profile. Only admins may read other users.
func (s *UserService) GetUser(ctx context.Context, token, id string) (*models.PublicUser, error) {
	if _, err := s.gate.Authorize(ctx, token, access.ReadProfile, id); err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	user, err := s.repomanager.Users().GetByID(ctx, id)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	pub := user.Public()
	return &pub, nil
}

// ListUsers returns every user in creation order.
func (s *UserService) ListUsers(ctx context.Context, token string) ([]models.PublicUser, error) {
	if _, err := s.gate.Authorize(ctx, token, access.ListUsers, ""); err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	all, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	out := make([]models.PublicUser, 0, len(all))
	for _, u := range all {
		out = append(out, u.Public())
	}
	return out, nil
}

// CreateUser is Register performed by an admin.
func (s *UserService) CreateUser(ctx context.Context, token string, req NewUser) (*models.PublicUser, error) {
	admin, err := s.gate.Authorize(ctx, token, access.CreateUser, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	u, err := s.create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "user_id", u.ID, "by", admin.ID)
	return u, nil
}

// DeleteUser removes a user. Sessions and credentials owned by the user are
// left in place and become unreachable.
func (s *UserService) DeleteUser(ctx context.Context, token, id string) error {
	admin, err := s.gate.Authorize(ctx, token, access.DeleteUser, id)
	if err != nil {
		return boundary(ctx, s.log, err)
	}

	if err := s.repomanager.Users().Delete(ctx, id); err != nil {
		return boundary(ctx, s.log, err)
	}
	s.log.Info(ctx, "user deleted", "user_id", id, "by", admin.ID)
	return nil
}

// ToggleUserStatus flips Active and Inactive and returns the updated user.
func (s *UserService) ToggleUserStatus(ctx context.Context, token, id string) (*models.PublicUser, error) {
	admin, err := s.gate.Authorize(ctx, token, access.ToggleUserStatus, id)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	user, err := s.repomanager.Users().ToggleStatus(ctx, id)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	s.log.Info(ctx, "user status toggled", "user_id", id, "status", string(user.Status), "by", admin.ID)

	pub := user.Public()
	return &pub, nil
}

func (s *UserService) create(ctx context.Context, req NewUser) (*models.PublicUser, error) {
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Status == "" {
		req.Status = models.StatusActive
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Status:     req.Status,
		LastActive: s.auth.Now(),
		Digest:     s.auth.Digest(req.Password),
	}

	created, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.log.Warn(ctx, "duplicate email rejected", "email", req.Email)
		}
		return nil, boundary(ctx, s.log, err)
	}

	pub := created.Public()
	return &pub, nil
}
