package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// SeedAdmin creates an Admin account unless a user with email already
// exists. It reports whether a user was created.
func (s *UserService) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	_, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err == nil {
		s.log.Info(ctx, "admin already present", "email", email)
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	u, err := s.create(ctx, NewUser{
		Name:     name,
		Email:    email,
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
		Password: password,
	})
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	s.log.Info(ctx, "admin seeded", "user_id", u.ID, "email", email)
	return true, nil
}

// DemoUsers are the sample accounts seeded by SeedDemo.
var DemoUsers = []NewUser{
	{Name: "John Doe", Email: "john@example.com", Role: models.RoleAdmin, Status: models.StatusActive},
	{Name: "Jane Smith", Email: "jane@example.com", Role: models.RoleUser, Status: models.StatusActive},
	{Name: "Robert Johnson", Email: "robert@example.com", Role: models.RoleUser, Status: models.StatusInactive},
	{Name: "Sarah Williams", Email: "sarah@example.com", Role: models.RoleUser, Status: models.StatusActive},
	{Name: "Michael Brown", Email: "michael@example.com", Role: models.RoleUser, Status: models.StatusActive},
}

// SeedDemo inserts DemoUsers, all sharing password. Accounts whose email is
// already taken are skipped. It returns the number of users created.
func (s *UserService) SeedDemo(ctx context.Context, password string) (int, error) {
	n := 0
	for _, d := range DemoUsers {
		d.Password = password
		if _, err := s.create(ctx, d); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				continue
			}
			return n, err
		}
		n++
	}
	s.log.Info(ctx, "demo users seeded", "count", n)
	return n, nil
}
