package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// Repository stores user accounts. Email is unique and matched exactly.
// Implementations return copies, never their internal records.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*models.User, error)
	TouchLastActive(ctx context.Context, id string, now time.Time) (*models.User, error)
}
