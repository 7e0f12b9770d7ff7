package credentials

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// Repository stores service credentials. Owner-scoped lookups report
// common.ErrorNotFound for credentials owned by someone else.
type Repository interface {
	Create(ctx context.Context, cred *models.ServiceCredential) (*models.ServiceCredential, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.ServiceCredential, error)
	Get(ctx context.Context, id, ownerID string) (*models.ServiceCredential, error)
	Delete(ctx context.Context, id, ownerID string) error
}
