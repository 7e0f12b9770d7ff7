package credentials

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	creds map[string]*models.ServiceCredential
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{creds: make(map[string]*models.ServiceCredential)}
}

func (r *MemoryRepository) Create(ctx context.Context, cred *models.ServiceCredential) (*models.ServiceCredential, error) {
	c := cred.Clone()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.creds[c.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.creds[c.ID] = c
	r.order = append(r.order, c.ID)

	return c.Clone(), nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.ServiceCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ServiceCredential, 0)
	for _, id := range r.order {
		if c := r.creds[id]; c.OwnerID == ownerID {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, ownerID string) (*models.ServiceCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.creds[id]
	if !ok || c.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return c.Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.creds[id]
	if !ok || c.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	delete(r.creds, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
