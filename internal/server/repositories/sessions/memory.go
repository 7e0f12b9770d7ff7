package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
	order    []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]*models.ChatSession)}
}

func (r *MemoryRepository) Create(ctx context.Context, session *models.ChatSession) (*models.ChatSession, error) {
	s := session.Clone()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	for i := range s.Messages {
		if s.Messages[i].ID == "" {
			s.Messages[i].ID = uuid.NewString()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)

	return s.Clone(), nil
}

// ListByOwner returns the owner's sessions in creation order.
func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ChatSession, 0)
	for _, id := range r.order {
		if s := r.sessions[id]; s.OwnerID == ownerID {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id, ownerID string) (*models.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return s.Clone(), nil
}

// AppendMessages appends msgs in order and sets UpdatedAt to now. Either all
// messages are appended or, on error, none are.
func (r *MemoryRepository) AppendMessages(ctx context.Context, id, ownerID string, now time.Time, msgs ...models.Message) (*models.ChatSession, error) {
	batch := make([]models.Message, len(msgs))
	copy(batch, msgs)
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = uuid.NewString()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	s.Messages = append(s.Messages, batch...)
	s.UpdatedAt = now

	return s.Clone(), nil
}
