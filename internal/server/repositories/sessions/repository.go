package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// Repository stores chat sessions with their messages. Lookups scoped by
// owner report common.ErrorNotFound when the session belongs to someone else.
type Repository interface {
	Create(ctx context.Context, session *models.ChatSession) (*models.ChatSession, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.ChatSession, error)
	Get(ctx context.Context, id, ownerID string) (*models.ChatSession, error)
	AppendMessages(ctx context.Context, id, ownerID string, now time.Time, msgs ...models.Message) (*models.ChatSession, error)
}
