// Package chat owns chat session lifecycle and the rule-based responder that
// answers every user message.
package chat

import (
	"context"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/sessions"
	"github.com/google/uuid"
)

// DefaultTitle names sessions created without a title.
const DefaultTitle = "New Chat"

type Engine struct {
	sessions  sessions.Repository
	responder *Responder
	now       func() time.Time
}

// NewEngine wires an Engine. A nil now means time.Now.
func NewEngine(repo sessions.Repository, responder *Responder, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{sessions: repo, responder: responder, now: now}
}

func (e *Engine) CreateSession(ctx context.Context, ownerID, title string) (*models.ChatSession, error) {
	if title == "" {
		title = DefaultTitle
	}
	now := e.now()
	return e.sessions.Create(ctx, &models.ChatSession{
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []models.Message{},
	})
}

func (e *Engine) ListSessions(ctx context.Context, ownerID string) ([]*models.ChatSession, error) {
	return e.sessions.ListByOwner(ctx, ownerID)
}

func (e *Engine) GetSession(ctx context.Context, id, ownerID string) (*models.ChatSession, error) {
	return e.sessions.Get(ctx, id, ownerID)
}

// PostMessage appends the user's message and the bot reply in one step and
// returns the user's message. The reply is visible through GetSession.
func (e *Engine) PostMessage(ctx context.Context, id, ownerID, text string) (*models.Message, error) {
	now := e.now()

	userMsg := models.Message{
		ID:        uuid.NewString(),
		AuthorID:  ownerID,
		Content:   text,
		Timestamp: now,
		Kind:      models.MessageKindUser,
	}
	botMsg := models.Message{
		ID:        uuid.NewString(),
		AuthorID:  common.SystemAuthorID,
		Content:   e.responder.Respond(text),
		Timestamp: now,
		Kind:      models.MessageKindBot,
	}

	if _, err := e.sessions.AppendMessages(ctx, id, ownerID, now, userMsg, botMsg); err != nil {
		return nil, err
	}

	return &userMsg, nil
}
