package services

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/access"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/chat"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// ChatService scopes every operation to the caller's own sessions. A
// session owned by anyone else, admins included, reads as not found.
type ChatService struct {
	engine *chat.Engine
	gate   *Gate
	log    logging.Logger
}

func NewChatService(engine *chat.Engine, a *auth.Service, log logging.Logger) *ChatService {
	return &ChatService{engine: engine, gate: NewGate(a, log), log: log}
}

func (s *ChatService) ListSessions(ctx context.Context, token string) ([]*models.ChatSession, error) {
	user, err := s.gate.Authorize(ctx, token, access.ReadSession, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	list, err := s.engine.ListSessions(ctx, user.ID)
	return list, boundary(ctx, s.log, err)
}

func (s *ChatService) CreateSession(ctx context.Context, token, title string) (*models.ChatSession, error) {
	user, err := s.gate.Authorize(ctx, token, access.WriteSession, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	session, err := s.engine.CreateSession(ctx, user.ID, title)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	s.log.Debug(ctx, "chat session created", "user_id", user.ID, "session_id", session.ID)
	return session, nil
}

func (s *ChatService) GetSession(ctx context.Context, token, id string) (*models.ChatSession, error) {
	user, err := s.gate.Authorize(ctx, token, access.ReadSession, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	session, err := s.engine.GetSession(ctx, id, user.ID)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	return session, nil
}

// PostMessage appends content and the bot reply, returning only the
// caller's message.
func (s *ChatService) PostMessage(ctx context.Context, token, id, content string) (*models.Message, error) {
	user, err := s.gate.Authorize(ctx, token, access.WriteSession, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	msg, err := s.engine.PostMessage(ctx, id, user.ID, content)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	return msg, nil
}
