package models

import "time"

type MessageKind string

const (
	MessageKindUser MessageKind = "user"
	MessageKindBot  MessageKind = "bot"
)

// Message is immutable once appended. AuthorID is a user id or
// common.SystemAuthorID for bot replies.
type Message struct {
	ID        string      `json:"id"`
	AuthorID  string      `json:"user_id"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Kind      MessageKind `json:"type"`
}

type ChatSession struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `json:"messages"`
}

// Clone copies the session and its message slice.
func (s *ChatSession) Clone() *ChatSession {
	c := *s
	c.Messages = make([]Message, len(s.Messages))
	copy(c.Messages, s.Messages)
	return &c
}
