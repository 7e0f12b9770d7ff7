package grpc

import (
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserRequest struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     models.Role   `json:"role"`
	Status   models.Status `json:"status"`
	Password string        `json:"password"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type UserList struct {
	Users []models.PublicUser `json:"users"`
}

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type PostMessageRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

type SessionList struct {
	Sessions []*models.ChatSession `json:"sessions"`
}

type AddCredentialRequest struct {
	Service string         `json:"service"`
	Details map[string]any `json:"details"`
}

type CredentialList struct {
	Credentials []*models.ServiceCredential `json:"credentials"`
}
