package models

import "time"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// User is the stored account record. Digest holds the password digest and
// must never leave the server; use Public for anything outward-facing.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Status     Status
	LastActive time.Time
	Digest     []byte
}

// PublicUser is the outward view of a User.
type PublicUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Status     Status    `json:"status"`
	LastActive time.Time `json:"lastActive"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		LastActive: u.LastActive,
	}
}

// Clone returns a copy that shares no mutable state with u.
func (u *User) Clone() *User {
	c := *u
	if u.Digest != nil {
		c.Digest = append([]byte(nil), u.Digest...)
	}
	return &c
}

func (u *User) IsActive() bool {
	return u.Status != StatusInactive
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}
