// Package access decides whether an authenticated actor may perform an
// operation. It holds no state.
package access

import (
	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

type Operation int

const (
	// ReadProfile reads a user's public view.
	ReadProfile Operation = iota
	// Administrative operations.
	ListUsers
	CreateUser
	DeleteUser
	ToggleUserStatus
	ViewAnalytics
	// Owner-only operations on chat sessions and credentials.
	ReadSession
	WriteSession
	ReadCredential
	WriteCredential
)

var operationNames = map[Operation]string{
	ReadProfile:      "read_profile",
	ListUsers:        "list_users",
	CreateUser:       "create_user",
	DeleteUser:       "delete_user",
	ToggleUserStatus: "toggle_user_status",
	ViewAnalytics:    "view_analytics",
	ReadSession:      "read_session",
	WriteSession:     "write_session",
	ReadCredential:   "read_credential",
	WriteCredential:  "write_credential",
}

func (o Operation) String() string {
	if n, ok := operationNames[o]; ok {
		return n
	}
	return "unknown"
}

func (o Operation) administrative() bool {
	switch o {
	case ListUsers, CreateUser, DeleteUser, ToggleUserStatus, ViewAnalytics:
		return true
	}
	return false
}

// Authorize returns nil when actor may perform op on a resource owned by
// targetOwnerID, and common.ErrorForbidden otherwise. Pass an empty
// targetOwnerID for operations that have no single owner.
//
// Rules, first match wins:
//  1. self access to profile, sessions and credentials is allowed;
//  2. administrative operations, and reading another user's profile,
//     require the Admin role;
//  3. sessions and credentials of another user are denied even to Admin.
func Authorize(actorRole models.Role, actorID string, op Operation, targetOwnerID string) error {
	if actorID != "" && actorID == targetOwnerID && !op.administrative() {
		return nil
	}

	if op.administrative() || op == ReadProfile {
		if actorRole == models.RoleAdmin {
			return nil
		}
		return common.ErrorForbidden
	}

	return common.ErrorForbidden
}

// AuthorizeUser is Authorize for a resolved user.
func AuthorizeUser(actor *models.User, op Operation, targetOwnerID string) error {
	return Authorize(actor.Role, actor.ID, op, targetOwnerID)
}
