// Package services exposes the token-gated operations that both transports
// call. Every method except Login and Register takes the caller's bearer
// token, resolves it to an active user and authorizes the operation before
// touching the store. Errors crossing this boundary are sentinels from
// internal/common; anything else is reported as common.ErrorInternal.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/access"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

// Gate resolves tokens to active users and checks access.
type Gate struct {
	auth *auth.Service
	log  logging.Logger
}

func NewGate(a *auth.Service, log logging.Logger) *Gate {
	return &Gate{auth: a, log: log}
}

// Identify resolves token and rejects inactive accounts.
func (g *Gate) Identify(ctx context.Context, token string) (*models.User, error) {
	user, err := g.auth.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return g.auth.RequireActive(user)
}

// Authorize identifies the caller and checks op against targetOwnerID. An
// empty targetOwnerID means the caller's own id.
func (g *Gate) Authorize(ctx context.Context, token string, op access.Operation, targetOwnerID string) (*models.User, error) {
	user, err := g.Identify(ctx, token)
	if err != nil {
		return nil, err
	}
	if targetOwnerID == "" {
		targetOwnerID = user.ID
	}
	if err := access.AuthorizeUser(user, op, targetOwnerID); err != nil {
		g.log.Warn(ctx, "access denied", "user_id", user.ID, "operation", op.String())
		return nil, err
	}
	return user, nil
}

var boundaryErrors = []error{
	common.ErrorInvalidCredentials,
	common.ErrorInvalidToken,
	common.ErrorInactiveUser,
	common.ErrorForbidden,
	common.ErrorNotFound,
	common.ErrorAlreadyExists,
}

// boundary reduces err to one of the taxonomy sentinels. Invalid argument
// errors keep their detail. Unknown errors are logged and replaced with
// common.ErrorInternal.
func boundary(ctx context.Context, log logging.Logger, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorInvalidArgument) {
		return err
	}
	for _, e := range boundaryErrors {
		if errors.Is(err, e) {
			return e
		}
	}
	log.Error(ctx, "unexpected error", "error", err)
	return common.ErrorInternal
}
