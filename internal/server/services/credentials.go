package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/access"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/repomanager"
	"google.golang.org/protobuf/types/known/structpb"
)

// CredentialService manages the caller's own service credentials.
type CredentialService struct {
	repomanager repomanager.RepositoryManager
	auth        *auth.Service
	gate        *Gate
	log         logging.Logger
}

func NewCredentialService(m repomanager.RepositoryManager, a *auth.Service, log logging.Logger) *CredentialService {
	return &CredentialService{repomanager: m, auth: a, gate: NewGate(a, log), log: log}
}

func (s *CredentialService) List(ctx context.Context, token string) ([]*models.ServiceCredential, error) {
	user, err := s.gate.Authorize(ctx, token, access.ReadCredential, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	list, err := s.repomanager.Credentials().ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	return list, nil
}

// Add stores details for service. Details are copied into plain JSON values
// first; anything without a JSON form is rejected.
func (s *CredentialService) Add(ctx context.Context, token, service string, details map[string]any) (*models.ServiceCredential, error) {
	user, err := s.gate.Authorize(ctx, token, access.WriteCredential, "")
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	normalized, err := normalizeDetails(details)
	if err != nil {
		return nil, err
	}

	now := s.auth.Now()
	cred, err := s.repomanager.Credentials().Create(ctx, &models.ServiceCredential{
		OwnerID:   user.ID,
		Service:   service,
		Details:   normalized,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, boundary(ctx, s.log, err)
	}

	s.log.Info(ctx, "credential added", "user_id", user.ID, "service", service)
	return cred, nil
}

func (s *CredentialService) Delete(ctx context.Context, token, id string) error {
	user, err := s.gate.Authorize(ctx, token, access.WriteCredential, "")
	if err != nil {
		return boundary(ctx, s.log, err)
	}
	if err := s.repomanager.Credentials().Delete(ctx, id, user.ID); err != nil {
		return boundary(ctx, s.log, err)
	}
	s.log.Info(ctx, "credential deleted", "user_id", user.ID, "credential_id", id)
	return nil
}

// normalizeDetails deep-copies details through structpb, which accepts only
// JSON-representable values. Integers come back as float64.
func normalizeDetails(details map[string]any) (map[string]any, error) {
	st, err := structpb.NewStruct(details)
	if err != nil {
		return nil, fmt.Errorf("details: %v: %w", err, common.ErrorInvalidArgument)
	}
	return st.AsMap(), nil
}
