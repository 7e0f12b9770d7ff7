package grpc

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/services"
)

var _ OpsBotServer = (*GRPCServer)(nil)

func (s *GRPCServer) Ping(ctx context.Context, req *Empty) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *LoginRequest) (*models.LoginResult, error) {
	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return res, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *UserRequest) (*models.PublicUser, error) {
	u, err := s.users.Register(ctx, newUser(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *Empty) (*models.PublicUser, error) {
	u, err := s.users.Me(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *Empty) (*UserList, error) {
	list, err := s.users.ListUsers(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &UserList{Users: list}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *IDRequest) (*models.PublicUser, error) {
	u, err := s.users.GetUser(ctx, tokenFromContext(ctx), req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *UserRequest) (*models.PublicUser, error) {
	u, err := s.users.CreateUser(ctx, tokenFromContext(ctx), newUser(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *IDRequest) (*Empty, error) {
	if err := s.users.DeleteUser(ctx, tokenFromContext(ctx), req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &Empty{}, nil
}

func (s *GRPCServer) ToggleUserStatus(ctx context.Context, req *IDRequest) (*models.PublicUser, error) {
	u, err := s.users.ToggleUserStatus(ctx, tokenFromContext(ctx), req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) ListSessions(ctx context.Context, req *Empty) (*SessionList, error) {
	list, err := s.chat.ListSessions(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &SessionList{Sessions: list}, nil
}

func (s *GRPCServer) CreateSession(ctx context.Context, req *CreateSessionRequest) (*models.ChatSession, error) {
	session, err := s.chat.CreateSession(ctx, tokenFromContext(ctx), req.Title)
	if err != nil {
		return nil, toStatus(err)
	}
	return session, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, req *IDRequest) (*models.ChatSession, error) {
	session, err := s.chat.GetSession(ctx, tokenFromContext(ctx), req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return session, nil
}

func (s *GRPCServer) PostMessage(ctx context.Context, req *PostMessageRequest) (*models.Message, error) {
	msg, err := s.chat.PostMessage(ctx, tokenFromContext(ctx), req.SessionID, req.Content)
	if err != nil {
		return nil, toStatus(err)
	}
	return msg, nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, req *Empty) (*CredentialList, error) {
	list, err := s.credentials.List(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &CredentialList{Credentials: list}, nil
}

func (s *GRPCServer) AddCredential(ctx context.Context, req *AddCredentialRequest) (*models.ServiceCredential, error) {
	cred, err := s.credentials.Add(ctx, tokenFromContext(ctx), req.Service, req.Details)
	if err != nil {
		return nil, toStatus(err)
	}
	return cred, nil
}

func (s *GRPCServer) DeleteCredential(ctx context.Context, req *IDRequest) (*Empty, error) {
	if err := s.credentials.Delete(ctx, tokenFromContext(ctx), req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &Empty{}, nil
}

func (s *GRPCServer) GetAnalytics(ctx context.Context, req *Empty) (*models.Analytics, error) {
	a, err := s.analytics.Get(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return a, nil
}

func newUser(req *UserRequest) services.NewUser {
	return services.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
		Password: req.Password,
	}
}
