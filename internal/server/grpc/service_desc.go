package grpc

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"google.golang.org/grpc"
)

const serviceName = "opsbot.v1.OpsBot"

// OpsBotServer is the server API of the opsbot.v1.OpsBot service.
type OpsBotServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*models.LoginResult, error)
	Register(context.Context, *UserRequest) (*models.PublicUser, error)

	Me(context.Context, *Empty) (*models.PublicUser, error)
	ListUsers(context.Context, *Empty) (*UserList, error)
	GetUser(context.Context, *IDRequest) (*models.PublicUser, error)
	CreateUser(context.Context, *UserRequest) (*models.PublicUser, error)
	DeleteUser(context.Context, *IDRequest) (*Empty, error)
	ToggleUserStatus(context.Context, *IDRequest) (*models.PublicUser, error)

	ListSessions(context.Context, *Empty) (*SessionList, error)
	CreateSession(context.Context, *CreateSessionRequest) (*models.ChatSession, error)
	GetSession(context.Context, *IDRequest) (*models.ChatSession, error)
	PostMessage(context.Context, *PostMessageRequest) (*models.Message, error)

	ListCredentials(context.Context, *Empty) (*CredentialList, error)
	AddCredential(context.Context, *AddCredentialRequest) (*models.ServiceCredential, error)
	DeleteCredential(context.Context, *IDRequest) (*Empty, error)

	GetAnalytics(context.Context, *Empty) (*models.Analytics, error)
}

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

// unary adapts a typed method to grpc.MethodDesc, decoding into a fresh Req
// and running the server interceptor chain when one is installed.
func unary[Req, Resp any](name string, call func(OpsBotServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(OpsBotServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(OpsBotServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// OpsBotServiceDesc describes opsbot.v1.OpsBot for grpc.Server.RegisterService.
var OpsBotServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*OpsBotServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", OpsBotServer.Ping),
		unary("Login", OpsBotServer.Login),
		unary("Register", OpsBotServer.Register),
		unary("Me", OpsBotServer.Me),
		unary("ListUsers", OpsBotServer.ListUsers),
		unary("GetUser", OpsBotServer.GetUser),
		unary("CreateUser", OpsBotServer.CreateUser),
		unary("DeleteUser", OpsBotServer.DeleteUser),
		unary("ToggleUserStatus", OpsBotServer.ToggleUserStatus),
		unary("ListSessions", OpsBotServer.ListSessions),
		unary("CreateSession", OpsBotServer.CreateSession),
		unary("GetSession", OpsBotServer.GetSession),
		unary("PostMessage", OpsBotServer.PostMessage),
		unary("ListCredentials", OpsBotServer.ListCredentials),
		unary("AddCredential", OpsBotServer.AddCredential),
		unary("DeleteCredential", OpsBotServer.DeleteCredential),
		unary("GetAnalytics", OpsBotServer.GetAnalytics),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "opsbot/v1/opsbot",
}

// RegisterOpsBotServer registers srv on s.
func RegisterOpsBotServer(s grpc.ServiceRegistrar, srv OpsBotServer) {
	s.RegisterService(&OpsBotServiceDesc, srv)
}
