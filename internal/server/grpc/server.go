package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address     string
	users       *services.UserService
	chat        *services.ChatService
	credentials *services.CredentialService
	analytics   *services.AnalyticsService
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, cs *services.ChatService,
	crs *services.CredentialService, as *services.AnalyticsService) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		chat:        cs,
		credentials: crs,
		analytics:   as,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	return s.serve(ctx, listen)
}

// serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	RegisterOpsBotServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
