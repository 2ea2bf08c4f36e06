// Package grpc is the RPC front end of the credential service. It decodes
// AuthenticationService calls, dispatches them to the authenticator and maps
// the outcome back onto the wire.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/users"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// userSvc is the subset of users.Authenticator the handlers need.
type userSvc interface {
	Register(ctx context.Context, user *users.User) error
	Login(ctx context.Context, user *users.User) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthenticationServiceServer
	address string
	users   userSvc
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us *users.Authenticator) *GRPCServer {
	return newGRPCServer(a, l, us)
}

func newGRPCServer(a string, l logging.Logger, us userSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		health:  health.NewServer(),
	}
}

// newServer creates the grpc.Server with the codec, interceptors and
// services installed.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.accessLogInterceptor),
	)

	pb.RegisterAuthenticationServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on an existing listener. It is split from Run so tests can
// supply an in-memory listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.AuthenticationService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
