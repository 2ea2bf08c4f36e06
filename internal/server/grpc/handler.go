package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/users"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain outcomes (taken username, bad credentials) travel inside a
// successful response. Only a request without a user is rejected through the
// gRPC status channel.

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	user := toUser(req.GetUser())
	if user == nil {
		logging.FromContext(ctx, s.logger).Warn(ctx, "register rejected: missing user")
		return nil, status.Error(codes.InvalidArgument, common.ErrUserRequired.Error())
	}

	err := s.users.Register(ctx, user)
	switch {
	case err == nil:
		return &pb.RegisterResponse{}, nil
	case errors.Is(err, common.ErrUsernameTaken):
		return &pb.RegisterResponse{Error: pb.RegisterError_USERNAME_TAKEN.Enum()}, nil
	default:
		return nil, s.internalError(ctx, err)
	}
}

func (s *GRPCServer) LoginUser(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user := toUser(req.GetUser())
	if user == nil {
		logging.FromContext(ctx, s.logger).Warn(ctx, "login rejected: missing user")
		return nil, status.Error(codes.InvalidArgument, common.ErrUserRequired.Error())
	}

	token, err := s.users.Login(ctx, user)
	switch {
	case err == nil:
		return &pb.LoginResponse{Result: &pb.LoginResponse_Token{Token: token}}, nil
	case errors.Is(err, common.ErrInvalidCredentials):
		return &pb.LoginResponse{Result: &pb.LoginResponse_Error{Error: pb.LoginError_INVALID_CREDENTIALS}}, nil
	default:
		return nil, s.internalError(ctx, err)
	}
}

func (s *GRPCServer) internalError(ctx context.Context, err error) error {
	logging.FromContext(ctx, s.logger).Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toUser(u *pb.User) *users.User {
	if u == nil {
		return nil
	}
	return &users.User{Username: u.GetUsername(), Secret: u.GetPasswordHash()}
}
