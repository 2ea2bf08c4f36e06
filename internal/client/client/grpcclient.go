package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthenticationServiceClient
}

func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec{})),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}

	conn, err := grpc.NewClient(s.endpointURL, append(opts, extra...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthenticationServiceClient(conn)
	return nil
}

// requestIDInterceptor adds a fresh x-request-id unless the caller already
// set one.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, userName string, secret string) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{User: &pb.User{Username: userName, PasswordHash: secret}}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if !resp.HasError() {
		return nil
	}

	switch resp.GetError() {
	case pb.RegisterError_USERNAME_TAKEN:
		return common.ErrUsernameTaken
	default:
		return fmt.Errorf("%w: register error %s", ErrUnexpectedResponse, resp.GetError())
	}
}

// Login returns the session token issued for the user.
func (s *GRPCClient) Login(ctx context.Context, userName string, secret string) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.LoginRequest{User: &pb.User{Username: userName, PasswordHash: secret}}

	resp, err := s.client.LoginUser(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	switch r := resp.GetResult().(type) {
	case *pb.LoginResponse_Token:
		return r.Token, nil
	case *pb.LoginResponse_Error:
		if r.Error == pb.LoginError_INVALID_CREDENTIALS {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: login error %s", ErrUnexpectedResponse, r.Error)
	}

	return "", fmt.Errorf("%w: empty login result", ErrUnexpectedResponse)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
