package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newBufferedServer(t *testing.T) (*GRPCServer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return newGRPCServer("127.0.0.1:0", l, &fakeUsers{}), &buf
}

func TestRequestIDInterceptor_ReusesIncomingID(t *testing.T) {
	s, buf := newBufferedServer(t)

	md := metadata.New(map[string]string{common.RequestIDHeaderName: "req-42"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.AuthenticationService/LoginUser"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		logging.FromContext(ctx, logging.Nop{}).Info(ctx, "inside")
		return "ok", nil
	}

	resp, err := s.requestIDInterceptor(ctx, nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestRequestIDInterceptor_GeneratesID(t *testing.T) {
	s, _ := newBufferedServer(t)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.AuthenticationService/RegisterUser"}

	var scoped logging.Logger
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		scoped = logging.FromContext(ctx, nil)
		return nil, nil
	}

	_, err := s.requestIDInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	require.NotNil(t, scoped, "a request logger must be installed")
}

func TestAccessLogInterceptor_RecordsCode(t *testing.T) {
	s, buf := newBufferedServer(t)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.AuthenticationService/LoginUser"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "user field is required")
	}

	_, err := s.accessLogInterceptor(context.Background(), nil, info, h)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=InvalidArgument")
	assert.Contains(t, out, "method=/users.AuthenticationService/LoginUser")
}
