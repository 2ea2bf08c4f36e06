package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// requestIDInterceptor tags every call with a request id. The caller's
// x-request-id is reused when present, otherwise a new UUID is generated. The
// id is echoed in the response header and attached to the request logger.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.RequestIDHeaderName)
		if len(values) > 0 {
			requestID = values[0]
		}
	}
	if len(requestID) == 0 {
		requestID = uuid.NewString()
	}

	log := s.logger.With("request_id", requestID)

	if err := grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID)); err != nil {
		log.Debug(ctx, "cannot set response header", "error", err)
	}

	return handler(logging.IntoContext(ctx, log), req)
}

// accessLogInterceptor writes one record per call with its outcome.
func (s *GRPCServer) accessLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}

	log := logging.FromContext(ctx, s.logger)
	switch code {
	case codes.OK:
		log.Info(ctx, "rpc", args...)
	case codes.Internal, codes.Unknown:
		log.Error(ctx, "rpc", args...)
	default:
		log.Warn(ctx, "rpc", args...)
	}

	return resp, err
}
