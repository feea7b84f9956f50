package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/logger"
)

// Logging logs gRPC calls and their results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	l.logger.Debug("gRPC request started", "method", info.FullMethod)

	resp, err := handler(ctx, req)

	l.finish(info.FullMethod, start, err)
	return resp, err
}

// HandleStream logs server streams once they end.
func (l *Logging) HandleStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	l.logger.Debug("gRPC stream started", "method", info.FullMethod)

	err := handler(srv, ss)

	l.finish(info.FullMethod, start, err)
	return err
}

func (l *Logging) finish(method string, start time.Time, err error) {
	code := status.Code(err)

	l.logger.Info("gRPC request completed",
		"method", method,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String())

	if code == codes.Internal || code == codes.Unknown {
		l.logger.Error("gRPC request failed",
			"method", method,
			"error", err.Error(),
			"status", code.String())
	}
}
