package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	lg := NewLogging(testutil.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-grpc error is returned unchanged",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Unknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := &grpc.UnaryServerInfo{FullMethod: "/greengarden.Plants/ListPlants"}
			_, err := lg.HandleGRPC(context.Background(), "req", info, tt.handler)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestLogging_HandleStream(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithFormat(&buf, 0, "json"))

	info := &grpc.StreamServerInfo{FullMethod: "/greengarden.Plants/WatchPlants", IsServerStream: true}
	err := lg.HandleStream(nil, nil, info, func(srv any, stream grpc.ServerStream) error {
		return status.Error(codes.Unavailable, "gone")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, buf.String(), `"method":"/greengarden.Plants/WatchPlants"`)
	assert.Contains(t, buf.String(), `"status":"Unavailable"`)
}
