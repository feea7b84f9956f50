package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
	"github.com/greengarden/greengarden-server/proto"
)

func TestAuth_SignUp(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name     string
		svcID    uuid.UUID
		svcErr   error
		wantCode codes.Code
	}{
		{name: "created", svcID: userID, wantCode: codes.OK},
		{name: "email taken", svcErr: model.ErrEmailTaken, wantCode: codes.AlreadyExists},
		{name: "short password", svcErr: model.NewValidationError("password", "too short"), wantCode: codes.InvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("SignUp", mock.Anything, "fern", "fern@example.com", "secret1").Return(tt.svcID, tt.svcErr)

			h := NewAuth(svc, testutil.MakeNoopLogger())
			out, err := h.SignUp(context.Background(), &proto.SignUpRequest{Username: "fern", Email: "fern@example.com", Password: "secret1"})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				require.NotNil(t, out)
				assert.Equal(t, userID.String(), out.UserId)
			} else {
				assert.Nil(t, out)
			}
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	userID := uuid.New()
	svc.On("Login", mock.Anything, "fern@example.com", "secret1").
		Return(model.Session{UserID: userID, AccessToken: "acc", RefreshToken: "ref"}, nil)
	svc.On("Login", mock.Anything, "fern@example.com", "wrong").
		Return(model.Session{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	out, err := h.Login(context.Background(), &proto.LoginRequest{Email: "fern@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), out.UserId)
	assert.Equal(t, "acc", out.AccessToken)
	assert.Equal(t, "ref", out.RefreshToken)

	_, err = h.Login(context.Background(), &proto.LoginRequest{Email: "fern@example.com", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_LogoutAndRefresh(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Logout", mock.Anything, "ref").Return(nil)
	svc.On("Refresh", mock.Anything, "ref").Return(model.Session{}, model.ErrTokenRevoked)

	h := NewAuth(svc, testutil.MakeNoopLogger())

	out, err := h.Logout(context.Background(), &proto.LogoutRequest{RefreshToken: "ref"})
	require.NoError(t, err)
	assert.NotNil(t, out)

	_, err = h.Refresh(context.Background(), &proto.RefreshRequest{RefreshToken: "ref"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
