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

	grpcctx "github.com/greengarden/greengarden-server/internal/api/grpc/context"
	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
	"github.com/greengarden/greengarden-server/proto"
)

func authedContext(userID uuid.UUID) context.Context {
	return grpcctx.NewManager().SetUserIDToContext(context.Background(), userID)
}

func TestUsers_GetUser(t *testing.T) {
	t.Parallel()

	self := uuid.New()

	tests := []struct {
		name      string
		ctx       context.Context
		target    string
		setup     func(svc *mocks.UserService)
		wantCode  codes.Code
		wantFound bool
	}{
		{
			name:   "own profile by empty id",
			ctx:    authedContext(self),
			target: "",
			setup: func(svc *mocks.UserService) {
				svc.On("Get", mock.Anything, self).Return(model.User{ID: self, Username: "fern"}, true, nil)
			},
			wantCode:  codes.OK,
			wantFound: true,
		},
		{
			name:   "missing profile",
			ctx:    authedContext(self),
			target: self.String(),
			setup: func(svc *mocks.UserService) {
				svc.On("Get", mock.Anything, self).Return(model.User{}, false, nil)
			},
			wantCode: codes.OK,
		},
		{
			name:     "someone else",
			ctx:      authedContext(self),
			target:   uuid.NewString(),
			wantCode: codes.PermissionDenied,
		},
		{
			name:     "malformed id",
			ctx:      authedContext(self),
			target:   "fern",
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "no caller",
			ctx:      context.Background(),
			target:   self.String(),
			wantCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewUserService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			h := NewUsers(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())
			out, err := h.GetUser(tt.ctx, &proto.GetUserRequest{UserId: tt.target})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				require.NotNil(t, out)
				assert.Equal(t, tt.wantFound, out.Found)
				if tt.wantFound {
					assert.Equal(t, self.String(), out.User.GetId())
				} else {
					assert.Nil(t, out.User)
				}
			}
		})
	}
}

func TestUsers_UpdateUser(t *testing.T) {
	t.Parallel()

	self := uuid.New()
	name := "fern"
	patch := model.UserPatch{Username: &name}

	svc := mocks.NewUserService(t)
	svc.On("Update", mock.Anything, self, patch).Return(model.User{ID: self, Username: name}, nil)

	h := NewUsers(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())
	out, err := h.UpdateUser(authedContext(self), &proto.UpdateUserRequest{
		UserId: self.String(),
		Patch:  &proto.UserPatch{Username: &name},
	})
	require.NoError(t, err)
	assert.Equal(t, name, out.User.Username)
}

func TestUsers_IdentityCalls(t *testing.T) {
	t.Parallel()

	self := uuid.New()
	ctx := authedContext(self)

	svc := mocks.NewUserService(t)
	svc.On("UpdateEmail", mock.Anything, self, "new@example.com").Return(model.ErrEmailTaken)
	svc.On("UpdatePassword", mock.Anything, self, "secret2").Return(nil)
	svc.On("DeleteAccount", mock.Anything, self).Return(nil)

	h := NewUsers(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())

	_, err := h.UpdateEmail(ctx, &proto.UpdateEmailRequest{Email: "new@example.com"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = h.UpdatePassword(ctx, &proto.UpdatePasswordRequest{Password: "secret2"})
	assert.NoError(t, err)

	_, err = h.DeleteAccount(ctx, &proto.DeleteAccountRequest{UserId: self.String()})
	assert.NoError(t, err)
}

func TestUsers_ProfileImage(t *testing.T) {
	t.Parallel()

	self := uuid.New()
	ctx := authedContext(self)
	data := []byte{0xff, 0xd8, 0xff}

	svc := mocks.NewUserService(t)
	svc.On("UploadProfileImage", mock.Anything, self, data).Return("http://localhost:8080/images/profileImages/x.jpg", nil)
	svc.On("DeleteProfileImage", mock.Anything, self).Return(nil)

	h := NewUsers(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())

	out, err := h.UploadProfileImage(ctx, &proto.UploadProfileImageRequest{Data: data})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/profileImages/x.jpg", out.Url)

	_, err = h.DeleteProfileImage(ctx, &proto.DeleteProfileImageRequest{})
	assert.NoError(t, err)

	_, err = h.DeleteProfileImage(ctx, &proto.DeleteProfileImageRequest{UserId: uuid.NewString()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
