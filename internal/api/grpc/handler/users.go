package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// UserService defines profile and account management operations.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (model.User, bool, error)
	Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	UploadProfileImage(ctx context.Context, id uuid.UUID, data []byte) (string, error)
	DeleteProfileImage(ctx context.Context, id uuid.UUID) error
}

// Users handles profile endpoints. Callers may only act on their own account.
type Users struct {
	proto.UnimplementedUsersServer
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUsers(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Users) GetUser(ctx context.Context, req *proto.GetUserRequest) (*proto.GetUserResponse, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	user, found, err := h.userService.Get(ctx, userID)
	if err != nil {
		h.logger.Error("Users handler: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &proto.GetUserResponse{Found: found}
	if found {
		resp.User = convert.UserToProto(user)
	}
	return resp, nil
}

func (h *Users) UpdateUser(ctx context.Context, req *proto.UpdateUserRequest) (*proto.UserResponse, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	user, err := h.userService.Update(ctx, userID, convert.UserPatchFromProto(req.Patch))
	if err != nil {
		h.logger.Info("Users handler: failed to update user",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.UserResponse{User: convert.UserToProto(user)}, nil
}

func (h *Users) UpdateEmail(ctx context.Context, req *proto.UpdateEmailRequest) (*emptypb.Empty, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.UpdateEmail(ctx, userID, req.Email); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Users) UpdatePassword(ctx context.Context, req *proto.UpdatePasswordRequest) (*emptypb.Empty, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.UpdatePassword(ctx, userID, req.Password); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Users) DeleteAccount(ctx context.Context, req *proto.DeleteAccountRequest) (*emptypb.Empty, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.DeleteAccount(ctx, userID); err != nil {
		h.logger.Error("Users handler: failed to delete account",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Users) UploadProfileImage(ctx context.Context, req *proto.UploadProfileImageRequest) (*proto.UploadProfileImageResponse, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	url, err := h.userService.UploadProfileImage(ctx, userID, req.Data)
	if err != nil {
		return nil, handleError(err)
	}
	return &proto.UploadProfileImageResponse{Url: url}, nil
}

func (h *Users) DeleteProfileImage(ctx context.Context, req *proto.DeleteProfileImageRequest) (*emptypb.Empty, error) {
	userID, err := h.self(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.DeleteProfileImage(ctx, userID); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// self resolves the target account of a request. An empty target means the caller.
func (h *Users) self(ctx context.Context, targetID string) (uuid.UUID, error) {
	caller, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user ID not found in context")
	}
	target, err := convert.ParseID(targetID)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}
	if target != uuid.Nil && target != caller {
		h.logger.Warn("Users handler: access to another account denied",
			"user_id", caller,
			"target_id", target)
		return uuid.Nil, handleError(model.ErrPermissionDenied)
	}
	return caller, nil
}
