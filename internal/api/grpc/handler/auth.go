package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/greengarden/greengarden-server/internal/api/grpc/convert"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// AuthService defines sign-up and session operations.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (model.Session, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// SignUp creates an account and its profile.
func (h *Auth) SignUp(ctx context.Context, req *proto.SignUpRequest) (*proto.SignUpResponse, error) {
	h.logger.Debug("Auth handler: processing sign up request", "email", req.Email)

	userID, err := h.authService.SignUp(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: sign up failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.SignUpResponse{UserId: userID.String()}, nil
}

// Login authenticates with email and password.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.SessionResponse, error) {
	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	session, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return sessionResponse(session), nil
}

// Logout revokes the presented refresh token.
func (h *Auth) Logout(ctx context.Context, req *proto.LogoutRequest) (*emptypb.Empty, error) {
	if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed", "error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// Refresh rotates the session tokens.
func (h *Auth) Refresh(ctx context.Context, req *proto.RefreshRequest) (*proto.SessionResponse, error) {
	session, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Info("Auth handler: refresh failed", "error", err.Error())
		return nil, handleError(err)
	}
	return sessionResponse(session), nil
}

func sessionResponse(s model.Session) *proto.SessionResponse {
	return &proto.SessionResponse{
		UserId:       convert.IDString(s.UserID),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
}
