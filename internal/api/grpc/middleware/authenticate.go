package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the bearer token from the authorization metadata and returns a context carrying the user ID.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer "))
		}
	}

	userID, err := m.authenticateUser(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return m.contextManager.SetUserIDToContext(ctx, userID), nil
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errMissingToken
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errInvalidToken
	}

	return userID, nil
}
