package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/token"
)

// TokenService issues, rotates and revokes session tokens.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger, now: time.Now}
}

// Issue creates a new session for userID.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.Session, error) {
	return s.issue(ctx, userID, nil)
}

// Refresh validates the presented refresh token, revokes it and issues a new pair.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.Session, error) {
	userID, jti, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if err := validateRecord(rt, hashRefresh(presented), s.now()); err != nil {
		s.logger.Warn("Token service: refresh rejected",
			"user_id", userID,
			"jti", jti,
			"error", err.Error())
		return model.Session{}, err
	}

	if err := s.store.RevokeByJTI(ctx, jti); err != nil {
		return model.Session{}, fmt.Errorf("failed to revoke old refresh token: %w", err)
	}

	return s.issue(ctx, userID, &rt.JTI)
}

// RevokeByToken revokes the presented refresh token.
func (s *TokenService) RevokeByToken(ctx context.Context, presented string) error {
	_, jti, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}
	return s.store.RevokeByJTI(ctx, jti)
}

func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

// GetUserID resolves the account behind an access token.
func (s *TokenService) GetUserID(_ context.Context, accessToken string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(accessToken)
}

func (s *TokenService) issue(ctx context.Context, userID uuid.UUID, rotatedFrom *string) (model.Session, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, jti, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	now := s.now()
	rt := model.RefreshToken{
		ID:             uuid.New(),
		JTI:            jti,
		UserID:         userID,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(token.DefaultRefreshTTL),
		RotatedFromJTI: rotatedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return model.Session{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return model.Session{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	if now.After(rt.ExpiresAt) {
		return model.ErrTokenExpired
	}
	if subtle.ConstantTimeCompare(rt.TokenHash, presentedHash) != 1 {
		return model.ErrTokenMismatch
	}
	return nil
}
