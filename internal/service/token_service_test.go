package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

func sha(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)

	manager.On("GenerateAccessToken", userID).Return("access", nil).Once()
	manager.On("GenerateRefreshToken", userID).Return("refresh", "jti-1", nil).Once()
	store.On("Create", ctx, mock.MatchedBy(func(rt model.RefreshToken) bool {
		return rt.JTI == "jti-1" && rt.UserID == userID && string(rt.TokenHash) == string(sha("refresh")) && rt.RotatedFromJTI == nil
	})).Return(nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	session, err := svc.Issue(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"}, session)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateAccessToken", userID).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, servermocks.NewRefreshTokenStore(t), testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), userID)
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Refresh(t *testing.T) {
	t.Parallel()

	now := time.Now()
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name    string
		stored  model.RefreshToken
		wantErr error
	}{
		{
			name:   "rotates",
			stored: model.RefreshToken{JTI: "jti-old", TokenHash: sha("refresh-old"), ExpiresAt: now.Add(time.Hour)},
		},
		{
			name:    "revoked",
			stored:  model.RefreshToken{JTI: "jti-old", TokenHash: sha("refresh-old"), ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt},
			wantErr: model.ErrTokenRevoked,
		},
		{
			name:    "expired",
			stored:  model.RefreshToken{JTI: "jti-old", TokenHash: sha("refresh-old"), ExpiresAt: now.Add(-time.Minute)},
			wantErr: model.ErrTokenExpired,
		},
		{
			name:    "hash mismatch",
			stored:  model.RefreshToken{JTI: "jti-old", TokenHash: sha("other"), ExpiresAt: now.Add(time.Hour)},
			wantErr: model.ErrTokenMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			userID := uuid.New()
			manager := servermocks.NewTokenManager(t)
			store := servermocks.NewRefreshTokenStore(t)

			manager.On("ParseRefreshToken", "refresh-old").Return(userID, "jti-old", nil).Once()
			store.On("GetByJTI", ctx, "jti-old").Return(tt.stored, nil).Once()

			if tt.wantErr == nil {
				store.On("RevokeByJTI", ctx, "jti-old").Return(nil).Once()
				manager.On("GenerateAccessToken", userID).Return("access-new", nil).Once()
				manager.On("GenerateRefreshToken", userID).Return("refresh-new", "jti-new", nil).Once()
				store.On("Create", ctx, mock.MatchedBy(func(rt model.RefreshToken) bool {
					return rt.JTI == "jti-new" && rt.RotatedFromJTI != nil && *rt.RotatedFromJTI == "jti-old"
				})).Return(nil).Once()
			}

			svc := NewTokenService(manager, store, testutil.MakeNoopLogger())
			session, err := svc.Refresh(ctx, "refresh-old")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access-new", session.AccessToken)
			assert.Equal(t, "refresh-new", session.RefreshToken)
			assert.Equal(t, userID, session.UserID)
		})
	}
}

func TestTokenService_Refresh_Unparsable(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("ParseRefreshToken", "garbage").Return(uuid.Nil, "", errors.New("bad token")).Once()

	svc := NewTokenService(manager, servermocks.NewRefreshTokenStore(t), testutil.MakeNoopLogger())

	_, err := svc.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestTokenService_RevokeByToken(t *testing.T) {
	ctx := context.Background()
	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)

	manager.On("ParseRefreshToken", "refresh").Return(uuid.New(), "jti", nil).Once()
	store.On("RevokeByJTI", ctx, "jti").Return(nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	require.NoError(t, svc.RevokeByToken(ctx, "refresh"))
}

func TestTokenService_GetUserID(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	u := uuid.New()
	manager.On("ParseAccessToken", "access").Return(u, nil).Once()

	svc := NewTokenService(manager, servermocks.NewRefreshTokenStore(t), testutil.MakeNoopLogger())

	got, err := svc.GetUserID(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestTokenService_RevokeAllForUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := servermocks.NewRefreshTokenStore(t)
	store.On("RevokeAllByUser", ctx, userID).Return(assert.AnError).Once()

	svc := NewTokenService(servermocks.NewTokenManager(t), store, testutil.MakeNoopLogger())

	require.ErrorIs(t, svc.RevokeAllForUser(ctx, userID), assert.AnError)
}
