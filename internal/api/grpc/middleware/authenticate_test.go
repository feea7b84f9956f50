package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mdAuthHeader   string
		tokenSvcUserID uuid.UUID
		tokenSvcErr    error
		wantMsg        string
		wantErr        bool
	}{
		{
			name:    "missing authorization header",
			wantMsg: "missing authorization token",
			wantErr: true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			tokenSvcErr:  assert.AnError,
			wantMsg:      "invalid authorization token",
			wantErr:      true,
		},
		{
			name:           "nil user id from token",
			mdAuthHeader:   "Bearer token",
			tokenSvcUserID: uuid.Nil,
			wantMsg:        "invalid authorization token",
			wantErr:        true,
		},
		{
			name:           "valid token",
			mdAuthHeader:   "Bearer token",
			tokenSvcUserID: uuid.New(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)

			if !tt.wantErr {
				cm.On("SetUserIDToContext", mock.Anything, tt.tokenSvcUserID).Return(context.Background())
			}

			svc := mocks.NewTokenService(t)
			if tt.mdAuthHeader != "" {
				svc.On("GetUserID", mock.Anything, "token").Maybe().Return(tt.tokenSvcUserID, tt.tokenSvcErr)
				svc.On("GetUserID", mock.Anything, "invalid").Maybe().Return(tt.tokenSvcUserID, tt.tokenSvcErr)
			}
			m := NewAuthenticate(svc, cm, lg)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				assert.Nil(t, newCtx)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Equal(t, tt.wantMsg, st.Message())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, newCtx)
			}
		})
	}
}
