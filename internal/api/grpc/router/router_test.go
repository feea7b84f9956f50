package router

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcctx "github.com/greengarden/greengarden-server/internal/api/grpc/context"
	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
	"github.com/greengarden/greengarden-server/proto"
)

func TestAuthSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   bool
	}{
		{method: proto.Auth_Login_FullMethodName, want: false},
		{method: proto.Auth_SignUp_FullMethodName, want: false},
		{method: proto.Plants_ListPlants_FullMethodName, want: true},
		{method: proto.Users_GetUser_FullMethodName, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()
			meta := interceptors.NewServerCallMeta(tt.method, nil, nil)
			assert.Equal(t, tt.want, authSkip(context.Background(), meta))
		})
	}
}

type harness struct {
	auth   *mocks.AuthService
	users  *mocks.UserService
	plants *mocks.PlantService
	tokens *mocks.TokenService
	conn   *grpc.ClientConn
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		auth:   mocks.NewAuthService(t),
		users:  mocks.NewUserService(t),
		plants: mocks.NewPlantService(t),
		tokens: mocks.NewTokenService(t),
	}

	r := New(Services{
		Auth:   h.auth,
		Users:  h.users,
		Plants: h.plants,
		Feed:   mocks.NewPlantFeed(t),
		Tokens: h.tokens,
	}, grpcctx.NewManager(), 1<<20, testutil.MakeNoopLogger())
	s := r.Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	h.conn = conn

	return h
}

func TestRouter_AuthCallsNeedNoToken(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()
	h.auth.On("Login", mock.Anything, "fern@example.com", "secret1").
		Return(model.Session{UserID: userID, AccessToken: "a", RefreshToken: "r"}, nil)

	resp, err := proto.NewAuthClient(h.conn).Login(context.Background(), &proto.LoginRequest{Email: "fern@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.UserId)
	assert.Equal(t, "a", resp.AccessToken)
}

func TestRouter_PlantCallsRequireToken(t *testing.T) {
	h := newHarness(t)

	_, err := proto.NewPlantsClient(h.conn).ListPlants(context.Background(), &proto.ListPlantsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_CreatePlantUsesCaller(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()

	h.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)
	h.plants.On("Create", mock.Anything, userID, mock.MatchedBy(func(p model.Plant) bool {
		return p.PlantName == "Monstera"
	})).Return(model.Plant{ID: uuid.New(), OwnerID: userID, PlantName: "Monstera", Category: model.CategoryIndoor}, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer access")
	resp, err := proto.NewPlantsClient(h.conn).CreatePlant(ctx, &proto.CreatePlantRequest{
		Plant: &proto.Plant{PlantName: "Monstera", Category: string(model.CategoryIndoor)},
	})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.Plant.GetOwnerId())
	assert.NotEmpty(t, resp.Plant.GetId())
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	h := newHarness(t)
	h.auth.On("Refresh", mock.Anything, "boom").Run(func(mock.Arguments) { panic("boom") })

	_, err := proto.NewAuthClient(h.conn).Refresh(context.Background(), &proto.RefreshRequest{RefreshToken: "boom"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRouter_AcceptsImageAtLimit(t *testing.T) {
	h := newHarness(t)
	userID := uuid.New()
	data := make([]byte, 1<<20)

	h.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)
	h.users.On("UploadProfileImage", mock.Anything, userID, data).Return("http://localhost:8080/images/profileImages/x.jpg", nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer access")
	resp, err := proto.NewUsersClient(h.conn).UploadProfileImage(ctx, &proto.UploadProfileImageRequest{Data: data})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/profileImages/x.jpg", resp.GetUrl())
}
