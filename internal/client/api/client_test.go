package api

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	grpcctx "github.com/greengarden/greengarden-server/internal/api/grpc/context"
	"github.com/greengarden/greengarden-server/internal/api/grpc/router"
	"github.com/greengarden/greengarden-server/internal/mocks"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/testutil"
)

type backend struct {
	auth   *mocks.AuthService
	users  *mocks.UserService
	plants *mocks.PlantService
	feed   *mocks.PlantFeed
	tokens *mocks.TokenService
	conn   *grpc.ClientConn
}

func newBackend(t *testing.T) *backend {
	t.Helper()

	b := &backend{
		auth:   mocks.NewAuthService(t),
		users:  mocks.NewUserService(t),
		plants: mocks.NewPlantService(t),
		feed:   mocks.NewPlantFeed(t),
		tokens: mocks.NewTokenService(t),
	}

	s := router.New(router.Services{
		Auth:   b.auth,
		Users:  b.users,
		Plants: b.plants,
		Feed:   b.feed,
		Tokens: b.tokens,
	}, grpcctx.NewManager(), 1<<20, testutil.MakeNoopLogger()).Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	b.conn = conn

	return b
}

func signedInClient(t *testing.T, b *backend, session model.Session) (*Client, *MemorySessionStore) {
	t.Helper()

	store := NewMemorySessionStore()
	require.NoError(t, store.Save(session))

	c, err := New(b.conn, store, testutil.MakeNoopLogger())
	require.NoError(t, err)
	return c, store
}

func TestClient_LoginStoresSession(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	b.auth.On("Login", mock.Anything, "ann@example.com", "secret1").
		Return(model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"}, nil).Once()
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)
	b.plants.On("List", mock.Anything).Return([]model.Plant{{PlantName: "Fern"}}, nil).Once()

	store := NewMemorySessionStore()
	c, err := New(b.conn, store, testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, ok := c.Session()
	assert.False(t, ok)

	session, err := c.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	saved, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, session, saved)

	plants, err := c.ListPlants(context.Background())
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Fern", plants[0].PlantName)
}

func TestClient_LoginWrongPassword(t *testing.T) {
	b := newBackend(t)
	b.auth.On("Login", mock.Anything, "ann@example.com", "nope").
		Return(model.Session{}, model.ErrInvalidCredentials).Once()

	c, err := New(b.conn, NewMemorySessionStore(), testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "ann@example.com", "nope")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestClient_SignUpValidation(t *testing.T) {
	b := newBackend(t)
	b.auth.On("SignUp", mock.Anything, "ann", "ann@example.com", "123").
		Return(uuid.Nil, model.NewValidationError("password", "must be at least 6 characters")).Once()

	c, err := New(b.conn, NewMemorySessionStore(), testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, err = c.SignUp(context.Background(), "ann", "ann@example.com", "123")
	require.ErrorIs(t, err, model.ErrValidation)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, "must be at least 6 characters", verr.Message)
}

func TestClient_RefreshesExpiredAccessToken(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, store := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "stale", RefreshToken: "refresh-1"})

	b.tokens.On("GetUserID", mock.Anything, "stale").Return(uuid.Nil, model.ErrUnauthenticated)
	b.tokens.On("GetUserID", mock.Anything, "fresh").Return(userID, nil)
	b.auth.On("Refresh", mock.Anything, "refresh-1").
		Return(model.Session{UserID: userID, AccessToken: "fresh", RefreshToken: "refresh-2"}, nil).Once()
	id := uuid.New()
	b.plants.On("Get", mock.Anything, id).Return(model.Plant{}, false, nil).Once()

	_, found, err := c.GetPlant(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)

	saved, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh", saved.AccessToken)
	assert.Equal(t, "refresh-2", saved.RefreshToken)
}

func TestClient_RefreshFailureReportsUnauthenticated(t *testing.T) {
	b := newBackend(t)
	c, _ := signedInClient(t, b, model.Session{UserID: uuid.New(), AccessToken: "stale", RefreshToken: "revoked"})

	b.tokens.On("GetUserID", mock.Anything, "stale").Return(uuid.Nil, model.ErrUnauthenticated)
	b.auth.On("Refresh", mock.Anything, "revoked").Return(model.Session{}, model.ErrTokenRevoked).Once()

	_, err := c.ListPlants(context.Background())
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestClient_PlantErrors(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, _ := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"})
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)

	id := uuid.New()
	name := "Fern"
	b.plants.On("Update", mock.Anything, id, model.PlantPatch{PlantName: &name}).Return(model.Plant{}, model.ErrNotFound).Once()
	b.plants.On("Create", mock.Anything, userID, mock.Anything).
		Return(model.Plant{}, model.NewValidationError("plantName", "plant name is required")).Once()
	b.plants.On("Delete", mock.Anything, id).Return(nil).Twice()

	_, err := c.UpdatePlant(context.Background(), id, model.PlantPatch{PlantName: &name})
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = c.CreatePlant(context.Background(), model.Plant{Category: model.CategoryIndoor})
	require.ErrorIs(t, err, model.ErrValidation)

	require.NoError(t, c.DeletePlant(context.Background(), id))
	require.NoError(t, c.DeletePlant(context.Background(), id))
}

func TestClient_ProfileCalls(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, store := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"})
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)

	b.users.On("Get", mock.Anything, userID).Return(model.User{ID: userID, Username: "ann"}, true, nil).Once()
	b.users.On("UploadProfileImage", mock.Anything, userID, []byte("img")).Return("http://img/x.jpg", nil).Once()
	b.users.On("UpdateEmail", mock.Anything, userID, "taken@example.com").Return(model.ErrEmailTaken).Once()
	b.users.On("DeleteAccount", mock.Anything, userID).Return(nil).Once()

	me, found, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ann", me.Username)

	url, err := c.UploadProfileImage(context.Background(), userID, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "http://img/x.jpg", url)

	require.ErrorIs(t, c.UpdateEmail(context.Background(), userID, "taken@example.com"), model.ErrEmailTaken)

	_, _, err = c.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, model.ErrPermissionDenied)

	require.NoError(t, c.DeleteAccount(context.Background(), userID))
	_, ok := c.Session()
	assert.False(t, ok)
	_, ok, _ = store.Load()
	assert.False(t, ok)
}

func TestClient_PlantSurvivesTransport(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, _ := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"})
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stored := model.Plant{
		ID:          uuid.New(),
		OwnerID:     userID,
		PlantName:   "Monstera",
		Description: "Split leaves",
		Category:    model.CategoryBoth,
		Image:       "http://localhost:8080/images/plants/m.jpg",
		CreatedAt:   stamp,
		UpdatedAt:   stamp.Add(time.Minute),
	}
	b.plants.On("Get", mock.Anything, stored.ID).Return(stored, true, nil).Once()
	b.plants.On("List", mock.Anything).Return([]model.Plant{}, nil).Once()

	got, found, err := c.GetPlant(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, got)

	plants, err := c.ListPlants(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plants)
	assert.Empty(t, plants)
}

func TestClient_MeWithoutSession(t *testing.T) {
	b := newBackend(t)
	c, err := New(b.conn, NewMemorySessionStore(), testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, _, err = c.Me(context.Background())
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestClient_Logout(t *testing.T) {
	b := newBackend(t)
	c, store := signedInClient(t, b, model.Session{UserID: uuid.New(), AccessToken: "access", RefreshToken: "refresh"})
	b.auth.On("Logout", mock.Anything, "refresh").Return(nil).Once()

	require.NoError(t, c.Logout(context.Background()))
	_, ok, _ := store.Load()
	assert.False(t, ok)

	require.NoError(t, c.Logout(context.Background()))
}

type chanSubscription struct {
	ch chan []model.Plant
}

func (s *chanSubscription) Snapshots() <-chan []model.Plant { return s.ch }
func (s *chanSubscription) Err() error                      { return nil }
func (s *chanSubscription) Close()                          {}

func TestClient_WatchPlants(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, _ := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"})
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)

	sub := &chanSubscription{ch: make(chan []model.Plant, 2)}
	sub.ch <- []model.Plant{{PlantName: "Monstera"}}
	sub.ch <- []model.Plant{{PlantName: "Monstera"}, {PlantName: "Money Plant"}}
	b.feed.On("Subscribe", mock.Anything).Return(sub, nil).Once()

	got := make(chan []model.Plant, 2)
	cancel, err := c.WatchPlants(context.Background(), func(plants []model.Plant) { got <- plants }, func(err error) {
		t.Errorf("unexpected subscription error: %v", err)
	})
	require.NoError(t, err)
	defer cancel()

	for _, want := range [][]string{{"Monstera"}, {"Monstera", "Money Plant"}} {
		select {
		case plants := <-got:
			names := make([]string, 0, len(plants))
			for _, p := range plants {
				names = append(names, p.PlantName)
			}
			assert.Equal(t, want, names)
		case <-time.After(2 * time.Second):
			t.Fatal("snapshot not delivered")
		}
	}
}

func TestClient_WatchPlantsError(t *testing.T) {
	b := newBackend(t)
	userID := uuid.New()
	c, _ := signedInClient(t, b, model.Session{UserID: userID, AccessToken: "access", RefreshToken: "refresh"})
	b.tokens.On("GetUserID", mock.Anything, "access").Return(userID, nil)
	b.feed.On("Subscribe", mock.Anything).Return(nil, assert.AnError).Once()

	errs := make(chan error, 1)
	cancel, err := c.WatchPlants(context.Background(), func([]model.Plant) {}, func(err error) { errs <- err })
	require.NoError(t, err)
	defer cancel()

	select {
	case err := <-errs:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("error not delivered")
	}
}

func TestFileSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileSessionStore(path)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	session := model.Session{UserID: uuid.New(), AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, store.Save(session))

	loaded, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, session, loaded)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, ok, err = store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
