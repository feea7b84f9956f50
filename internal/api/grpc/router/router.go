package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/api/grpc/handler"
	"github.com/greengarden/greengarden-server/internal/api/grpc/middleware"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// overheadBytes leaves room for the request envelope around an image payload.
const overheadBytes = 64 << 10

// Services bundles everything the router exposes.
type Services struct {
	Auth   handler.AuthService
	Users  handler.UserService
	Plants handler.PlantService
	Feed   handler.PlantFeed
	Tokens middleware.TokenService
}

// Router builds the gRPC server of the Green Garden API.
type Router struct {
	services       Services
	contextManager model.ContextManager
	maxImageBytes  int
	logger         *logger.Logger
}

// New creates new gRPC Router instance. maxImageBytes bounds profile image uploads.
func New(services Services, contextManager model.ContextManager, maxImageBytes int, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		maxImageBytes:  maxImageBytes,
		logger:         logger,
	}
}

// authSkip selects the calls that need a bearer token: everything but the Auth service.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+proto.Auth_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)
	recoverFrom := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("gRPC handler panicked", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(r.maxImageBytes+overheadBytes),
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoverFrom),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleStream,
			recovery.StreamServerInterceptor(recoverFrom),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	)

	proto.RegisterAuthServer(s, handler.NewAuth(r.services.Auth, r.logger))
	proto.RegisterUsersServer(s, handler.NewUsers(r.services.Users, r.contextManager, r.logger))
	proto.RegisterPlantsServer(s, handler.NewPlants(r.services.Plants, r.services.Feed, r.contextManager, r.logger))

	return s
}
