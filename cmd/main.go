package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	"github.com/greengarden/greengarden-server/database"
	grpcctx "github.com/greengarden/greengarden-server/internal/api/grpc/context"
	"github.com/greengarden/greengarden-server/internal/api/grpc/router"
	grpcServer "github.com/greengarden/greengarden-server/internal/api/grpc/server"
	httpapi "github.com/greengarden/greengarden-server/internal/api/http"
	"github.com/greengarden/greengarden-server/internal/config"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/internal/repository/identity"
	"github.com/greengarden/greengarden-server/internal/repository/postgres"
	"github.com/greengarden/greengarden-server/internal/server"
	"github.com/greengarden/greengarden-server/internal/service"
	storage "github.com/greengarden/greengarden-server/internal/storage/minio"
	"github.com/greengarden/greengarden-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize document store", "error", err)
	}
	defer db.Close()

	identityDB, err := identity.Open(ctx, cfg.Identity.DSN)
	if err != nil {
		logger.Fatal("failed to initialize identity store", "error", err)
	}
	defer identityDB.Close()

	if cfg.Identity.DSN != cfg.Database.DSN {
		if err := database.MigrateDB(identityDB); err != nil {
			logger.Fatal("failed to migrate identity store", "error", err)
		}
	}

	blobs, err := storage.Dial(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize blob store", "error", err)
	}

	plantRepo := postgres.NewPlantRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	accountRepo := identity.NewAccountRepository(identityDB)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, logger)
	authService := service.NewAuth(accountRepo, profileRepo, tokenService, cfg.Identity.BcryptCost, logger)
	userService := service.NewUser(profileRepo, accountRepo, blobs, tokenService, cfg.HTTP.PublicURL, cfg.Identity.BcryptCost, logger)
	plantService := service.NewPlant(plantRepo, logger)

	listener := postgres.NewChangeListener(db, postgres.PlantsChannel)
	defer listener.Close()
	feed := service.NewFeed(plantRepo, listener, logger)

	r := router.New(router.Services{
		Auth:   authService,
		Users:  userService,
		Plants: plantService,
		Feed:   feed,
		Tokens: tokenService,
	}, grpcctx.NewManager(), cfg.Images.MaxBytes, logger)
	gs := r.Register()
	reflection.Register(gs)

	grpcSrv := grpcServer.NewGRPCServer(gs, fmt.Sprintf(":%s", cfg.GRPC.Port))
	httpSrv := httpapi.NewServer(httpapi.NewRouter(blobs, map[string]httpapi.HealthCheck{
		"database": db.Ping,
		"identity": identityDB.PingContext,
	}, logger), fmt.Sprintf(":%s", cfg.HTTP.Port))

	layers := map[model.Server]model.SecurityLayer{
		grpcSrv: server.NewSecurityLayer(cfg.GRPC),
		httpSrv: server.NewPlainListener(),
	}
	servers := []model.Server{grpcSrv, httpSrv}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := feed.Run(ctx); err != nil {
			logger.Error("plant feed stopped", "error", err)
		}
	}()

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s, layers[s])
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
