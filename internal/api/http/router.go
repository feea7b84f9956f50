// Package http serves image downloads and health checks over plain HTTP.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// NewRouter mounts:
//
//	GET /images/*  streams a stored image
//	GET /healthz   runs the health checks
func NewRouter(storage model.Storage, checks map[string]HealthCheck, logger *logger.Logger) http.Handler {
	images := NewImages(storage, logger)
	health := NewHealth(checks, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(WithRequestLogging(logger))

	r.Get("/healthz", health.ServeHTTP)
	r.Route("/images", func(r chi.Router) {
		r.Get("/*", images.Get)
		r.Head("/*", images.Get)
	})

	return r
}
