package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/greengarden/greengarden-server/internal/model"
)

const readHeaderTimeout = 10 * time.Second

var _ model.Server = (*Server)(nil)

// Server runs the HTTP surface on a listener from the security layer.
type Server struct {
	server *http.Server
	addr   string
}

func NewServer(handler http.Handler, addr string) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		addr: addr,
	}
}

// Start blocks until the server stops. A shutdown via Stop is not an error.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	err = s.server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func (s *Server) Address() string {
	return s.addr
}
