// Package api is the client-side data-access layer. It talks to the Green
// Garden server over gRPC and keeps the signed-in session.
package api

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/greengarden/greengarden-server/internal/config"
	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
	"github.com/greengarden/greengarden-server/proto"
)

// Client calls the Auth, Users and Plants services on behalf of the signed-in user.
type Client struct {
	conn     *grpc.ClientConn
	auth     proto.AuthClient
	users    proto.UsersClient
	plants   proto.PlantsClient
	sessions SessionStore
	logger   *logger.Logger

	mu      sync.RWMutex
	session model.Session
	signed  bool
}

// Dial connects to the server from cfg and restores a saved session.
func Dial(cfg config.ClientConfig, sessions SessionStore, logger *logger.Logger) (*Client, error) {
	creds, err := transportCredentials(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(cfg.ServerAddr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}

	c, err := New(conn, sessions, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	c.conn = conn
	return c, nil
}

// New builds a Client on an existing connection.
func New(cc grpc.ClientConnInterface, sessions SessionStore, logger *logger.Logger) (*Client, error) {
	c := &Client{
		auth:     proto.NewAuthClient(cc),
		users:    proto.NewUsersClient(cc),
		plants:   proto.NewPlantsClient(cc),
		sessions: sessions,
		logger:   logger,
	}

	session, ok, err := sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if ok {
		c.setSession(session)
	}
	return c, nil
}

func transportCredentials(cfg config.ClientConfig) (credentials.TransportCredentials, error) {
	if !cfg.UseTLS {
		return insecure.NewCredentials(), nil
	}

	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CAFile)
		}
		tlsCfg.RootCAs = pool
	}
	return credentials.NewTLS(tlsCfg), nil
}

// Close releases the connection opened by Dial.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Session returns the current session and whether one exists.
func (c *Client) Session() (model.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session, c.signed
}

func (c *Client) setSession(session model.Session) {
	c.mu.Lock()
	c.session, c.signed = session, true
	c.mu.Unlock()
}

func (c *Client) clearSession() error {
	c.mu.Lock()
	c.session, c.signed = model.Session{}, false
	c.mu.Unlock()
	return c.sessions.Clear()
}

func (c *Client) withToken(ctx context.Context) context.Context {
	c.mu.RLock()
	token := c.session.AccessToken
	c.mu.RUnlock()

	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// authorized runs call with the access token attached. An expired access token
// is refreshed once and the call repeated.
func (c *Client) authorized(ctx context.Context, call func(ctx context.Context) error) error {
	err := call(c.withToken(ctx))
	if status.Code(err) != codes.Unauthenticated {
		return mapError(err)
	}

	if rerr := c.refresh(ctx); rerr != nil {
		c.logger.Debug("API client: session refresh failed", "error", rerr.Error())
		return mapError(err)
	}
	return mapError(call(c.withToken(ctx)))
}

func (c *Client) refresh(ctx context.Context) error {
	current, ok := c.Session()
	if !ok || current.RefreshToken == "" {
		return model.ErrUnauthenticated
	}

	resp, err := c.auth.Refresh(ctx, &proto.RefreshRequest{RefreshToken: current.RefreshToken})
	if err != nil {
		return mapError(err)
	}

	session, err := sessionFrom(resp)
	if err != nil {
		return err
	}
	c.setSession(session)
	if err := c.sessions.Save(session); err != nil {
		c.logger.Warn("API client: failed to persist refreshed session", "error", err.Error())
	}
	return nil
}
