// Package postgres is the document store: plants, profiles and refresh
// tokens on a pgx pool, plus the LISTEN/NOTIFY change feed.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greengarden/greengarden-server/database"
)

var errNoPool = errors.New("connection pool is not open")

// Connection is the document store connection pool.
type Connection struct {
	*pgxpool.Pool
}

// NewConection opens a pool, checks that the server answers and applies
// pending migrations.
func NewConection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach document store: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate document store: %w", err)
	}

	return &Connection{Pool: pool}, nil
}

func (c *Connection) Close() error {
	if c.Pool == nil {
		return errNoPool
	}
	c.Pool.Close()
	return nil
}

// Ping is the health check of the document store.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return errNoPool
	}
	return c.Pool.Ping(ctx)
}
