// Package identity stores identity-provider accounts on database/sql.
package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Open connects to the accounts database and checks it is reachable.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity dsn: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping identity database: %w", err)
	}

	return db, nil
}
