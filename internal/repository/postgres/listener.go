package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greengarden/greengarden-server/internal/model"
)

// PlantsChannel is the notification channel fired by the plants_notify trigger.
const PlantsChannel = "plants_changed"

var _ model.ChangeSource = (*ChangeListener)(nil)

// ChangeListener turns Postgres notifications into change signals.
// It holds one pooled connection dedicated to LISTEN.
type ChangeListener struct {
	db      *Connection
	channel string

	mu   sync.Mutex
	conn *pgxpool.Conn
}

func NewChangeListener(db *Connection, channel string) *ChangeListener {
	return &ChangeListener{db: db, channel: channel}
}

// Listen subscribes to the channel on a dedicated connection unless it is
// already subscribed.
func (l *ChangeListener) Listen(ctx context.Context) error {
	_, err := l.acquire(ctx)
	return err
}

// WaitForChange blocks until a notification arrives on the channel.
func (l *ChangeListener) WaitForChange(ctx context.Context) error {
	conn, err := l.acquire(ctx)
	if err != nil {
		return err
	}

	if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
		l.reset()
		return fmt.Errorf("failed to wait for notification: %w", err)
	}

	return nil
}

// Close releases the listening connection.
func (l *ChangeListener) Close() error {
	l.reset()
	return nil
}

func (l *ChangeListener) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		return l.conn, nil
	}

	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listen connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", l.channel, err)
	}

	l.conn = conn
	return conn, nil
}

// reset drops the connection so the next wait re-subscribes. A connection
// interrupted mid-wait cannot be reused, so it is closed rather than pooled.
func (l *ChangeListener) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn == nil {
		return
	}
	_ = l.conn.Conn().Close(context.Background())
	l.conn.Release()
	l.conn = nil
}
