package model

import "context"

// ChangeSource signals that the plant collection may have changed.
// Changes made while the source is not listening are not signalled.
type ChangeSource interface {
	// Listen makes sure the source is subscribed. It is a no-op when it already is.
	Listen(ctx context.Context) error
	// WaitForChange blocks until the next change signal.
	WaitForChange(ctx context.Context) error
}

// PlantSubscription is a standing subscription to the full plant collection.
// Every value on Snapshots replaces the previous one. The channel is closed
// when the subscription ends; Err then reports why (nil after Close).
type PlantSubscription interface {
	Snapshots() <-chan []Plant
	Err() error
	Close()
}
