package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

// ErrFeedClosed ends subscriptions when the feed shuts down.
var ErrFeedClosed = errors.New("plant feed closed")

const defaultRetryDelay = time.Second

// Feed pushes the full plant collection to every subscriber whenever it changes.
type Feed struct {
	store      model.PlantStore
	source     model.ChangeSource
	logger     *logger.Logger
	retryDelay time.Duration

	// reloadMu orders snapshot loads so no subscriber sees an older snapshot after a newer one.
	reloadMu sync.Mutex

	mu   sync.Mutex
	subs map[*subscription]struct{}
}

func NewFeed(store model.PlantStore, source model.ChangeSource, logger *logger.Logger) *Feed {
	return &Feed{
		store:      store,
		source:     source,
		logger:     logger,
		retryDelay: defaultRetryDelay,
		subs:       make(map[*subscription]struct{}),
	}
}

// Run waits for change signals and broadcasts a fresh snapshot for each one.
// Whenever the source (re)subscribes, a snapshot is broadcast as well, since
// changes made while it was not listening were never signalled.
// It returns when ctx is done, ending all subscriptions.
func (f *Feed) Run(ctx context.Context) error {
	defer f.closeAll(ErrFeedClosed)

	listening := false
	for {
		if !listening {
			if err := f.source.Listen(ctx); err != nil {
				if ctx.Err() != nil || !f.wait(ctx, err) {
					return nil
				}
				continue
			}
			listening = true
			f.reloadLogged(ctx)
		}

		err := f.source.WaitForChange(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			listening = false
			if !f.wait(ctx, err) {
				return nil
			}
			continue
		}

		f.reloadLogged(ctx)
	}
}

// wait logs a source failure and sleeps for the retry delay. It reports false
// when ctx ends first.
func (f *Feed) wait(ctx context.Context, err error) bool {
	f.logger.Warn("Feed service: change source failed, retrying",
		"error", err.Error(),
		"delay", f.retryDelay)

	select {
	case <-ctx.Done():
		return false
	case <-time.After(f.retryDelay):
		return true
	}
}

func (f *Feed) reloadLogged(ctx context.Context) {
	if err := f.Reload(ctx); err != nil && ctx.Err() == nil {
		f.logger.Error("Feed service: failed to reload plants", "error", err.Error())
	}
}

// Reload loads the collection and pushes it to all subscribers. When the load
// fails every subscription is ended with the error.
func (f *Feed) Reload(ctx context.Context) error {
	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	plants, err := f.store.List(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load plants: %w", err)
		f.closeAll(err)
		return err
	}

	f.mu.Lock()
	for sub := range f.subs {
		sub.push(plants)
	}
	n := len(f.subs)
	f.mu.Unlock()

	f.logger.Debug("Feed service: snapshot pushed",
		"plants", len(plants),
		"subscribers", n)
	return nil
}

// Subscribe registers a subscriber and delivers the current snapshot to it right away.
// The subscription ends when ctx is done or Close is called.
func (f *Feed) Subscribe(ctx context.Context) (model.PlantSubscription, error) {
	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	plants, err := f.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plants: %w", err)
	}

	sub := &subscription{
		feed: f,
		ch:   make(chan []model.Plant, 1),
	}
	sub.push(plants)

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	stop := context.AfterFunc(ctx, sub.Close)
	sub.mu.Lock()
	sub.stop = stop
	sub.mu.Unlock()

	return sub, nil
}

// Subscribers returns the number of open subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Feed) closeAll(err error) {
	f.mu.Lock()
	subs := f.subs
	f.subs = make(map[*subscription]struct{})
	f.mu.Unlock()

	for sub := range subs {
		sub.finish(err)
	}
}

func (f *Feed) remove(sub *subscription) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
}

var _ model.PlantSubscription = (*subscription)(nil)

type subscription struct {
	feed *Feed
	stop func() bool

	mu     sync.Mutex
	ch     chan []model.Plant
	err    error
	closed bool
}

func (s *subscription) Snapshots() <-chan []model.Plant {
	return s.ch
}

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *subscription) Close() {
	s.feed.remove(s)
	s.finish(nil)
}

// push keeps at most one pending snapshot: an unread one is replaced by the newer.
func (s *subscription) push(plants []model.Plant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- plants
}

func (s *subscription) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.ch)
	if s.stop != nil {
		s.stop()
	}
}
