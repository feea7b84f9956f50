// Package state holds client state shared between screens.
package state

import (
	"sort"
	"sync"
)

// Loader tracks in-flight actions. The UI shows a busy indicator while any
// token is held, so overlapping actions cannot hide each other's progress.
type Loader struct {
	mu        sync.Mutex
	nextID    uint64
	held      map[uint64]string
	listeners map[uint64]func(busy bool)

	// notifyMu orders notifications; notified is the state listeners last saw.
	notifyMu sync.Mutex
	notified bool
}

func NewLoader() *Loader {
	return &Loader{
		held:      make(map[uint64]string),
		listeners: make(map[uint64]func(bool)),
	}
}

// Token is one held busy claim.
type Token struct {
	loader *Loader
	id     uint64
	once   sync.Once
}

// Acquire marks the loader busy until the returned token is released.
func (l *Loader) Acquire(label string) *Token {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.held[id] = label
	l.mu.Unlock()

	l.publish()
	return &Token{loader: l, id: id}
}

// Release drops the claim. Calling it again has no effect.
func (t *Token) Release() {
	t.once.Do(func() {
		t.loader.release(t.id)
	})
}

func (l *Loader) release(id uint64) {
	l.mu.Lock()
	delete(l.held, id)
	l.mu.Unlock()

	l.publish()
}

// publish tells listeners about the current state if it differs from the one
// they last saw. Listeners must not acquire or release tokens.
func (l *Loader) publish() {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	busy := len(l.held) > 0
	listeners := l.snapshotListeners()
	l.mu.Unlock()

	if busy == l.notified {
		return
	}
	l.notified = busy
	notify(listeners, busy)
}

// Busy reports whether any token is held.
func (l *Loader) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.held) > 0
}

// Labels lists the labels of held tokens in acquisition order.
func (l *Loader) Labels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]uint64, 0, len(l.held))
	for id := range l.held {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, l.held[id])
	}
	return labels
}

// OnChange registers fn to be called when the loader turns busy or idle.
// Calls are serialised and always report the state at the time of the call.
func (l *Loader) OnChange(fn func(busy bool)) (unsubscribe func()) {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.listeners[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}

func (l *Loader) snapshotListeners() []func(bool) {
	out := make([]func(bool), 0, len(l.listeners))
	for _, fn := range l.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(bool), busy bool) {
	for _, fn := range listeners {
		fn(busy)
	}
}
