package state

import (
	"sync"

	"github.com/greengarden/greengarden-server/internal/model"
)

// Session publishes the signed-in user to every screen that observes it.
type Session struct {
	mu        sync.Mutex
	user      *model.User
	nextID    int
	observers map[int]func(user *model.User)
}

func NewSession() *Session {
	return &Session{observers: make(map[int]func(*model.User))}
}

// Current returns the signed-in user.
func (s *Session) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Set replaces the signed-in user and notifies observers.
func (s *Session) Set(user model.User) {
	s.publish(&user)
}

// Clear signs the user out locally and notifies observers with nil.
func (s *Session) Clear() {
	s.publish(nil)
}

// Observe calls fn with the current user right away and again on every change.
// A nil user means nobody is signed in.
func (s *Session) Observe(fn func(user *model.User)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers[id] = fn
	current := s.copyUser()
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Session) publish(user *model.User) {
	s.mu.Lock()
	s.user = user
	observers := make([]func(*model.User), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		var u *model.User
		if user != nil {
			c := *user
			u = &c
		}
		fn(u)
	}
}

func (s *Session) copyUser() *model.User {
	if s.user == nil {
		return nil
	}
	c := *s.user
	return &c
}
