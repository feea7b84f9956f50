package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/greengarden/greengarden-server/internal/model"
)

// SessionStore keeps the signed-in session between client runs.
type SessionStore interface {
	Load() (model.Session, bool, error)
	Save(session model.Session) error
	Clear() error
}

var (
	_ SessionStore = (*FileSessionStore)(nil)
	_ SessionStore = (*MemorySessionStore)(nil)
)

// FileSessionStore persists the session as JSON readable only by the owner.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Load() (model.Session, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.Session{}, false, nil
	}
	if err != nil {
		return model.Session{}, false, fmt.Errorf("failed to read session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.Session{}, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, session.RefreshToken != "", nil
}

func (s *FileSessionStore) Save(session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *FileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// MemorySessionStore keeps the session for the lifetime of the process.
type MemorySessionStore struct {
	mu      sync.Mutex
	session model.Session
	ok      bool
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (model.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.ok, nil
}

func (s *MemorySessionStore) Save(session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session, s.ok = session, true
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session, s.ok = model.Session{}, false
	return nil
}
