package store

import (
	"path/filepath"
	"sync"

	"smarta/internal/domain"
)

const sessionFile = "session.json"

// SessionFileStore persists the navigation session.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession overwrites the stored session.
func (s *SessionFileStore) SaveSession(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, sessionFile), sess)
}

// LoadSession returns the stored session, if any.
func (s *SessionFileStore) LoadSession() (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess domain.Session
	ok, err := readJSON(filepath.Join(s.dir, sessionFile), &sess)
	if err != nil || !ok {
		return domain.Session{}, false, err
	}
	return sess, true, nil
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
