package store

import (
	"path/filepath"
	"sync"

	"smarta/internal/domain"
)

const chatFile = "chat.json"

// ChatFileStore persists the coach transcript.
type ChatFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewChatFileStore(dir string) *ChatFileStore {
	return &ChatFileStore{dir: dir}
}

func (s *ChatFileStore) SaveMessages(msgs []domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, chatFile), msgs)
}

func (s *ChatFileStore) LoadMessages() ([]domain.ChatMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []domain.ChatMessage
	ok, err := readJSON(filepath.Join(s.dir, chatFile), &msgs)
	if err != nil || !ok {
		return nil, false, err
	}
	return msgs, true, nil
}

var _ domain.ChatStore = (*ChatFileStore)(nil)
