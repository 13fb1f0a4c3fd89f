package store

import (
	"path/filepath"
	"sync"

	"smarta/internal/domain"
)

const securityFile = "security.json"

// SettingsFileStore persists the security screen toggles.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

func (s *SettingsFileStore) SaveSettings(set domain.SecuritySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, securityFile), set)
}

func (s *SettingsFileStore) LoadSettings() (domain.SecuritySettings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var set domain.SecuritySettings
	ok, err := readJSON(filepath.Join(s.dir, securityFile), &set)
	if err != nil || !ok {
		return domain.SecuritySettings{}, false, err
	}
	return set, true, nil
}

var _ domain.SettingsStore = (*SettingsFileStore)(nil)
