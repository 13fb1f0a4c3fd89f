package store

import (
	"path/filepath"
	"strings"
	"sync"

	"smarta/internal/domain"
)

const credentialsFile = "credentials.json"

// CredentialFileStore persists login credentials keyed by email.
type CredentialFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir}
}

// SaveCredential stores or replaces the credential for c.Email.
func (s *CredentialFileStore) SaveCredential(c domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, credentialsFile)
	creds := map[string]domain.Credential{}
	if _, err := readJSON(path, &creds); err != nil {
		return err
	}
	creds[credentialKey(c.Email)] = c
	return writeJSON(path, creds)
}

// LoadCredential looks up email, ignoring case.
func (s *CredentialFileStore) LoadCredential(email string) (domain.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := map[string]domain.Credential{}
	if _, err := readJSON(filepath.Join(s.dir, credentialsFile), &creds); err != nil {
		return domain.Credential{}, false, err
	}
	c, ok := creds[credentialKey(email)]
	return c, ok, nil
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
