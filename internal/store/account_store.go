package store

import (
	"path/filepath"
	"sync"

	"smarta/internal/domain"
)

const accountsFile = "accounts.json"

// AccountFileStore persists the linked bank and e-wallet accounts.
type AccountFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore rooted at dir.
func NewAccountFileStore(dir string) *AccountFileStore {
	return &AccountFileStore{dir: dir}
}

// SaveAccounts replaces the stored account list.
func (s *AccountFileStore) SaveAccounts(accounts []domain.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if accounts == nil {
		accounts = []domain.BankAccount{}
	}
	return writeJSON(filepath.Join(s.dir, accountsFile), accounts)
}

// LoadAccounts returns the stored list. ok is false until the first save.
func (s *AccountFileStore) LoadAccounts() ([]domain.BankAccount, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []domain.BankAccount
	ok, err := readJSON(filepath.Join(s.dir, accountsFile), &accounts)
	if err != nil || !ok {
		return nil, false, err
	}
	return accounts, true, nil
}

// Compile-time assertion that AccountFileStore implements domain.AccountStore.
var _ domain.AccountStore = (*AccountFileStore)(nil)
