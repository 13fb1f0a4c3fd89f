package store

import (
	"path/filepath"
	"sync"

	"smarta/internal/domain"
)

const pinFile = "pin.json"

// PinFileStore keeps the scrypt record of the app PIN.
type PinFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPinFileStore returns a PinFileStore rooted at dir.
func NewPinFileStore(dir string) *PinFileStore {
	return &PinFileStore{dir: dir}
}

func (s *PinFileStore) SavePin(rec domain.PinRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, pinFile), rec)
}

func (s *PinFileStore) LoadPin() (domain.PinRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec domain.PinRecord
	ok, err := readJSON(filepath.Join(s.dir, pinFile), &rec)
	if err != nil || !ok {
		return domain.PinRecord{}, false, err
	}
	return rec, true, nil
}

func (s *PinFileStore) DeletePin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(filepath.Join(s.dir, pinFile))
}

var _ domain.PinStore = (*PinFileStore)(nil)
