package store

import "path/filepath"

// Wipe removes every file the stores in this package write under dir.
// Unrelated files are left alone.
func Wipe(dir string) error {
	for _, name := range []string{sessionFile, pinFile, credentialsFile, securityFile, accountsFile, chatFile} {
		if err := removeFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
