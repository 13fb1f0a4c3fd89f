// Package store provides file-based persistence for SMARTA's local state.
//
// Each store implements one of the domain storage interfaces and keeps a
// single JSON file under the configured home directory. Writes go through a
// temp file and an atomic rename; all methods are safe for concurrent use.
//
// Files:
//   - session.json (SessionFileStore)
//   - pin.json (PinFileStore)
//   - credentials.json (CredentialFileStore)
//   - security.json (SettingsFileStore)
//   - accounts.json (AccountFileStore)
//   - chat.json (ChatFileStore)
package store
