// Package crypto holds the credential primitives used by SMARTA.
//
// Contents
//
//   - PIN records: scrypt-derived hashes with per-record salt and stored
//     parameters (HashPin, CheckPin), and a pin.Verifier backed by a
//     domain.PinStore (HashVerifier)
//   - Login passwords: bcrypt hashing and comparison (HashPassword,
//     CheckPassword)
//   - Best-effort memory wiping for derived key material (Wipe)
//
// # Notes
//
// Nothing here is reversible: PINs and passwords are stored as one-way
// hashes only, and comparisons run in constant time.
package crypto
