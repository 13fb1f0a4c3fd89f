// Package pin implements the six-slot PIN entry and the two flows built on
// it: setup (create, then confirm) and verification (capped attempts).
//
// Input is modelled keystroke by keystroke, the way a slot-per-digit form
// behaves: typing a digit fills a slot and moves focus forward, backspace on
// an empty slot moves focus back. A PIN is submitted when the last slot
// receives a digit. Enter is a convenience that types a whole string into
// fresh slots and submits it, used by the CLI and HTTP transports.
//
// Verification delegates the credential check to a Verifier. AcceptAny keeps
// the demo behaviour where any six digits pass; internal/crypto provides a
// verifier backed by the stored scrypt record.
package pin
