// Package banking manages the bank and e-wallet accounts shown on the link
// banking screen. The list is seeded on first use and persisted after every
// change.
package banking
