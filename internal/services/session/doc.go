// Package session drives the app's screen flow together with the side
// effects each step needs.
//
// Login registers or checks credentials, PIN setup stores an scrypt record,
// PIN verification counts failed attempts across restarts, and a session
// left idle longer than the configured timeout is sent back to PIN
// verification (or login when no PIN was set) the next time it is loaded.
// All state is persisted through the domain stores.
package session
