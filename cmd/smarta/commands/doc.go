// Package commands defines the smarta CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - status, start, terms, login, go, back, logout, reset
//     Walk the screen flow; state is kept under --home between runs.
//   - pin setup|skip|verify|change
//     Create, skip, verify or replace the 6-digit app PIN.
//   - transactions, insight, goals, notifications
//     Read the seeded financial figures.
//   - accounts list|providers|connect|disconnect|link
//     Manage linked bank and e-wallet accounts.
//   - coach ask|history|suggest
//     Talk to the finance coach.
//   - security show|set
//     Security toggles and the inactivity timeout.
//
// # Implementation
//
// The root command resolves configuration (flags, SMARTA_* environment and
// an optional config file) and builds the dependency graph before any
// subcommand runs; the post-run hook flushes pending coach replies.
package commands
