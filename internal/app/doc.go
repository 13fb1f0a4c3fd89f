// Package app wires application dependencies for the CLI, the HTTP server
// and the Telegram bot.
//
// It resolves Config from flags, environment (SMARTA_*) and an optional
// config file, builds the logger, and constructs the file stores and
// services exposed through Wire.
package app
