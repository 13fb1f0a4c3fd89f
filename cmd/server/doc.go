// Command server runs the SMARTA JSON API.
//
// It serves the HTTP API on --addr, a gRPC health service on --grpc-addr
// and, when a token is configured, a Telegram bot that forwards chat to
// the coach. All state lives under --home, shared with the smarta CLI.
//
// Usage:
//
//	server [--home DIR] [--addr :8080] [--grpc-addr :50051] [--telegram-token TOKEN]
//
// Every flag can also be set through SMARTA_* environment variables.
package main
