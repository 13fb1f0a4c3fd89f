// Package coach answers finance questions from a fixed set of keyword
// matched replies and keeps the chat transcript those replies land in.
package coach
