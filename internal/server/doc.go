// Package server exposes the session flow, financial figures, linked
// accounts and the coach as a JSON API on fiber.
//
// Handlers return errors; a shared error handler maps domain sentinel
// errors onto HTTP status codes and writes {"error": "..."} bodies.
package server
