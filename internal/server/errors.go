package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smarta/internal/coach"
	"smarta/internal/domain"
)

var statusBySentinel = []struct {
	err  error
	code int
}{
	{domain.ErrNotFound, fiber.StatusNotFound},
	{domain.ErrActionNotAllowed, fiber.StatusConflict},
	{domain.ErrAlreadyConnected, fiber.StatusConflict},
	{domain.ErrNotConnected, fiber.StatusConflict},
	{domain.ErrAlreadyLinked, fiber.StatusConflict},
	{domain.ErrNoPin, fiber.StatusConflict},
	{domain.ErrTooManyAttempts, fiber.StatusLocked},
	{domain.ErrWrongPin, fiber.StatusUnauthorized},
	{domain.ErrWrongPassword, fiber.StatusUnauthorized},
	{domain.ErrInvalidEmail, fiber.StatusUnprocessableEntity},
	{domain.ErrWeakPassword, fiber.StatusUnprocessableEntity},
	{domain.ErrIncompletePin, fiber.StatusUnprocessableEntity},
	{domain.ErrPinMismatch, fiber.StatusUnprocessableEntity},
	{domain.ErrInvalidTimeout, fiber.StatusUnprocessableEntity},
	{domain.ErrUnknownProvider, fiber.StatusUnprocessableEntity},
	{domain.ErrEmptyMessage, fiber.StatusUnprocessableEntity},
	{coach.ErrClosed, fiber.StatusServiceUnavailable},
}

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return fiber.StatusInternalServerError
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := StatusOf(err)
	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(errorBody{Error: err.Error()})
}

func badRequest(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
}
