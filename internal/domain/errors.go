package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrActionNotAllowed = errors.New("action not allowed on this screen")
	ErrEmptyMessage     = errors.New("message is empty")

	ErrIncompletePin   = errors.New("pin must be 6 digits")
	ErrPinMismatch     = errors.New("pin confirmation does not match")
	ErrWrongPin        = errors.New("wrong pin")
	ErrTooManyAttempts = errors.New("too many pin attempts")
	ErrNoPin           = errors.New("no pin set")

	ErrInvalidEmail  = errors.New("invalid email address")
	ErrWeakPassword  = errors.New("password too short")
	ErrWrongPassword = errors.New("wrong email or password")

	ErrAlreadyConnected = errors.New("account already connected")
	ErrNotConnected     = errors.New("account not connected")
	ErrAlreadyLinked    = errors.New("provider already linked")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrInvalidTimeout   = errors.New("unsupported session timeout")
)
