package models

import "errors"

var (
	// ErrValidation rejects bad input before any state is written.
	ErrValidation = errors.New("validation error")
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition means the payment request is already terminal.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrExpired means the payment window has closed while still pending.
	ErrExpired = errors.New("payment request expired")
)
