package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUser       = errors.New("unknown user")
	ErrInvalidRole       = errors.New("invalid role")

	// Credential and ban errors
	ErrWrongPassword = errors.New("wrong password")
	ErrBanned        = errors.New("user is banned")
	ErrAlreadyBanned = errors.New("user is already banned")

	// Ledger errors
	ErrUnknownBet = errors.New("unknown bet")

	// Session and authorization errors
	ErrNotLoggedIn = errors.New("no active session")
	ErrNotRegular  = errors.New("operation requires a regular user session")
	ErrNotAdmin    = errors.New("operation requires an admin session")
)
