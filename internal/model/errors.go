package model

import "errors"

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNameTaken          = errors.New("name already taken")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidCredentials = errors.New("invalid name or password")

	// Session errors
	ErrNoActivePlayer = errors.New("no player is logged in")

	// Match errors
	ErrInvalidRounds = errors.New("number of rounds must be positive")
	ErrInvalidMove   = errors.New("invalid move")

	// Storage errors
	ErrCorruptRecord      = errors.New("corrupt profile record")
	ErrStorageUnavailable = errors.New("storage unavailable: profiles were not fully loaded")
)
