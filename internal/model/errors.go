package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Team score errors
	ErrTeamScoreNotFound = errors.New("team score not found")

	// Storage errors
	// Wrapped around backend failures so callers can distinguish an
	// unavailable store from a missing record
	ErrStorageUnavailable = errors.New("storage unavailable")
)
