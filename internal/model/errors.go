package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
)
