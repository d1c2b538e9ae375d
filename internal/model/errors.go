package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Domain lookup errors
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrUserNotFound   = errors.New("user not found")
)
