package sim

import "errors"

var (
	// ErrInvalidIterationCount indicates a simulation was requested with
	// fewer than one iteration.
	ErrInvalidIterationCount = errors.New("invalid iteration count")

	// ErrNoPlayers indicates a simulation config without any players.
	ErrNoPlayers = errors.New("no players configured")
)
