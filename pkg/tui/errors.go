package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoRenderer is returned when a preview format has no registered renderer.
	ErrNoRenderer = errors.New("tui: renderer not registered")
)

// ErrInvalidChoice is returned when a driver reports an index outside the
// offered options.
var ErrInvalidChoice = errors.New("tui: choice out of range")
