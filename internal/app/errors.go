package app

import "errors"

var (
	// ErrInvalidTransition is returned when a follower is asked to move to a
	// state it cannot reach from its current one, such as running twice.
	ErrInvalidTransition = errors.New("bowltrack: invalid follower state transition")

	// ErrShutdownTimeout is returned when the follower does not stop in time.
	ErrShutdownTimeout = errors.New("bowltrack: shutdown timed out")
)
