package domain

import "errors"

// Domain errors represent error conditions in the bowltrack domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrFramePosition is returned when a frame number outside 1..10 is used.
	ErrFramePosition = errors.New("bowltrack: frame number out of range")

	// ErrFrameCount is returned when a game is built from a frame list whose
	// length is not FramesPerGame.
	ErrFrameCount = errors.New("bowltrack: a game has exactly ten frames")

	// ErrGameNotFound is returned when a session has no game with the given number.
	ErrGameNotFound = errors.New("bowltrack: game not found")

	// ErrSessionNotFound is returned by repositories when no session is stored for a date.
	ErrSessionNotFound = errors.New("bowltrack: session not found")

	// ErrInvalidGame is returned when a caller tries to store a game that is not valid.
	ErrInvalidGame = errors.New("bowltrack: invalid game")

	// ErrInvalidDate is returned when a year/month/day triple is not a calendar date.
	ErrInvalidDate = errors.New("bowltrack: invalid date")
)
