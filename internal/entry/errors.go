package entry

import "errors"

var (
	// ErrGameFinished is returned when a throw is recorded after frame 10 is complete.
	ErrGameFinished = errors.New("entry: game already finished")

	// ErrTooManyPins is returned when a throw knocks down more pins than are standing.
	ErrTooManyPins = errors.New("entry: more pins than are standing")

	// ErrFrameNotBowled is returned when replacing a frame that has not been bowled yet.
	ErrFrameNotBowled = errors.New("entry: frame not bowled yet")

	// ErrInvalidFrame is returned when replacement throws do not form a legal frame.
	ErrInvalidFrame = errors.New("entry: invalid frame")

	// ErrUnrecognisedDate is returned when a date string matches no known format.
	ErrUnrecognisedDate = errors.New("entry: unrecognised date")
)

// ErrQuit is returned by Prompt.Record when the player quits before the
// game is finished.
var ErrQuit = errors.New("entry: recording abandoned")
