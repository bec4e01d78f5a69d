package entry

import (
	"fmt"

	"github.com/bft-labs/bowltrack/internal/domain"
)

// Recorder builds a game one throw at a time, the way it is bowled.
//
// In frames 1..9 a strike closes the frame at once; otherwise the frame
// closes after two throws. Frame 10 takes a third throw when its first two
// reach ten pins.
type Recorder struct {
	game   domain.Game
	frame  int
	throws []int
}

// NewRecorder returns a recorder that resumes game at its first empty frame.
func NewRecorder(game domain.Game) *Recorder {
	return &Recorder{game: game, frame: game.CurrentFrame()}
}

// Frame returns the position of the frame being bowled, or 11 once the game
// is finished.
func (r *Recorder) Frame() int {
	return r.frame
}

// Done reports whether every frame has been recorded.
func (r *Recorder) Done() bool {
	return r.frame > domain.FramesPerGame
}

// Game returns the game as recorded so far.
func (r *Recorder) Game() domain.Game {
	return r.game
}

// Pending returns the throws of the current, unfinished frame.
func (r *Recorder) Pending() []int {
	out := make([]int, len(r.throws))
	copy(out, r.throws)
	return out
}

// PinsStanding returns how many pins are standing for the next throw.
func (r *Recorder) PinsStanding() int {
	switch len(r.throws) {
	case 0:
		return domain.Pins
	case 1:
		if r.throws[0] == domain.Pins {
			return domain.Pins
		}
		return domain.Pins - r.throws[0]
	default:
		first, second := r.throws[0], r.throws[1]
		switch {
		case first == domain.Pins && second == domain.Pins:
			return domain.Pins
		case first == domain.Pins:
			return domain.Pins - second
		default:
			// spare
			return domain.Pins
		}
	}
}

// Throw records pins for the next throw. completed is true when the throw
// closed a frame.
func (r *Recorder) Throw(pins int) (completed bool, err error) {
	if r.Done() {
		return false, ErrGameFinished
	}
	if pins < 0 {
		return false, fmt.Errorf("%w: %d", ErrTooManyPins, pins)
	}
	if standing := r.PinsStanding(); pins > standing {
		return false, fmt.Errorf("%w: %d thrown, %d standing", ErrTooManyPins, pins, standing)
	}
	r.throws = append(r.throws, pins)

	var f domain.Frame
	switch {
	case r.frame < domain.LastFrame && len(r.throws) == 1 && pins == domain.Pins:
		f = domain.TwoThrow(domain.Pins, 0)
	case r.frame < domain.LastFrame && len(r.throws) == 2:
		f = domain.TwoThrow(r.throws[0], r.throws[1])
	case r.frame == domain.LastFrame && len(r.throws) == 2 && r.throws[0]+r.throws[1] < domain.Pins:
		f = domain.TwoThrow(r.throws[0], r.throws[1])
	case r.frame == domain.LastFrame && len(r.throws) == 3:
		f = domain.ThreeThrow(r.throws[0], r.throws[1], r.throws[2])
	default:
		return false, nil
	}

	g, err := r.game.WithFrame(r.frame, f)
	if err != nil {
		return false, err
	}
	r.game = g
	r.throws = r.throws[:0]
	r.frame = g.CurrentFrame()
	return true, nil
}

// ThrowAll records each throw in order, stopping at the first error.
func (r *Recorder) ThrowAll(throws []int) error {
	for i, pins := range throws {
		if _, err := r.Throw(pins); err != nil {
			return fmt.Errorf("throw %d: %w", i+1, err)
		}
	}
	return nil
}

// Replace overwrites the already bowled frame n with the given throws.
func (r *Recorder) Replace(n int, throws []int) error {
	if n < 1 || n > domain.FramesPerGame {
		return fmt.Errorf("%w: %d", domain.ErrFramePosition, n)
	}
	existing, err := r.game.Frame(n)
	if err != nil {
		return err
	}
	if existing.IsEmpty() {
		return fmt.Errorf("%w: frame %d", ErrFrameNotBowled, n)
	}
	f := domain.FrameFromThrows(throws)
	if !f.IsValidAt(n) {
		return fmt.Errorf("%w: %v at frame %d", ErrInvalidFrame, throws, n)
	}
	g, err := r.game.WithFrame(n, f)
	if err != nil {
		return err
	}
	r.game = g
	return nil
}
