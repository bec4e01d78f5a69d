package domain

import "fmt"

// GameState describes how far a game has been recorded.
type GameState uint8

const (
	// GameEmpty means no frame has been recorded.
	GameEmpty GameState = iota
	// GameInProgress means some frames are recorded, or all are but the game is not valid.
	GameInProgress
	// GameComplete means all ten frames are recorded and the game is valid.
	GameComplete
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case GameEmpty:
		return "empty"
	case GameInProgress:
		return "in-progress"
	case GameComplete:
		return "complete"
	}
	return "unknown"
}

// Game is one game of ten frames. Number is its 1-based position within a
// session.
//
// Game is a value type; WithFrame returns a copy with one frame replaced.
type Game struct {
	number int
	frames [FramesPerGame]Frame
}

// NewGame returns a game with all frames empty.
func NewGame(number int) Game {
	return Game{number: number}
}

// NewGameWithFrames returns a game built from exactly ten frames.
func NewGameWithFrames(number int, frames []Frame) (Game, error) {
	if len(frames) != FramesPerGame {
		return Game{}, fmt.Errorf("%w: got %d", ErrFrameCount, len(frames))
	}
	g := Game{number: number}
	copy(g.frames[:], frames)
	return g, nil
}

// NewGameFromThrows builds a game from the raw throws of each frame, using
// FrameFromThrows per frame.
func NewGameFromThrows(number int, throws [][]int) (Game, error) {
	frames := make([]Frame, len(throws))
	for i, t := range throws {
		frames[i] = FrameFromThrows(t)
	}
	return NewGameWithFrames(number, frames)
}

// Number returns the game's 1-based number.
func (g Game) Number() int {
	return g.number
}

// WithNumber returns a copy of g with a different game number.
func (g Game) WithNumber(number int) Game {
	g.number = number
	return g
}

// Frames returns a copy of the ten frames in order.
func (g Game) Frames() []Frame {
	out := make([]Frame, FramesPerGame)
	copy(out, g.frames[:])
	return out
}

// Frame returns the frame at position n (1..10).
func (g Game) Frame(n int) (Frame, error) {
	if n < 1 || n > FramesPerGame {
		return Frame{}, fmt.Errorf("%w: %d", ErrFramePosition, n)
	}
	return g.frames[n-1], nil
}

// WithFrame returns a copy of g with the frame at position n replaced.
func (g Game) WithFrame(n int, f Frame) (Game, error) {
	if n < 1 || n > FramesPerGame {
		return g, fmt.Errorf("%w: %d", ErrFramePosition, n)
	}
	g.frames[n-1] = f
	return g, nil
}

// at returns the frame at position n; callers guarantee 1 <= n <= 10.
func (g Game) at(n int) Frame {
	return g.frames[n-1]
}

// IsValid reports whether every frame is legally recorded for its position.
// A game with any empty frame is not valid.
func (g Game) IsValid() bool {
	for n := 1; n <= FramesPerGame; n++ {
		if !g.at(n).IsValidAt(n) {
			return false
		}
	}
	return true
}

// State reports whether the game is empty, in progress or complete.
func (g Game) State() GameState {
	recorded := 0
	for _, f := range g.frames {
		if !f.IsEmpty() {
			recorded++
		}
	}
	switch {
	case recorded == 0:
		return GameEmpty
	case recorded == FramesPerGame && g.IsValid():
		return GameComplete
	}
	return GameInProgress
}

// CurrentFrame returns the position of the first empty frame, or 11 when
// every frame has been recorded.
func (g Game) CurrentFrame() int {
	for n := 1; n <= FramesPerGame; n++ {
		if g.at(n).IsEmpty() {
			return n
		}
	}
	return FramesPerGame + 1
}

// Score returns the full-game total.
//
// A strike in frames 1..8 earns the next frame's pins, or 10 plus the first
// throw two frames ahead when the next frame is also a strike. A spare earns
// the next frame's first throw. Frame 9 takes its bonus from the tenth
// frame's first one or two throws, and the tenth frame counts its own pins.
// The result is only meaningful for a valid game.
func (g Game) Score() int {
	score := 0
	for n := 1; n <= FramesPerGame; n++ {
		score += g.frameValue(n)
	}
	return score
}

// frameValue is the pins of frame n plus its bonus, without validity checks.
func (g Game) frameValue(n int) int {
	f := g.at(n)
	value := f.Score()
	if n == LastFrame {
		return value
	}
	next := g.at(n + 1)
	switch {
	case f.IsStrike() && n == LastFrame-1:
		value += next.first() + next.second()
	case f.IsStrike() && next.IsStrike():
		value += Pins + g.at(n+2).first()
	case f.IsStrike():
		value += next.Score()
	case f.IsSpare():
		value += next.first()
	}
	return value
}

// ScoreThrough returns the running score after frame n (1..10).
//
// ok is false when the score is not yet known: when frame n or an earlier
// frame is not legally recorded, or when a strike or spare needs bonus
// throws from a frame that is not legally recorded yet. A strike in frame 8
// therefore needs frames 9 and 10; a spare in frame 9 needs frame 10.
func (g Game) ScoreThrough(n int) (score int, ok bool) {
	if n < 1 || n > FramesPerGame {
		return 0, false
	}
	for pos := 1; pos <= n; pos++ {
		if !g.resolvable(pos) {
			return 0, false
		}
		score += g.frameValue(pos)
	}
	return score, true
}

// resolvable reports whether frame n and every frame its bonus reads from
// are valid at their positions.
func (g Game) resolvable(n int) bool {
	f := g.at(n)
	if !f.IsValidAt(n) {
		return false
	}
	if n == LastFrame || f.IsOpen() {
		return true
	}
	next := g.at(n + 1)
	if !next.IsValidAt(n + 1) {
		return false
	}
	if f.IsStrike() && next.IsStrike() && n+1 < LastFrame {
		return g.at(n + 2).IsValidAt(n + 2)
	}
	return true
}

// PinCount returns the raw number of pins knocked down across all frames,
// ignoring bonus scoring.
func (g Game) PinCount() int {
	total := 0
	for _, f := range g.frames {
		total += f.Score()
	}
	return total
}

// NumStrikes counts strikes across the game; a three-throw tenth frame may
// contribute up to three.
func (g Game) NumStrikes() int {
	return g.sum(Frame.NumStrikes)
}

// NumSpares counts spares across the game.
func (g Game) NumSpares() int {
	return g.sum(Frame.NumSpares)
}

// StrikeChances sums the frames' strike opportunities.
func (g Game) StrikeChances() int {
	return g.sum(Frame.StrikeChances)
}

// SpareChances sums the frames' spare opportunities.
func (g Game) SpareChances() int {
	return g.sum(Frame.SpareChances)
}

// OpenFrames counts frames that are neither a strike nor a spare.
func (g Game) OpenFrames() int {
	open := 0
	for _, f := range g.frames {
		if f.IsOpen() {
			open++
		}
	}
	return open
}

// CleanFrames counts frames that are a strike or a spare.
func (g Game) CleanFrames() int {
	return FramesPerGame - g.OpenFrames()
}

// AvgFirstBallPinfall is the mean first-throw pin count over the ten frames.
func (g Game) AvgFirstBallPinfall() float64 {
	total := 0
	for _, f := range g.frames {
		total += f.first()
	}
	return float64(total) / FramesPerGame
}

func (g Game) sum(count func(Frame) int) int {
	total := 0
	for _, f := range g.frames {
		total += count(f)
	}
	return total
}

// Equal reports whether two games have the same number and frames.
func (g Game) Equal(o Game) bool {
	return g == o
}
