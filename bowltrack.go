// Package bowltrack scores ten-pin bowling games and aggregates them into
// per-date sessions.
//
// Example usage:
//
//	g, err := bowltrack.GameFromThrows(1, [][]int{
//	    {10}, {9, 1}, {7, 2}, {10}, {10}, {8, 1}, {0, 10}, {10}, {6, 3}, {10, 9, 1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Score())
//
//	s := bowltrack.NewSession(bowltrack.Date{Year: 2024, Month: time.May, Day: 4})
//	s.AddGame(g)
//	fmt.Println(s.Stats().Average)
package bowltrack

import (
	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/scoresheet"
)

// Frame is one frame of a game: empty, two throws, or three throws in the
// tenth frame.
type Frame = domain.Frame

// Game is ten frames with a 1-based number inside its session.
type Game = domain.Game

// Session is the games bowled on one date.
type Session = domain.Session

// SessionStats holds a session's averages and rates.
type SessionStats = domain.SessionStats

// Date is a calendar date without time of day.
type Date = domain.Date

// Game sizes.
const (
	FramesPerGame = domain.FramesPerGame
	Pins          = domain.Pins
)

// Errors returned by the scoring core.
var (
	ErrFramePosition = domain.ErrFramePosition
	ErrFrameCount    = domain.ErrFrameCount
	ErrGameNotFound  = domain.ErrGameNotFound
	ErrInvalidGame   = domain.ErrInvalidGame
)

// EmptyFrame returns a frame with no throws recorded.
func EmptyFrame() Frame { return domain.EmptyFrame() }

// TwoThrow returns a two-throw frame. A strike in frames 1..9 is TwoThrow(10, 0).
func TwoThrow(first, second int) Frame { return domain.TwoThrow(first, second) }

// ThreeThrow returns a tenth frame with a bonus throw.
func ThreeThrow(first, second, third int) Frame { return domain.ThreeThrow(first, second, third) }

// NewGame returns a game with every frame empty.
func NewGame(number int) Game { return domain.NewGame(number) }

// GameFromFrames builds a game from exactly ten frames.
func GameFromFrames(number int, frames []Frame) (Game, error) {
	return domain.NewGameWithFrames(number, frames)
}

// GameFromThrows builds a game from the throws of each of its ten frames.
// A lone 10 stands for a strike.
func GameFromThrows(number int, throws [][]int) (Game, error) {
	return domain.NewGameFromThrows(number, throws)
}

// NewSession returns an empty session for date.
func NewSession(date Date) *Session { return domain.NewSession(date) }

// Scoresheet renders g as a text scoresheet with running totals.
func Scoresheet(g Game) string { return scoresheet.Render(g) }
