package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// repeatGame builds a game whose first nine frames are all nine and whose
// tenth frame is tenth.
func repeatGame(t *testing.T, number int, nine Frame, tenth Frame) Game {
	t.Helper()
	frames := make([]Frame, 0, FramesPerGame)
	for i := 0; i < FramesPerGame-1; i++ {
		frames = append(frames, nine)
	}
	frames = append(frames, tenth)
	g, err := NewGameWithFrames(number, frames)
	require.NoError(t, err)
	return g
}

func gameOf(t *testing.T, number int, frames ...Frame) Game {
	t.Helper()
	g, err := NewGameWithFrames(number, frames)
	require.NoError(t, err)
	return g
}

func perfectGame(t *testing.T) Game {
	return repeatGame(t, 1, TwoThrow(10, 0), ThreeThrow(10, 10, 10))
}

func alternatingGame(t *testing.T) Game {
	t.Helper()
	frames := make([]Frame, 0, FramesPerGame)
	for n := 1; n < FramesPerGame; n++ {
		if n%2 == 1 {
			frames = append(frames, TwoThrow(10, 0))
		} else {
			frames = append(frames, TwoThrow(9, 1))
		}
	}
	frames = append(frames, ThreeThrow(9, 1, 10))
	return gameOf(t, 2, frames...)
}

func nineSpareGame(t *testing.T) Game {
	return repeatGame(t, 3, TwoThrow(9, 1), ThreeThrow(9, 1, 10))
}

func fiveSpareGame(t *testing.T) Game {
	return repeatGame(t, 4, TwoThrow(5, 5), ThreeThrow(5, 5, 5))
}

func mixedGame(t *testing.T) Game {
	return gameOf(t, 1,
		TwoThrow(10, 0), TwoThrow(10, 0), TwoThrow(6, 3), TwoThrow(8, 1), TwoThrow(9, 1),
		TwoThrow(8, 0), TwoThrow(9, 0), TwoThrow(6, 2), TwoThrow(10, 0), ThreeThrow(10, 9, 1),
	)
}

// sampleGames returns seven complete games with known scores.
func sampleGames(t *testing.T) []Game {
	t.Helper()
	return []Game{
		perfectGame(t),
		alternatingGame(t),
		nineSpareGame(t),
		fiveSpareGame(t),
		repeatGame(t, 5, TwoThrow(4, 4), TwoThrow(4, 4)),
		repeatGame(t, 6, TwoThrow(2, 2), TwoThrow(2, 2)),
		repeatGame(t, 7, TwoThrow(0, 0), TwoThrow(0, 0)),
	}
}

var sampleScores = []int{300, 200, 191, 150, 80, 40, 0}
