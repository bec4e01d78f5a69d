package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame(3)

	assert.Equal(t, 3, g.Number())
	assert.Len(t, g.Frames(), FramesPerGame)
	for _, f := range g.Frames() {
		assert.True(t, f.IsEmpty())
	}
	assert.Equal(t, GameEmpty, g.State())
	assert.False(t, g.IsValid())
}

func TestNewGameWithFramesRequiresTenFrames(t *testing.T) {
	_, err := NewGameWithFrames(1, []Frame{TwoThrow(1, 1)})
	require.ErrorIs(t, err, ErrFrameCount)
}

func TestNewGameFromThrows(t *testing.T) {
	throws := [][]int{{10}, {10}, {6, 3}, {8, 1}, {9, 1}, {8, 0}, {9, 0}, {6, 2}, {10}, {10, 9, 1}}

	g, err := NewGameFromThrows(1, throws)
	require.NoError(t, err)
	assert.Equal(t, mixedGame(t), g)
}

func TestGameFrameAccess(t *testing.T) {
	g := NewGame(1)

	_, err := g.Frame(0)
	require.ErrorIs(t, err, ErrFramePosition)
	_, err = g.WithFrame(11, TwoThrow(1, 1))
	require.ErrorIs(t, err, ErrFramePosition)

	updated, err := g.WithFrame(5, TwoThrow(10, 0))
	require.NoError(t, err)

	f, err := updated.Frame(5)
	require.NoError(t, err)
	assert.Equal(t, TwoThrow(10, 0), f)

	original, err := g.Frame(5)
	require.NoError(t, err)
	assert.True(t, original.IsEmpty(), "WithFrame must not modify the receiver")
}

func TestSampleGamesAreValid(t *testing.T) {
	for _, g := range sampleGames(t) {
		assert.True(t, g.IsValid(), "game %d", g.Number())
		assert.Equal(t, GameComplete, g.State(), "game %d", g.Number())
	}
	assert.True(t, mixedGame(t).IsValid())
}

func TestGameIsValidRejectsBadFrames(t *testing.T) {
	g := nineSpareGame(t)

	missingBonus, err := g.WithFrame(10, TwoThrow(9, 1))
	require.NoError(t, err)
	assert.False(t, missingBonus.IsValid())
	assert.Equal(t, GameInProgress, missingBonus.State())

	bonusEarly, err := g.WithFrame(4, ThreeThrow(10, 10, 10))
	require.NoError(t, err)
	assert.False(t, bonusEarly.IsValid())

	overfull, err := g.WithFrame(2, TwoThrow(7, 7))
	require.NoError(t, err)
	assert.False(t, overfull.IsValid())
}

func TestGameScore(t *testing.T) {
	for i, g := range sampleGames(t) {
		assert.Equal(t, sampleScores[i], g.Score(), "game %d", g.Number())
	}
	assert.Equal(t, 155, mixedGame(t).Score())
}

func TestGameScoreThroughCompleteGame(t *testing.T) {
	games := append(sampleGames(t), mixedGame(t))
	for _, g := range games {
		got, ok := g.ScoreThrough(FramesPerGame)
		require.True(t, ok, "game %d", g.Number())
		assert.Equal(t, g.Score(), got, "game %d", g.Number())
	}
}

func TestGameScoreThroughRunningTotals(t *testing.T) {
	g := mixedGame(t)
	want := []int{26, 45, 54, 63, 81, 89, 98, 106, 135, 155}

	for n := 1; n <= FramesPerGame; n++ {
		got, ok := g.ScoreThrough(n)
		require.True(t, ok, "frame %d", n)
		assert.Equal(t, want[n-1], got, "frame %d", n)
	}
}

// inProgress builds a game with frames 1..7 open (3,4) and the given frames
// from position 8 on; missing positions stay empty.
func inProgress(t *testing.T, rest ...Frame) Game {
	t.Helper()
	g := NewGame(1)
	var err error
	for n := 1; n <= 7; n++ {
		g, err = g.WithFrame(n, TwoThrow(3, 4))
		require.NoError(t, err)
	}
	for i, f := range rest {
		g, err = g.WithFrame(8+i, f)
		require.NoError(t, err)
	}
	return g
}

func TestGameScoreThroughPartial(t *testing.T) {
	tests := []struct {
		name   string
		game   Game
		frame  int
		want   int
		wantOK bool
	}{
		{
			name:   "open frames resolve immediately",
			game:   inProgress(t),
			frame:  7,
			want:   49,
			wantOK: true,
		},
		{
			name:  "strike in eighth waits for ninth",
			game:  inProgress(t, TwoThrow(10, 0)),
			frame: 8,
		},
		{
			name:  "empty frame is undefined",
			game:  inProgress(t),
			frame: 8,
		},
		{
			name:  "double strike waits for tenth",
			game:  inProgress(t, TwoThrow(10, 0), TwoThrow(10, 0)),
			frame: 8,
		},
		{
			name:   "double strike resolved by tenth",
			game:   inProgress(t, TwoThrow(10, 0), TwoThrow(10, 0), ThreeThrow(10, 10, 10)),
			frame:  8,
			want:   79,
			wantOK: true,
		},
		{
			name:   "strike then open ninth",
			game:   inProgress(t, TwoThrow(10, 0), TwoThrow(3, 4)),
			frame:  9,
			want:   73,
			wantOK: true,
		},
		{
			name:  "tenth not yet bowled",
			game:  inProgress(t, TwoThrow(10, 0), TwoThrow(3, 4)),
			frame: 10,
		},
		{
			name:  "spare in ninth waits for tenth",
			game:  inProgress(t, TwoThrow(3, 4), TwoThrow(9, 1)),
			frame: 9,
		},
		{
			name:   "spare in ninth does not block eighth",
			game:   inProgress(t, TwoThrow(3, 4), TwoThrow(9, 1)),
			frame:  8,
			want:   56,
			wantOK: true,
		},
		{
			name:  "tenth spare without bonus",
			game:  inProgress(t, TwoThrow(3, 4), TwoThrow(9, 1), TwoThrow(5, 5)),
			frame: 9,
		},
		{
			name:  "invalid earlier frame",
			game:  inProgress(t, TwoThrow(6, 6)),
			frame: 8,
		},
		{
			name:  "frame zero",
			game:  mixedGame(t),
			frame: 0,
		},
		{
			name:  "frame eleven",
			game:  mixedGame(t),
			frame: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.game.ScoreThrough(tt.frame)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameStatistics(t *testing.T) {
	tests := []struct {
		name                        string
		game                        Game
		pins                        int
		strikes, spares             int
		strikeChances, spareChances int
		open                        int
		firstBall                   float64
	}{
		{
			name: "perfect", game: perfectGame(t),
			pins: 120, strikes: 12, spares: 0, strikeChances: 12, spareChances: 0, open: 0, firstBall: 10,
		},
		{
			name: "nine spares", game: nineSpareGame(t),
			pins: 110, strikes: 1, spares: 10, strikeChances: 10, spareChances: 10, open: 0, firstBall: 9,
		},
		{
			name: "alternating", game: alternatingGame(t),
			pins: 110, strikes: 6, spares: 5, strikeChances: 10, spareChances: 5, open: 0, firstBall: 9.5,
		},
		{
			name: "gutter", game: repeatGame(t, 1, TwoThrow(0, 0), TwoThrow(0, 0)),
			pins: 0, strikes: 0, spares: 0, strikeChances: 10, spareChances: 10, open: 10, firstBall: 0,
		},
		{
			name: "mixed", game: mixedGame(t),
			pins: 103, strikes: 4, spares: 2, strikeChances: 11, spareChances: 7, open: 5, firstBall: 8.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.game
			assert.Equal(t, tt.pins, g.PinCount(), "PinCount")
			assert.Equal(t, tt.strikes, g.NumStrikes(), "NumStrikes")
			assert.Equal(t, tt.spares, g.NumSpares(), "NumSpares")
			assert.Equal(t, tt.strikeChances, g.StrikeChances(), "StrikeChances")
			assert.Equal(t, tt.spareChances, g.SpareChances(), "SpareChances")
			assert.Equal(t, tt.open, g.OpenFrames(), "OpenFrames")
			assert.Equal(t, FramesPerGame-tt.open, g.CleanFrames(), "CleanFrames")
			assert.InDelta(t, tt.firstBall, g.AvgFirstBallPinfall(), 1e-9, "AvgFirstBallPinfall")
		})
	}
}

func TestGameCurrentFrame(t *testing.T) {
	assert.Equal(t, 1, NewGame(1).CurrentFrame())
	assert.Equal(t, 8, inProgress(t).CurrentFrame())
	assert.Equal(t, 11, perfectGame(t).CurrentFrame())
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "in-progress", GameInProgress.String())
}
