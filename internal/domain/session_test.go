package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionDate = Date{Year: 2024, Month: time.February, Day: 5}

func sampleSession(t *testing.T) *Session {
	t.Helper()
	return NewSessionWithGames(sessionDate, sampleGames(t))
}

func TestNewSession(t *testing.T) {
	s := NewSession(sessionDate)

	assert.Equal(t, sessionDate, s.Date())
	assert.Zero(t, s.Len())
	assert.Equal(t, 1, s.NextNumber())
	assert.True(t, s.IsValid(), "an empty session has nothing invalid in it")
}

func TestSessionAddGameNumbersSequentially(t *testing.T) {
	s := NewSession(sessionDate)
	games := sampleGames(t)

	for _, g := range games {
		s.AddGame(g.WithNumber(42))
	}

	require.Equal(t, len(games), s.Len())
	for i, g := range s.Games() {
		assert.Equal(t, i+1, g.Number())
		assert.Equal(t, games[i].Frames(), g.Frames())
	}
	assert.True(t, s.IsValid())
}

func TestSessionIsValidRejectsBadNumbering(t *testing.T) {
	games := sampleGames(t)
	games[2] = games[2].WithNumber(9)

	assert.False(t, NewSessionWithGames(sessionDate, games).IsValid())
}

func TestSessionIsValidRejectsInvalidGame(t *testing.T) {
	s := NewSession(sessionDate)
	s.AddGame(NewGame(1))

	assert.False(t, s.IsValid())
}

func TestSessionAverage(t *testing.T) {
	s := sampleSession(t)

	sum := 0
	for _, score := range sampleScores {
		sum += score
	}
	assert.InDelta(t, float64(sum)/float64(len(sampleScores)), s.Average(), 1e-9)
}

func TestSessionRates(t *testing.T) {
	s := sampleSession(t)

	var strikes, strikeChances, spares, spareChances, open, clean int
	var firstBall float64
	for _, g := range sampleGames(t) {
		strikes += g.NumStrikes()
		strikeChances += g.StrikeChances()
		spares += g.NumSpares()
		spareChances += g.SpareChances()
		open += g.OpenFrames()
		clean += g.CleanFrames()
		firstBall += g.AvgFirstBallPinfall()
	}
	frames := float64(len(sampleScores) * FramesPerGame)

	assert.InDelta(t, float64(strikes)/float64(strikeChances), s.StrikeRate(), 1e-9)
	assert.InDelta(t, float64(spares)/float64(spareChances), s.SpareRate(), 1e-9)
	assert.InDelta(t, float64(open)/frames, s.OpenFrameRate(), 1e-9)
	assert.InDelta(t, float64(clean)/frames, s.CleanFrameRate(), 1e-9)
	assert.InDelta(t, firstBall/float64(len(sampleScores)), s.AvgFirstBallPinfall(), 1e-9)
	assert.InDelta(t, 1.0, s.OpenFrameRate()+s.CleanFrameRate(), 1e-9)
}

func TestSessionPerfectGameRates(t *testing.T) {
	s := NewSession(sessionDate)
	s.AddGame(perfectGame(t))

	assert.Equal(t, 300.0, s.Average())
	assert.Equal(t, 1.0, s.StrikeRate())
	assert.Equal(t, 0.0, s.SpareRate(), "no spare chances in a perfect game")
	assert.Equal(t, 0.0, s.OpenFrameRate())
	assert.Equal(t, 1.0, s.CleanFrameRate())
}

func TestEmptySessionStatisticsAreZero(t *testing.T) {
	got := NewSession(sessionDate).Stats()

	if diff := cmp.Diff(SessionStats{}, got); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionStats(t *testing.T) {
	s := sampleSession(t)
	got := s.Stats()

	want := SessionStats{
		Games:               7,
		Average:             s.Average(),
		HighGame:            300,
		LowGame:             0,
		PinCount:            120 + 110 + 110 + 105 + 80 + 40 + 0,
		StrikeRate:          s.StrikeRate(),
		SpareRate:           s.SpareRate(),
		OpenFrameRate:       s.OpenFrameRate(),
		CleanFrameRate:      s.CleanFrameRate(),
		AvgFirstBallPinfall: s.AvgFirstBallPinfall(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionReplaceAndRemoveGame(t *testing.T) {
	s := sampleSession(t)

	replacement := mixedGame(t).WithNumber(2)
	require.NoError(t, s.ReplaceGame(replacement))
	g, err := s.Game(2)
	require.NoError(t, err)
	assert.Equal(t, 155, g.Score())

	require.ErrorIs(t, s.ReplaceGame(mixedGame(t).WithNumber(8)), ErrGameNotFound)

	removed, err := s.RemoveGame(1)
	require.NoError(t, err)
	assert.Equal(t, 300, removed.Score())
	assert.Equal(t, 6, s.Len())
	assert.True(t, s.IsValid(), "remaining games are renumbered")

	first, err := s.Game(1)
	require.NoError(t, err)
	assert.Equal(t, 155, first.Score())

	_, err = s.RemoveGame(0)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestSessionGamesReturnsCopy(t *testing.T) {
	s := sampleSession(t)

	games := s.Games()
	games[0] = NewGame(1)

	g, err := s.Game(1)
	require.NoError(t, err)
	assert.Equal(t, 300, g.Score())
}
