package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/bowltrack/internal/domain"
)

func TestParseScores(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"plain", "10 9 1 3 4", []int{10, 9, 1, 3, 4}},
		{"marks", "x 9 - X", []int{10, 9, 0, 10}},
		{"stops at word", "7 2 m 4", []int{7, 2}},
		{"stops at eleven", "5 11 3", []int{5}},
		{"stops at negative", "-1 4", nil},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScores(tt.input))
		})
	}
}

func TestParseCommand(t *testing.T) {
	cmd := ParseCommand("  Modify 3 10  ")
	assert.Equal(t, Command{Name: "modify", Args: []string{"3", "10"}}, cmd)
	assert.True(t, ParseCommand("").Empty())
}

func TestParseFrameThrows(t *testing.T) {
	frames, err := ParseFrameThrows("X | 9 1 | 3 4, 10 10 10")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10}, {9, 1}, {3, 4}, {10, 10, 10}}, frames)

	_, err = ParseFrameThrows("9 1 | 3 z")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}

	tests := []struct {
		input string
		want  domain.Date
	}{
		{"3-7-2023", domain.Date{Year: 2023, Month: time.March, Day: 7}},
		{"12/25/2022", domain.Date{Year: 2022, Month: time.December, Day: 25}},
		{"2021-1-2", domain.Date{Year: 2021, Month: time.January, Day: 2}},
		{"2021/11/30", domain.Date{Year: 2021, Month: time.November, Day: 30}},
		{"6-1", domain.Date{Year: 2024, Month: time.June, Day: 1}},
		{"6/30", domain.Date{Year: 2024, Month: time.June, Day: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, clock)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}

	for _, input := range []string{"", "13/45/2020", "not a date", "2/30"} {
		_, err := ParseDate(input, clock)
		assert.ErrorIs(t, err, ErrUnrecognisedDate, "input %q", input)
	}
}

func TestParseDateNaturalLanguage(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}

	got, err := ParseDate("yesterday", clock)
	require.NoError(t, err)
	assert.Equal(t, domain.Date{Year: 2024, Month: time.March, Day: 14}, got)

	got, err = ParseDate("Today", clock)
	require.NoError(t, err)
	assert.Equal(t, domain.Date{Year: 2024, Month: time.March, Day: 15}, got)
}
