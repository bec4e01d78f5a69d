package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	d, err := NewDate(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024/02/29", d.String())
	assert.Equal(t, "2024-02-29", d.Key())

	_, err = NewDate(2023, time.February, 29)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseKey(t *testing.T) {
	d, err := ParseKey("2024-02-05")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 5}, d)

	_, err = ParseKey("02/05/2024")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateCompare(t *testing.T) {
	a := Date{Year: 2024, Month: time.February, Day: 5}
	b := Date{Year: 2024, Month: time.March, Day: 1}
	c := Date{Year: 2023, Month: time.December, Day: 31}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, c.Before(a))
	assert.False(t, b.Before(a))
}

func TestTodayUsesInjectedClock(t *testing.T) {
	clock := FixedClock{At: time.Date(2025, time.July, 4, 23, 30, 0, 0, time.UTC)}

	assert.Equal(t, Date{Year: 2025, Month: time.July, Day: 4}, Today(clock))
	assert.True(t, Date{}.IsZero())
}
