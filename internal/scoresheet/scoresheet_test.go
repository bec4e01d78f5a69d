package scoresheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/bowltrack/internal/domain"
)

func gameOf(t *testing.T, throws ...[]int) domain.Game {
	t.Helper()
	for len(throws) < domain.FramesPerGame {
		throws = append(throws, nil)
	}
	g, err := domain.NewGameFromThrows(1, throws)
	require.NoError(t, err)
	return g
}

func TestMarks(t *testing.T) {
	tests := []struct {
		name  string
		frame domain.Frame
		pos   int
		want  []string
	}{
		{"strike", domain.TwoThrow(10, 0), 1, []string{" ", "X"}},
		{"spare", domain.TwoThrow(9, 1), 2, []string{"9", "/"}},
		{"gutter spare", domain.TwoThrow(0, 10), 3, []string{"-", "/"}},
		{"open", domain.TwoThrow(7, 0), 4, []string{"7", "-"}},
		{"double gutter", domain.TwoThrow(0, 0), 5, []string{"-", "-"}},
		{"empty", domain.EmptyFrame(), 6, nil},
		{"turkey in tenth", domain.ThreeThrow(10, 10, 10), 10, []string{"X", "X", "X"}},
		{"strike then spare", domain.ThreeThrow(10, 3, 7), 10, []string{"X", "3", "/"}},
		{"spare then strike", domain.ThreeThrow(0, 10, 10), 10, []string{"-", "/", "X"}},
		{"strike then open", domain.ThreeThrow(10, 8, 0), 10, []string{"X", "8", "-"}},
		{"open tenth", domain.TwoThrow(4, 5), 10, []string{"4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Marks(tt.frame, tt.pos))
		})
	}
}

func TestRenderPerfectGame(t *testing.T) {
	throws := make([][]int, 0, domain.FramesPerGame)
	for n := 1; n < domain.FramesPerGame; n++ {
		throws = append(throws, []int{10})
	}
	throws = append(throws, []int{10, 10, 10})
	g := gameOf(t, throws...)

	want := strings.Join([]string{
		"+-----+-----+-----+-----+-----+-----+-----+-----+-----+-------+",
		"|   1 |   2 |   3 |   4 |   5 |   6 |   7 |   8 |   9 |    10 |",
		"|   X |   X |   X |   X |   X |   X |   X |   X |   X | X X X |",
		"|  30 |  60 |  90 | 120 | 150 | 180 | 210 | 240 | 270 |   300 |",
		"+-----+-----+-----+-----+-----+-----+-----+-----+-----+-------+",
		"",
	}, "\n")
	assert.Equal(t, want, Render(g))
}

func TestRenderLeavesUnknownTotalsBlank(t *testing.T) {
	g := gameOf(t, []int{3, 4}, []int{9, 1}, []int{10})

	want := strings.Join([]string{
		"+-----+-----+-----+-----+-----+-----+-----+-----+-----+-------+",
		"|   1 |   2 |   3 |   4 |   5 |   6 |   7 |   8 |   9 |    10 |",
		"| 3 4 | 9 / |   X |     |     |     |     |     |     |       |",
		"|   7 |  27 |     |     |     |     |     |     |     |       |",
		"+-----+-----+-----+-----+-----+-----+-----+-----+-----+-------+",
		"",
	}, "\n")
	assert.Equal(t, want, Render(g))
}
