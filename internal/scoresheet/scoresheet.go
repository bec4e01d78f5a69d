// Package scoresheet renders a game as a text scoresheet: frame numbers,
// the throws marked the way a bowling alley prints them, and the running
// score under each frame.
package scoresheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/bowltrack/internal/domain"
)

const (
	frameWidth     = 5
	lastFrameWidth = 7
)

// Marks returns the printed marks for the throws of frame f at position n:
// X for a strike, / for a spare, - for a gutter ball. A strike in frames
// 1..9 prints as a single X in the second box. An empty frame has no marks.
func Marks(f domain.Frame, n int) []string {
	if f.IsEmpty() {
		return nil
	}
	if n < domain.LastFrame && f.IsStrike() {
		return []string{" ", "X"}
	}

	throws := f.Throws()
	marks := make([]string, 0, len(throws))
	standing, fresh := domain.Pins, true
	for _, pins := range throws {
		switch {
		case pins == standing && fresh:
			marks = append(marks, "X")
		case pins == standing:
			marks = append(marks, "/")
		case pins == 0:
			marks = append(marks, "-")
		default:
			marks = append(marks, strconv.Itoa(pins))
		}
		if pins >= standing {
			standing, fresh = domain.Pins, true
		} else {
			standing, fresh = standing-pins, false
		}
	}
	return marks
}

// Render returns the scoresheet for g. Running totals that are not yet
// known are left blank.
func Render(g domain.Game) string {
	var b strings.Builder
	_ = Write(&b, g)
	return b.String()
}

// Write prints the scoresheet for g to w.
func Write(w io.Writer, g domain.Game) error {
	frames := g.Frames()

	var border, numbers, throws, totals strings.Builder
	border.WriteString("+")
	numbers.WriteString("|")
	throws.WriteString("|")
	totals.WriteString("|")

	for i, f := range frames {
		n := i + 1
		width := frameWidth
		if n == domain.LastFrame {
			width = lastFrameWidth
		}

		border.WriteString(strings.Repeat("-", width) + "+")
		numbers.WriteString(cell(width, strconv.Itoa(n)))
		throws.WriteString(markCell(width, Marks(f, n)))

		total := ""
		if score, ok := g.ScoreThrough(n); ok {
			total = strconv.Itoa(score)
		}
		totals.WriteString(cell(width, total))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n",
		border.String(), numbers.String(), throws.String(), totals.String(), border.String())
	return err
}

// cell right-aligns s inside a box of the given width, followed by the
// closing bar.
func cell(width int, s string) string {
	return fmt.Sprintf("%*s |", width-1, s)
}

// markCell lays out one mark per throw box, padding missing throws.
func markCell(width int, marks []string) string {
	boxes := (width - 1) / 2
	var b strings.Builder
	for i := 0; i < boxes; i++ {
		m := " "
		if i < len(marks) {
			m = marks[i]
		}
		b.WriteString(" " + m)
	}
	b.WriteString(" |")
	return b.String()
}
