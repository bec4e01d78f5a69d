// Package entry turns keyboard input into domain values: throw lists,
// menu commands and dates, and records a game throw by throw.
package entry

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"

	"github.com/bft-labs/bowltrack/internal/domain"
)

// Command is a command word followed by its arguments.
type Command struct {
	Name string
	Args []string
}

// Empty reports whether no command word was entered.
func (c Command) Empty() bool {
	return c.Name == ""
}

// ParseCommand splits input on whitespace into a lower-cased command word
// and its arguments.
func ParseCommand(input string) Command {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}
}

// ParseScores reads the leading run of whitespace separated pin counts in
// input. Reading stops at the first token that is not an integer in 0..10.
func ParseScores(input string) []int {
	var scores []int
	for _, tok := range strings.Fields(input) {
		n, err := parseThrow(tok)
		if err != nil {
			break
		}
		scores = append(scores, n)
	}
	return scores
}

// parseThrow accepts a pin count, or the scoresheet marks X (strike) and
// - (gutter).
func parseThrow(tok string) (int, error) {
	switch strings.ToLower(tok) {
	case "x":
		return domain.Pins, nil
	case "-":
		return 0, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > domain.Pins {
		return 0, fmt.Errorf("%d is not a pin count", n)
	}
	return n, nil
}

// ParseFrameThrows parses frame groups separated by commas or pipes, for
// example "X | 9 1 | 10 | 10 9 1", into the raw throws of each frame.
func ParseFrameThrows(input string) ([][]int, error) {
	groups := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == '|' })
	frames := make([][]int, 0, len(groups))
	for i, g := range groups {
		fields := strings.Fields(g)
		throws := ParseScores(g)
		if len(throws) != len(fields) || len(throws) == 0 {
			return nil, fmt.Errorf("frame %d: cannot read %q as throws", i+1, strings.TrimSpace(g))
		}
		frames = append(frames, throws)
	}
	return frames, nil
}

var dateLayouts = []string{"1-2-2006", "1/2/2006", "2006-1-2", "2006/1/2"}

var yearlessLayouts = []string{"1-2", "1/2"}

// ParseDate reads a date typed by the user. Numeric forms are tried first
// (m-d-Y, m/d/Y, Y-m-d, Y/m/d, and m-d or m/d in the current year); after
// that natural phrases such as "today" or "last friday" are resolved
// against clock.
func ParseDate(input string, clock domain.Clock) (domain.Date, error) {
	input = strings.TrimSpace(input)
	now := clock.Now()

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return domain.DateOf(t), nil
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return domain.NewDate(now.Year(), t.Month(), t.Day())
		}
	}

	w := when.New(nil)
	w.Add(en.All...)
	r, err := w.Parse(strings.ToLower(input), now)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: %q: %v", ErrUnrecognisedDate, input, err)
	}
	if r == nil || strings.TrimSpace(r.Text) != strings.ToLower(input) {
		return domain.Date{}, fmt.Errorf("%w: %q", ErrUnrecognisedDate, input)
	}
	return domain.DateOf(r.Time.In(now.Location())), nil
}
