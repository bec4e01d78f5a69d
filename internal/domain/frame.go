package domain

import (
	"strconv"
	"strings"
)

const (
	// FramesPerGame is the number of frames in a game of ten-pin.
	FramesPerGame = 10

	// Pins is the number of pins in a full rack.
	Pins = 10

	// LastFrame is the position of the frame that may carry a bonus throw.
	LastFrame = FramesPerGame
)

// Shape tags which of the three frame variants a Frame holds.
type Shape uint8

const (
	// ShapeEmpty means no throws have been recorded yet.
	ShapeEmpty Shape = iota
	// ShapeTwo holds two throws: frames 1..9, or an open tenth frame.
	ShapeTwo
	// ShapeThree holds three throws: a tenth frame after a strike or spare.
	ShapeThree
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeTwo:
		return "two-throw"
	case ShapeThree:
		return "three-throw"
	}
	return "unknown"
}

// Frame is the set of throws recorded in one frame of a game.
//
// A Frame is a value: it is never mutated after construction. Whether it is
// legal depends on where it sits in a game, so the position is passed to
// IsValidAt rather than stored in the frame.
type Frame struct {
	shape  Shape
	throws [3]int
}

// EmptyFrame returns a frame with no throws.
func EmptyFrame() Frame {
	return Frame{}
}

// TwoThrow returns a two-throw frame.
func TwoThrow(t1, t2 int) Frame {
	return Frame{shape: ShapeTwo, throws: [3]int{t1, t2, 0}}
}

// ThreeThrow returns a three-throw frame.
func ThreeThrow(t1, t2, t3 int) Frame {
	return Frame{shape: ShapeThree, throws: [3]int{t1, t2, t3}}
}

// FrameFromThrows builds a frame from the raw throws of one frame in order.
//
// A single throw of 10 is a strike and becomes (10, 0). Two or three throws
// map to the matching shape. Any other input yields an empty frame. The
// result is not checked; call IsValidAt before trusting it.
func FrameFromThrows(throws []int) Frame {
	switch len(throws) {
	case 1:
		if throws[0] == Pins {
			return TwoThrow(Pins, 0)
		}
	case 2:
		return TwoThrow(throws[0], throws[1])
	case 3:
		return ThreeThrow(throws[0], throws[1], throws[2])
	}
	return EmptyFrame()
}

// Shape returns the frame's variant.
func (f Frame) Shape() Shape {
	return f.shape
}

// IsEmpty reports whether no throws have been recorded.
func (f Frame) IsEmpty() bool {
	return f.shape == ShapeEmpty
}

// Len returns the number of recorded throws.
func (f Frame) Len() int {
	switch f.shape {
	case ShapeTwo:
		return 2
	case ShapeThree:
		return 3
	}
	return 0
}

// Throw returns the i-th throw (1-based). ok is false when the frame's shape
// has no such throw.
func (f Frame) Throw(i int) (pins int, ok bool) {
	if i < 1 || i > f.Len() {
		return 0, false
	}
	return f.throws[i-1], true
}

// Throws returns a copy of the recorded throws.
func (f Frame) Throws() []int {
	out := make([]int, f.Len())
	copy(out, f.throws[:])
	return out
}

func (f Frame) first() int  { return f.throws[0] }
func (f Frame) second() int { return f.throws[1] }
func (f Frame) third() int  { return f.throws[2] }

// IsValid reports whether the frame's shape and pin counts are legal
// regardless of position. An empty frame is never valid.
func (f Frame) IsValid() bool {
	switch f.shape {
	case ShapeTwo:
		return f.pinsInRange() && f.Score() <= Pins
	case ShapeThree:
		return f.bonusEarned() && f.pinsInRange() && f.Score() <= 3*Pins
	}
	return false
}

// IsValidAt reports whether the frame is legally recorded at position n
// (1..10).
//
// Frames 1..9 must be two-throw frames totalling at most 10. The tenth frame
// is a two-throw frame only when it totals less than 10; once a strike or
// spare is thrown the bonus throw is mandatory and the frame must have three
// throws.
func (f Frame) IsValidAt(n int) bool {
	if n < 1 || n > FramesPerGame {
		return false
	}
	switch f.shape {
	case ShapeTwo:
		if !f.pinsInRange() {
			return false
		}
		if n == LastFrame {
			return f.Score() < Pins
		}
		return f.Score() <= Pins
	case ShapeThree:
		if n != LastFrame {
			return false
		}
		return f.IsValid()
	}
	return false
}

func (f Frame) pinsInRange() bool {
	for _, t := range f.throws[:f.Len()] {
		if t < 0 || t > Pins {
			return false
		}
	}
	return true
}

func (f Frame) bonusEarned() bool {
	return f.first() == Pins || f.first()+f.second() == Pins
}

// Score returns the pins knocked down in this frame alone, without bonus.
func (f Frame) Score() int {
	total := 0
	for _, t := range f.throws[:f.Len()] {
		total += t
	}
	return total
}

// IsStrike reports whether the first throw knocked down all ten pins.
func (f Frame) IsStrike() bool {
	return !f.IsEmpty() && f.first() == Pins
}

// IsSpare reports whether the first two throws, but not the first alone,
// knocked down all ten pins.
func (f Frame) IsSpare() bool {
	return !f.IsEmpty() && f.first() != Pins && f.first()+f.second() == Pins
}

// IsOpen reports whether the frame is neither a strike nor a spare.
func (f Frame) IsOpen() bool {
	return !f.IsStrike() && !f.IsSpare()
}

// NumStrikes counts the strikes thrown in the frame. Only a three-throw
// tenth frame can hold more than one. Unlike IsStrike, a two-throw frame
// counts only when it is exactly (10, 0).
func (f Frame) NumStrikes() int {
	switch f.shape {
	case ShapeTwo:
		if f.first() == Pins && f.second() == 0 {
			return 1
		}
	case ShapeThree:
		t1, t2, t3 := f.first(), f.second(), f.third()
		switch {
		case t1 == Pins && t2 == Pins && t3 == Pins:
			return 3
		case t1 == Pins && t2 == Pins:
			return 2
		case t1 == Pins:
			return 1
		case t1+t2 == Pins && t3 == Pins:
			return 1
		}
	}
	return 0
}

// NumSpares counts the spares converted in the frame.
func (f Frame) NumSpares() int {
	switch f.shape {
	case ShapeTwo:
		if f.IsSpare() {
			return 1
		}
	case ShapeThree:
		t1, t2, t3 := f.first(), f.second(), f.third()
		switch {
		case t1 == Pins && t2 != Pins && t2+t3 == Pins:
			return 1
		case t1 != Pins && t1+t2 == Pins:
			return 1
		}
	}
	return 0
}

// StrikeChances counts the throws in the frame that were made at a full rack.
func (f Frame) StrikeChances() int {
	switch f.shape {
	case ShapeTwo:
		return 1
	case ShapeThree:
		switch {
		case f.first() == Pins && f.second() == Pins:
			return 3
		case f.first() == Pins:
			return 2
		}
		return 1
	}
	return 0
}

// SpareChances counts the opportunities to convert a spare in the frame.
func (f Frame) SpareChances() int {
	switch f.shape {
	case ShapeTwo:
		if f.first() != Pins {
			return 1
		}
	case ShapeThree:
		if f.first() == Pins && f.second() == Pins {
			return 0
		}
		return 1
	}
	return 0
}

// String renders the throws comma separated ("9,1,10"); an empty frame
// renders as "-".
func (f Frame) String() string {
	if f.IsEmpty() {
		return "-"
	}
	parts := make([]string, 0, 3)
	for _, t := range f.Throws() {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(parts, ",")
}
