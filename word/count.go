package word

import (
	"math"
	"strconv"
)

// Count is a number of bits. It is either a natural number or ∞ - k.
type Count struct {
	value    uint
	infinite bool
}

// Finite returns the natural count n.
func Finite(n uint) Count {
	return Count{value: n}
}

// Infinity returns the count ∞ - less.
func Infinity(less uint) Count {
	return Count{value: less, infinite: true}
}

// IsInfinite reports whether c is ∞ - k for some k.
func (c Count) IsInfinite() bool {
	return c.infinite
}

// Natural returns the finite value of c. The boolean is false for infinite
// counts.
func (c Count) Natural() (uint, bool) {
	if c.infinite {
		return 0, false
	}

	return c.value, true
}

// Less returns k for a count of ∞ - k and zero for finite counts.
func (c Count) Less() uint {
	if !c.infinite {
		return 0
	}

	return c.value
}

// Raw returns the count as a two's complement pattern where ∞ is the all
// ones pattern. This is the value masking operates on.
func (c Count) Raw() uint {
	if c.infinite {
		return math.MaxUint - c.value
	}

	return c.value
}

// Compare returns -1, 0 or +1 when c is less than, equal to or greater than
// o. Every finite count is less than every infinite count.
func (c Count) Compare(o Count) int {
	switch {
	case c.infinite != o.infinite:
		if c.infinite {
			return 1
		}

		return -1
	case c.value == o.value:
		return 0
	case c.infinite == (c.value > o.value):
		return -1
	}

	return 1
}

func (c Count) String() string {
	switch {
	case !c.infinite:
		return strconv.FormatUint(uint64(c.value), 10)
	case c.value == 0:
		return "∞"
	}

	return "∞-" + strconv.FormatUint(uint64(c.value), 10)
}

// Shift is a shift distance.
type Shift struct {
	distance Count
}

// NewShift returns the shift distance c.
func NewShift(c Count) Shift {
	return Shift{distance: c}
}

// ShiftOf returns the finite shift distance n.
func ShiftOf(n uint) Shift {
	return Shift{distance: Finite(n)}
}

// Distance returns the distance as a count.
func (s Shift) Distance() Count {
	return s.distance
}

// IsZero reports whether s is the identity shift.
func (s Shift) IsZero() bool {
	return !s.distance.infinite && s.distance.value == 0
}

// Overshifts reports whether shifting a value of the given size by s moves
// every bit out of range.
func (s Shift) Overshifts(size uint) bool {
	return s.distance.infinite || s.distance.value >= size
}

// Masked reduces s modulo size. Infinite distances are reduced through their
// raw pattern so that ∞ masks like the all ones distance.
func (s Shift) Masked(size uint) Shift {
	return ShiftOf(s.distance.Raw() % size)
}

// Natural returns the finite distance. The boolean is false for infinite
// distances.
func (s Shift) Natural() (uint, bool) {
	return s.distance.Natural()
}

func (s Shift) String() string {
	return s.distance.String()
}
