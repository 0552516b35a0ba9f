package word

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is an unsigned machine word.
type Word interface {
	constraints.Unsigned
}

// Bit is a single binary digit.
type Bit uint8

// Bits.
const (
	Zero Bit = 0
	One  Bit = 1
)

// BitOf returns One when b is true.
func BitOf(b bool) Bit {
	if b {
		return One
	}

	return Zero
}

// Bool returns true for One.
func (b Bit) Bool() bool {
	return b == One
}

// Toggled returns the other bit.
func (b Bit) Toggled() Bit {
	return b ^ One
}

// Size returns the width of W in bits.
func Size[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// Extension returns the word whose bits all equal b.
func Extension[W Word](b Bit) W {
	if b == One {
		return ^W(0)
	}

	return 0
}

// Msb returns the most significant bit of w.
func Msb[W Word](w W) Bit {
	return Bit(w >> (Size[W]() - 1))
}

// Len returns the minimum number of bits needed to represent w.
func Len[W Word](w W) uint {
	return uint(bits.Len64(uint64(w)))
}

// LeadingZeros returns the number of leading zero bits in w.
func LeadingZeros[W Word](w W) uint {
	return Size[W]() - Len(w)
}

// TrailingZeros returns the number of trailing zero bits in w. The result is
// Size[W]() for zero.
func TrailingZeros[W Word](w W) uint {
	if w == 0 {
		return Size[W]()
	}

	return uint(bits.TrailingZeros64(uint64(w)))
}

// OnesCount returns the number of one bits in w.
func OnesCount[W Word](w W) uint {
	return uint(bits.OnesCount64(uint64(w)))
}

// CountOf returns the number of bits in w equal to b.
func CountOf[W Word](w W, b Bit) uint {
	if b == One {
		return OnesCount(w)
	}

	return Size[W]() - OnesCount(w)
}

// Ascending returns the length of the run of b starting at the least
// significant bit of w.
func Ascending[W Word](w W, b Bit) uint {
	if b == One {
		w = ^w
	}

	return TrailingZeros(w)
}

// Descending returns the length of the run of b starting at the most
// significant bit of w.
func Descending[W Word](w W, b Bit) uint {
	if b == One {
		w = ^w
	}

	return LeadingZeros(w)
}

// IsPowerOf2 reports whether w has exactly one bit set.
func IsPowerOf2[W Word](w W) bool {
	return w != 0 && w&(w-1) == 0
}

// mask returns a uint64 with the low n bits set, 0 < n <= 64.
func mask(n uint) uint64 {
	return ^uint64(0) >> (64 - n)
}
