package systems

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/word"
)

// Exactly converts s to T. The payload is the truncated two's complement
// pattern and the error is set when s does not fit.
func Exactly[T, S constraints.Integer](s S) fallible.Fallible[T] {
	t := T(s)

	return fallible.New(t, S(t) != s || (t < 0) != (s < 0))
}

// Leniently converts f to T, discarding any fraction. It returns false for
// NaN and infinities. The error is set when a fraction was discarded or the
// integer part does not fit, in which case the payload is that integer part
// truncated to the width of T.
func Leniently[T constraints.Integer](f float64) (fallible.Fallible[T], bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallible.Fallible[T]{}, false
	}

	tr := math.Trunc(f)
	size := Size[T]()

	lo, hi := 0.0, math.Ldexp(1, int(size))
	if IsSigned[T]() {
		lo, hi = -math.Ldexp(1, int(size-1)), math.Ldexp(1, int(size-1))
	}

	if tr >= lo && tr < hi {
		var t T
		if tr < 0 {
			t = T(int64(tr))
		} else {
			t = T(uint64(tr))
		}

		return fallible.New(t, tr != f), true
	}

	// Out of range: keep the low bits of the integer part.
	b, _ := big.NewFloat(tr).Int(nil)
	b.And(b, new(big.Int).SetUint64(math.MaxUint64))

	return fallible.Invalid(T(b.Uint64())), true
}

// Count returns the number of bits of x equal to b.
func Count[T constraints.Integer](x T, b word.Bit) uint {
	ones := uint(bits.OnesCount64(raw(x)))
	if b == word.One {
		return ones
	}

	return Size[T]() - ones
}

// Ascending returns the length of the run of b starting at the least
// significant bit of x.
func Ascending[T constraints.Integer](x T, b word.Bit) uint {
	r := raw(x)
	if b == word.One {
		r = ^r
	}

	n := uint(bits.TrailingZeros64(r))
	if size := Size[T](); n > size {
		return size
	}

	return n
}

// Descending returns the length of the run of b starting at the most
// significant bit of x.
func Descending[T constraints.Integer](x T, b word.Bit) uint {
	size := Size[T]()

	r := raw(x) << (64 - size)
	if b == word.One {
		r = ^r
	}

	n := uint(bits.LeadingZeros64(r))
	if n > size {
		return size
	}

	return n
}

// Entropy returns the number of bits needed to hold x including one appendix
// bit: the width less the redundant copies of the appendix.
func Entropy[T constraints.Integer](x T) uint {
	return Size[T]() - Descending(x, Appendix(x)) + 1
}

// NewDivider returns a reciprocal divider for the unsigned divisor d. It
// fails only when d is zero.
func NewDivider[T constraints.Unsigned](d T) (word.Divider[T], bool) {
	return word.NewDivider(d)
}
