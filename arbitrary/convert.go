package arbitrary

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/word"
)

// FromBig returns b as an Int.
func FromBig[W word.Word](b *big.Int) Int[W] {
	return Int[W]{p: patternOf[W](b)}
}

// Big returns x as a math/big integer.
func (x Int[W]) Big() *big.Int {
	return x.p.big()
}

// Exactly returns s as an Int. Every integer fits, so the error is never
// set.
func Exactly[W word.Word, S constraints.Integer](s S) fallible.Fallible[Int[W]] {
	return fallible.Exact(FromBig[W](bigOf(s)))
}

// Leniently converts f to an Int, discarding any fraction. It returns false
// for NaN and infinities. The error is set when a fraction was discarded.
func Leniently[W word.Word](f float64) (fallible.Fallible[Int[W]], bool) {
	b, exact, ok := truncate(f)
	if !ok {
		return fallible.Fallible[Int[W]]{}, false
	}

	return fallible.New(FromBig[W](b), !exact), true
}

// FromBigUInt returns b as a UInt. A negative b is not representable; the
// payload is then the infinite value with the same two's complement pattern
// and the error is set.
func FromBigUInt[W word.Word](b *big.Int) fallible.Fallible[UInt[W]] {
	return fallible.New(UInt[W]{p: patternOf[W](b)}, b.Sign() < 0)
}

// Big returns a finite x as a math/big integer. For an infinite x it returns
// the pattern read as a signed number, which is negative.
func (x UInt[W]) Big() *big.Int {
	return x.p.big()
}

// ExactlyUInt returns s as a UInt. The error is set for negative s.
func ExactlyUInt[W word.Word, S constraints.Integer](s S) fallible.Fallible[UInt[W]] {
	return FromBigUInt[W](bigOf(s))
}

// LenientlyUInt converts f to a UInt, discarding any fraction. It returns
// false for NaN and infinities. The error is set when a fraction was
// discarded or the integer part is negative.
func LenientlyUInt[W word.Word](f float64) (fallible.Fallible[UInt[W]], bool) {
	b, exact, ok := truncate(f)
	if !ok {
		return fallible.Fallible[UInt[W]]{}, false
	}

	return fallible.Join(FromBigUInt[W](b), !exact), true
}

func bigOf[S constraints.Integer](s S) *big.Int {
	if s < 0 {
		return big.NewInt(int64(s))
	}

	return new(big.Int).SetUint64(uint64(s))
}

// truncate returns the integer part of f and whether it equals f.
func truncate(f float64) (*big.Int, bool, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false, false
	}

	tr := math.Trunc(f)
	b, _ := big.NewFloat(tr).Int(nil)

	return b, tr == f, true
}
