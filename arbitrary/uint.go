package arbitrary

import (
	"fmt"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// UInt is an unsigned integer of unbounded width that may be infinite. The
// zero value is zero.
type UInt[W word.Word] struct {
	p pattern[W]
}

// FromWordsUInt returns the unsigned value of the little-endian body. A set
// appendix makes the value infinite. The body is copied.
func FromWordsUInt[W word.Word](body []W, appendix word.Bit) UInt[W] {
	return UInt[W]{p: newPattern(vector.Clone(body), appendix)}
}

// Infinity returns 2^∞ - less.
func Infinity[W word.Word](less UInt[W]) UInt[W] {
	return less.Complement(true).Value
}

// Len returns the number of words in the normalized body.
func (x UInt[W]) Len() int {
	return len(x.p.body)
}

// Size returns the width, which is always infinite.
func (x UInt[W]) Size() word.Count {
	return word.Infinity(0)
}

// Appendix returns the bit that repeats above the body.
func (x UInt[W]) Appendix() word.Bit {
	return x.p.appendix
}

// IsZero reports whether x is zero.
func (x UInt[W]) IsZero() bool {
	return x.p.isZero()
}

// IsInfinite reports whether x is 2^∞ - k for some finite k.
func (x UInt[W]) IsInfinite() bool {
	return x.p.negative()
}

// IsNegative is always false.
func (x UInt[W]) IsNegative() bool {
	return false
}

// Word returns word i, extended with the appendix past the body.
func (x UInt[W]) Word(i int) W {
	return vector.Load(x.p.body, i, x.p.appendix)
}

// Bit returns bit i, extended with the appendix past the body.
func (x UInt[W]) Bit(i uint) word.Bit {
	return vector.Bit(x.p.body, i, x.p.appendix)
}

// Words returns a copy of the normalized body.
func (x UInt[W]) Words() []W {
	return vector.Clone(x.p.body)
}

// WithWords calls fn with a private copy of the body and its appendix and
// replaces x with the renormalized result.
func (x *UInt[W]) WithWords(fn func(body []W, appendix *word.Bit)) {
	q := x.p.clone()
	fn(q.body, &q.appendix)
	x.p = newPattern(q.body, q.appendix)
}

// WithBytes calls fn with the little-endian bytes of the body and replaces
// x with the renormalized result.
func (x *UInt[W]) WithBytes(fn func(b []byte)) {
	b := word.Bytes(x.p.body)
	fn(b)
	x.p = newPattern(word.FromBytes[W](b, x.p.appendix), x.p.appendix)
}

// Signed reinterprets the pattern of x as an Int; infinite values become
// negative.
func (x UInt[W]) Signed() Int[W] {
	return Int[W]{p: x.p}
}

// Toggled returns the bitwise complement of x. Finite values become
// infinite and the other way around.
func (x UInt[W]) Toggled() UInt[W] {
	return UInt[W]{p: x.p.toggled()}
}

// Complement returns ^x, plus one when increment is set. It never fails:
// the complement of a finite nonzero value is infinite and the complement of
// zero is zero.
func (x UInt[W]) Complement(increment bool) fallible.Fallible[UInt[W]] {
	return fallible.Exact(UInt[W]{p: x.p.complement(increment)})
}

// Magnitude returns x.
func (x UInt[W]) Magnitude() UInt[W] {
	return x
}

// Up shifts x toward the most significant end, growing the body. An
// infinite distance produces zero.
func (x UInt[W]) Up(s word.Shift) UInt[W] {
	return UInt[W]{p: x.p.up(s)}
}

// Down shifts x toward the least significant end, filling with the
// appendix.
func (x UInt[W]) Down(s word.Shift) UInt[W] {
	return UInt[W]{p: x.p.down(s)}
}

func appendix(b word.Bit) int {
	return int(b)
}

// Plus returns x + y. The error is set when the sum needs a different amount
// of infinity than the operands supply, such as two infinite operands or an
// infinite sum that wrapped past 2^∞.
func (x UInt[W]) Plus(y UInt[W]) fallible.Fallible[UInt[W]] {
	r := x.p.plus(y.p)

	return fallible.New(UInt[W]{p: r}, appendix(x.p.appendix)+appendix(y.p.appendix) != appendix(r.appendix))
}

// Minus returns x - y. The error is set when the difference is negative or
// would need to remove more infinity than x has.
func (x UInt[W]) Minus(y UInt[W]) fallible.Fallible[UInt[W]] {
	r := x.p.minus(y.p)

	return fallible.New(UInt[W]{p: r}, appendix(x.p.appendix)-appendix(y.p.appendix) != appendix(r.appendix))
}

// isOne reports whether x is exactly one.
func (x UInt[W]) isOne() bool {
	return x.p.appendix == word.Zero && len(x.p.body) == 1 && x.p.body[0] == 1
}

// Times returns x·y. The payload is the product of the patterns. The error
// is set when both operands are infinite or one is infinite and the other
// is neither zero nor one.
func (x UInt[W]) Times(y UInt[W]) fallible.Fallible[UInt[W]] {
	r := UInt[W]{p: x.p.times(y.p)}

	switch {
	case x.IsInfinite() && y.IsInfinite():
		return fallible.Invalid(r)
	case x.IsInfinite():
		return fallible.New(r, !y.IsZero() && !y.isOne())
	case y.IsInfinite():
		return fallible.New(r, !x.IsZero() && !x.isOne())
	}

	return fallible.Exact(r)
}

// Squared returns x·x, identical to x.Times(x).
func (x UInt[W]) Squared() fallible.Fallible[UInt[W]] {
	return fallible.New(UInt[W]{p: x.p.squared()}, x.IsInfinite())
}

// Division returns the quotient and remainder of x / y.
//
// A finite dividend over an infinite divisor gives {0, x}. Two infinite
// operands give {1, x - y} when x >= y and {0, x} otherwise. An infinite
// dividend over a finite divisor divides the patterns as signed numbers and
// sets the error unless the divisor is one.
func (x UInt[W]) Division(y guarantee.Nonzero[UInt[W]]) fallible.Fallible[word.Division[UInt[W], UInt[W]]] {
	d := y.Value()

	if d.IsInfinite() {
		if x.Compare(d) < 0 {
			return fallible.Exact(word.Division[UInt[W], UInt[W]]{Quotient: UInt[W]{}, Remainder: x})
		}

		one := UInt[W]{p: newPattern([]W{1}, word.Zero)}

		return fallible.Exact(word.Division[UInt[W], UInt[W]]{Quotient: one, Remainder: UInt[W]{p: x.p.minus(d.p)}})
	}

	q, r := x.p.division(d.p)

	return fallible.New(
		word.Division[UInt[W], UInt[W]]{Quotient: UInt[W]{p: q}, Remainder: UInt[W]{p: r}},
		x.IsInfinite() && !d.isOne(),
	)
}

// Compare returns -1, 0 or +1 when x is less than, equal to or greater than
// y. Every finite value is less than every infinite value.
func (x UInt[W]) Compare(y UInt[W]) int {
	// Both patterns have the same sign exactly when both are finite or both
	// infinite, and then the signed order is the unsigned order.
	if x.p.appendix != y.p.appendix {
		if x.IsInfinite() {
			return 1
		}

		return -1
	}

	return x.p.compare(y.p)
}

// Equal reports whether x and y are the same value.
func (x UInt[W]) Equal(y UInt[W]) bool {
	return x.p.equal(y.p)
}

// Count returns the number of bits equal to b, infinite for the appendix.
func (x UInt[W]) Count(b word.Bit) word.Count {
	return x.p.count(b)
}

// Ascending returns the run of b from the least significant bit.
func (x UInt[W]) Ascending(b word.Bit) word.Count {
	return x.p.ascending(b)
}

// Descending returns the run of b from the infinite top.
func (x UInt[W]) Descending(b word.Bit) word.Count {
	return x.p.descending(b)
}

// Entropy returns the number of bits needed to hold x including one
// appendix bit.
func (x UInt[W]) Entropy() uint {
	return x.p.entropy()
}

// String returns x in base 10, or ∞-k for infinite values.
func (x UInt[W]) String() string {
	if x.IsInfinite() {
		return "∞-" + x.Complement(true).Value.String()
	}

	return x.p.big().String()
}

// Format implements fmt.Formatter. Finite values use the math/big verbs.
func (x UInt[W]) Format(s fmt.State, ch rune) {
	if x.IsInfinite() {
		fmt.Fprint(s, x.String())
		return
	}

	x.p.big().Format(s, ch)
}
