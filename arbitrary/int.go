package arbitrary

import (
	"fmt"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// Int is a signed integer of unbounded width. The zero value is zero.
type Int[W word.Word] struct {
	p pattern[W]
}

// FromWords returns the signed value of the little-endian body extended by
// the appendix. The body is copied.
func FromWords[W word.Word](body []W, appendix word.Bit) Int[W] {
	return Int[W]{p: newPattern(vector.Clone(body), appendix)}
}

// Len returns the number of words in the normalized body.
func (x Int[W]) Len() int {
	return len(x.p.body)
}

// Size returns the width, which is always infinite.
func (x Int[W]) Size() word.Count {
	return word.Infinity(0)
}

// Appendix returns the sign bit that repeats above the body.
func (x Int[W]) Appendix() word.Bit {
	return x.p.appendix
}

// IsZero reports whether x is zero.
func (x Int[W]) IsZero() bool {
	return x.p.isZero()
}

// IsNegative reports whether x is below zero.
func (x Int[W]) IsNegative() bool {
	return x.p.negative()
}

// Sign returns -1, 0 or +1.
func (x Int[W]) Sign() int {
	switch {
	case x.p.negative():
		return -1
	case x.p.isZero():
		return 0
	}

	return 1
}

// Word returns word i, extended with the appendix past the body.
func (x Int[W]) Word(i int) W {
	return vector.Load(x.p.body, i, x.p.appendix)
}

// Bit returns bit i, extended with the appendix past the body.
func (x Int[W]) Bit(i uint) word.Bit {
	return vector.Bit(x.p.body, i, x.p.appendix)
}

// Words returns a copy of the normalized body.
func (x Int[W]) Words() []W {
	return vector.Clone(x.p.body)
}

// WithWords calls fn with a private copy of the body and its appendix and
// replaces x with the renormalized result. fn may change the appendix.
func (x *Int[W]) WithWords(fn func(body []W, appendix *word.Bit)) {
	q := x.p.clone()
	fn(q.body, &q.appendix)
	x.p = newPattern(q.body, q.appendix)
}

// WithBytes calls fn with the little-endian bytes of the body and replaces
// x with the renormalized result.
func (x *Int[W]) WithBytes(fn func(b []byte)) {
	b := word.Bytes(x.p.body)
	fn(b)
	x.p = newPattern(word.FromBytes[W](b, x.p.appendix), x.p.appendix)
}

// Unsigned reinterprets the pattern of x as a UInt; negative values become
// infinite.
func (x Int[W]) Unsigned() UInt[W] {
	return UInt[W]{p: x.p}
}

// Toggled returns the bitwise complement of x.
func (x Int[W]) Toggled() Int[W] {
	return Int[W]{p: x.p.toggled()}
}

// Complement returns ^x, plus one when increment is set. It never fails.
func (x Int[W]) Complement(increment bool) fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.p.complement(increment)})
}

// Magnitude returns |x| as a finite UInt.
func (x Int[W]) Magnitude() UInt[W] {
	return UInt[W]{p: newPattern(vector.Clone(x.p.magnitude()), word.Zero)}
}

// Absolute returns |x|. It never fails.
func (x Int[W]) Absolute() fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.Magnitude().p})
}

// Up shifts x toward the most significant end, growing the body. An
// infinite distance produces zero.
func (x Int[W]) Up(s word.Shift) Int[W] {
	return Int[W]{p: x.p.up(s)}
}

// Down shifts x toward the least significant end, filling with the sign.
func (x Int[W]) Down(s word.Shift) Int[W] {
	return Int[W]{p: x.p.down(s)}
}

// Plus returns x + y. It never fails.
func (x Int[W]) Plus(y Int[W]) fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.p.plus(y.p)})
}

// Minus returns x - y. It never fails.
func (x Int[W]) Minus(y Int[W]) fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.p.minus(y.p)})
}

// Times returns x·y. It never fails.
func (x Int[W]) Times(y Int[W]) fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.p.times(y.p)})
}

// Squared returns x·x. It never fails.
func (x Int[W]) Squared() fallible.Fallible[Int[W]] {
	return fallible.Exact(Int[W]{p: x.p.squared()})
}

// Division returns the quotient truncated toward zero and the remainder,
// which takes the sign of x. It never fails.
func (x Int[W]) Division(y guarantee.Nonzero[Int[W]]) fallible.Fallible[word.Division[Int[W], Int[W]]] {
	q, r := x.p.division(y.Value().p)

	return fallible.Exact(word.Division[Int[W], Int[W]]{Quotient: Int[W]{p: q}, Remainder: Int[W]{p: r}})
}

// Compare returns -1, 0 or +1 when x is less than, equal to or greater than
// y.
func (x Int[W]) Compare(y Int[W]) int {
	return x.p.compare(y.p)
}

// Equal reports whether x and y are the same value.
func (x Int[W]) Equal(y Int[W]) bool {
	return x.p.equal(y.p)
}

// Count returns the number of bits equal to b, infinite for the appendix.
func (x Int[W]) Count(b word.Bit) word.Count {
	return x.p.count(b)
}

// Ascending returns the run of b from the least significant bit.
func (x Int[W]) Ascending(b word.Bit) word.Count {
	return x.p.ascending(b)
}

// Descending returns the run of b from the infinite top: ∞ - k for the
// appendix, zero for the other bit.
func (x Int[W]) Descending(b word.Bit) word.Count {
	return x.p.descending(b)
}

// Entropy returns the number of bits needed to hold x including one
// appendix bit.
func (x Int[W]) Entropy() uint {
	return x.p.entropy()
}

// String returns x in base 10.
func (x Int[W]) String() string {
	return x.Big().String()
}

// Format implements fmt.Formatter through the math/big formatting verbs.
func (x Int[W]) Format(s fmt.State, ch rune) {
	x.Big().Format(s, ch)
}
