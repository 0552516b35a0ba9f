package systems

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/word"
)

// Plus returns a + b.
func Plus[T constraints.Integer](a, b T) fallible.Fallible[T] {
	r := a + b

	if IsSigned[T]() {
		return fallible.New(r, (a < 0) == (b < 0) && (r < 0) != (a < 0))
	}

	return fallible.New(r, r < a)
}

// Minus returns a - b.
func Minus[T constraints.Integer](a, b T) fallible.Fallible[T] {
	r := a - b

	if IsSigned[T]() {
		return fallible.New(r, (a < 0) != (b < 0) && (r < 0) != (a < 0))
	}

	return fallible.New(r, a < b)
}

// Multiplication returns the exact product of a and b as two words. For
// signed types the high word is sign-extended and the low word holds raw
// bits.
func Multiplication[T constraints.Integer](a, b T) word.Doublet[T] {
	size := Size[T]()

	if size == 64 {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		if a < 0 {
			hi -= uint64(b)
		}
		if b < 0 {
			hi -= uint64(a)
		}

		return word.Doublet[T]{Low: T(lo), High: T(hi)}
	}

	if IsSigned[T]() {
		p := int64(a) * int64(b)
		return word.Doublet[T]{Low: T(p), High: T(p >> size)}
	}

	p := uint64(a) * uint64(b)

	return word.Doublet[T]{Low: T(p), High: T(p >> size)}
}

// Times returns the low word of a·b. The error is set when the product does
// not fit.
func Times[T constraints.Integer](a, b T) fallible.Fallible[T] {
	p := Multiplication(a, b)

	// The product fits when the high word only extends the low one.
	var ext T
	if p.Low < 0 {
		ext = ^T(0)
	}

	return fallible.New(p.Low, p.High != ext)
}

// Squared returns x·x, identical to Times(x, x).
func Squared[T constraints.Integer](x T) fallible.Fallible[T] {
	return Times(x, x)
}

// Division returns the truncating quotient and remainder of a / b. The only
// error is the signed minimum divided by -1, which yields {min, 0}.
func Division[T constraints.Integer](a T, b guarantee.Nonzero[T]) fallible.Fallible[word.Division[T, T]] {
	d := b.Value()

	if IsSigned[T]() && d == ^T(0) && a == Min[T]() {
		return fallible.Invalid(word.Division[T, T]{Quotient: a, Remainder: 0})
	}

	return fallible.Exact(word.Division[T, T]{Quotient: a / d, Remainder: a % d})
}

// DivisionDoublet divides the two word value n by d, truncating toward zero.
// The remainder is exact and takes the sign of n. The quotient is truncated
// to one word and the error is set when it did not fit.
func DivisionDoublet[T constraints.Integer](n word.Doublet[T], d guarantee.Nonzero[T]) fallible.Fallible[word.Division[T, T]] {
	size := Size[T]()
	v := d.Value()

	if size < 64 {
		if IsSigned[T]() {
			x := int64(n.High)<<size | int64(raw(n.Low))
			q, r := x/int64(v), x%int64(v)

			return fallible.New(
				word.Division[T, T]{Quotient: T(q), Remainder: T(r)},
				q < int64(Min[T]()) || q > int64(Max[T]()),
			)
		}

		x := uint64(n.High)<<size | uint64(n.Low)
		q, r := x/uint64(v), x%uint64(v)

		return fallible.New(
			word.Division[T, T]{Quotient: T(q), Remainder: T(r)},
			q > uint64(Max[T]()),
		)
	}

	if !IsSigned[T]() {
		f := word.Division21(
			word.Doublet[uint64]{Low: uint64(n.Low), High: uint64(n.High)},
			guarantee.Must(guarantee.NonzeroOf(uint64(v))),
		)

		return fallible.Transform(f, func(x word.Division[uint64, uint64]) word.Division[T, T] {
			return word.Division[T, T]{Quotient: T(x.Quotient), Remainder: T(x.Remainder)}
		})
	}

	return divisionDoublet64(n, v)
}

// divisionDoublet64 is DivisionDoublet for 64-bit signed words, computed on
// magnitudes.
func divisionDoublet64[T constraints.Integer](n word.Doublet[T], v T) fallible.Fallible[word.Division[T, T]] {
	negative := n.High < 0

	m := word.Doublet[uint64]{Low: uint64(n.Low), High: uint64(n.High)}
	if negative {
		var c bool
		m.Low, c = word.Add(^m.Low, 0, true)
		m.High, _ = word.Add(^m.High, 0, c)
	}

	dm := Magnitude[uint64](v)

	qh, rh := m.High/dm, m.High%dm
	ql, r := word.Div21(word.Doublet[uint64]{Low: m.Low, High: rh}, dm)

	flip := negative != (v < 0)

	// The magnitude of a fitting quotient is at most 2^63, and exactly 2^63
	// only when the quotient is negative.
	overflow := qh != 0 || ql > 1<<63 || (ql == 1<<63 && !flip)

	q := ql
	if flip {
		q = -q
	}

	rem := r
	if negative {
		rem = -rem
	}

	return fallible.New(word.Division[T, T]{Quotient: T(q), Remainder: T(rem)}, overflow)
}
