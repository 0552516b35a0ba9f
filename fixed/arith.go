package fixed

import (
	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// Toggled returns the bitwise complement of x.
func (x Int[W]) Toggled() Int[W] {
	z := x.like()
	vector.Toggle(z.words, x.words)

	return z
}

// Complement returns ^x, plus one when increment is set. The error is set
// only when incrementing the signed minimum.
func (x Int[W]) Complement(increment bool) fallible.Fallible[Int[W]] {
	z := x.like()
	vector.Complement(z.words, x.words, increment)

	return fallible.New(z, increment && x.isMin())
}

func (x Int[W]) isMin() bool {
	return x.signed && x.Equal(Min[W](len(x.words), true))
}

// Magnitude returns |x| as an unsigned value with the same word count. It is
// exact for every x.
func (x Int[W]) Magnitude() Int[W] {
	z := Int[W]{words: make([]W, len(x.words))}

	if x.IsNegative() {
		vector.Complement(z.words, x.words, true)
	} else {
		copy(z.words, x.words)
	}

	return z
}

// Absolute returns |x|. The error is set for the signed minimum.
func (x Int[W]) Absolute() fallible.Fallible[Int[W]] {
	if x.IsNegative() {
		return x.Complement(true)
	}

	return fallible.Exact(x.clone())
}

func (x Int[W]) clone() Int[W] {
	z := x.like()
	copy(z.words, x.words)

	return z
}

// Up shifts x toward the most significant bit. Distances of the width or
// more produce zero.
func (x Int[W]) Up(s word.Shift) Int[W] {
	z := x.like()

	if d, ok := s.Natural(); ok && !s.Overshifts(x.Size()) {
		vector.ShiftUp(z.words, x.words, d)
	}

	return z
}

// Down shifts x toward the least significant bit, filling with the
// appendix. Distances of the width or more leave only the fill.
func (x Int[W]) Down(s word.Shift) Int[W] {
	z := x.like()

	d, ok := s.Natural()
	if !ok || s.Overshifts(x.Size()) {
		d = x.Size()
	}

	vector.ShiftDown(z.words, x.words, d, x.Appendix())

	return z
}

// UpMasked shifts x up by the distance reduced modulo the width.
func (x Int[W]) UpMasked(s word.Shift) Int[W] {
	return x.Up(s.Masked(x.Size()))
}

// DownMasked shifts x down by the distance reduced modulo the width.
func (x Int[W]) DownMasked(s word.Shift) Int[W] {
	return x.Down(s.Masked(x.Size()))
}

// Plus returns x + y.
func (x Int[W]) Plus(y Int[W]) fallible.Fallible[Int[W]] {
	x.check(y)

	z := x.like()
	carry := vector.Add(z.words, x.words, y.words, false)

	if x.signed {
		xa := x.Appendix()
		return fallible.New(z, xa == y.Appendix() && z.Appendix() != xa)
	}

	return fallible.New(z, carry)
}

// Minus returns x - y.
func (x Int[W]) Minus(y Int[W]) fallible.Fallible[Int[W]] {
	x.check(y)

	z := x.like()
	borrow := vector.Sub(z.words, x.words, y.words, false)

	if x.signed {
		xa := x.Appendix()
		return fallible.New(z, xa != y.Appendix() && z.Appendix() != xa)
	}

	return fallible.New(z, borrow)
}

// Multiplication returns the exact product of x and y as two halves. For
// signed values the high half is sign-extended and the low half holds raw
// bits.
func (x Int[W]) Multiplication(y Int[W]) word.Doublet[Int[W]] {
	x.check(y)

	n := len(x.words)
	p := make([]W, 2*n)
	vector.Multiply(p, x.words, y.words)

	return x.split(p, y)
}

// split corrects the unsigned product p of the raw patterns of x and y to
// the signed product and returns its halves.
func (x Int[W]) split(p []W, y Int[W]) word.Doublet[Int[W]] {
	n := len(x.words)

	if x.signed {
		hi := p[n:]
		if x.IsNegative() {
			vector.Sub(hi, hi, y.words, false)
		}
		if y.IsNegative() {
			vector.Sub(hi, hi, x.words, false)
		}
	}

	return word.Doublet[Int[W]]{
		Low:  FromWords(p[:n], x.signed),
		High: FromWords(p[n:], x.signed),
	}
}

// Times returns the low half of x·y. The error is set when the product does
// not fit.
func (x Int[W]) Times(y Int[W]) fallible.Fallible[Int[W]] {
	return fitting(x.Multiplication(y))
}

// Squared returns x·x, identical to x.Times(x).
func (x Int[W]) Squared() fallible.Fallible[Int[W]] {
	p := make([]W, 2*len(x.words))
	vector.Square(p, x.words)

	return fitting(x.split(p, x))
}

func fitting[W word.Word](p word.Doublet[Int[W]]) fallible.Fallible[Int[W]] {
	ext := word.Extension[W](p.Low.Appendix())
	for _, w := range p.High.words {
		if w != ext {
			return fallible.Invalid(p.Low)
		}
	}

	return fallible.Exact(p.Low)
}

// Division returns the truncating quotient and remainder of x / y. The only
// error is the signed minimum divided by -1, which yields {min, 0}.
func (x Int[W]) Division(y guarantee.Nonzero[Int[W]]) fallible.Fallible[word.Division[Int[W], Int[W]]] {
	d := y.Value()
	x.check(d)

	n := len(x.words)
	xm, dm := x.Magnitude(), d.Magnitude()

	q, r := vector.Divide(xm.words, dm.words)

	quotient := FromWords(vector.Resize(q, n, word.Zero), x.signed)
	remainder := FromWords(vector.Resize(r, n, word.Zero), x.signed)

	if x.IsNegative() != d.IsNegative() {
		vector.Complement(quotient.words, quotient.words, true)
	}
	if x.IsNegative() {
		vector.Complement(remainder.words, remainder.words, true)
	}

	minusOne := Max[W](n, false)

	return fallible.New(
		word.Division[Int[W], Int[W]]{Quotient: quotient, Remainder: remainder},
		x.isMin() && vector.Compare(d.words, minusOne.words) == 0,
	)
}

// DivisionDoublet divides the 2N-word value n by d, the inverse of
// Multiplication. The remainder is exact and takes the sign of n. The
// quotient is truncated to N words and the error is set when it did not fit.
func DivisionDoublet[W word.Word](n word.Doublet[Int[W]], d guarantee.Nonzero[Int[W]]) fallible.Fallible[word.Division[Int[W], Int[W]]] {
	v := d.Value()
	v.check(n.Low)
	v.check(n.High)

	size := len(v.words)
	wide := FromWords(append(n.Low.Words(), n.High.words...), v.signed)

	q, r := vector.Divide(wide.Magnitude().words, v.Magnitude().words)

	quotient := FromWords(vector.Resize(q, 2*size, word.Zero), v.signed)
	remainder := FromWords(vector.Resize(r, size, word.Zero), v.signed)

	if wide.IsNegative() != v.IsNegative() {
		vector.Complement(quotient.words, quotient.words, true)
	}
	if wide.IsNegative() {
		vector.Complement(remainder.words, remainder.words, true)
	}

	f := fitting(word.Doublet[Int[W]]{
		Low:  FromWords(quotient.words[:size], v.signed),
		High: FromWords(quotient.words[size:], v.signed),
	})

	return fallible.New(
		word.Division[Int[W], Int[W]]{Quotient: f.Value, Remainder: remainder},
		f.Error,
	)
}
