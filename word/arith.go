package word

import (
	"math/bits"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/zeebo/errs"
)

// Error is the error class for violated word preconditions.
var Error = errs.Class("word")

// Add returns a + b + carry and the carry out.
func Add[W Word](a, b W, carry bool) (W, bool) {
	s := a + b
	c := s < a
	if carry {
		s++
		c = c || s == 0
	}

	return s, c
}

// Sub returns a - b - borrow and the borrow out.
func Sub[W Word](a, b W, borrow bool) (W, bool) {
	d := a - b
	c := a < b
	if borrow {
		c = c || d == 0
		d--
	}

	return d, c
}

// Mul returns the exact product of a and b.
func Mul[W Word](a, b W) Doublet[W] {
	size := Size[W]()
	if size == 64 {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		return Doublet[W]{Low: W(lo), High: W(hi)}
	}

	p := uint64(a) * uint64(b)

	return Doublet[W]{Low: W(p), High: W(p >> size)}
}

// MulAdd returns a·b + c + d, which always fits in a Doublet.
func MulAdd[W Word](a, b, c, d W) Doublet[W] {
	p := Mul(a, b)

	var k bool
	p.Low, k = Add(p.Low, c, false)
	p.High, _ = Add(p.High, 0, k)
	p.Low, k = Add(p.Low, d, false)
	p.High, _ = Add(p.High, 0, k)

	return p
}

// Div21 divides n by d. The caller guarantees n.High < d, which makes the
// quotient fit in one word.
func Div21[W Word](n Doublet[W], d W) (q, r W) {
	if n.High >= d {
		panic(Error.New("quotient overflow: high=%d divisor=%d", uint64(n.High), uint64(d)))
	}

	size := Size[W]()
	if size == 64 {
		q64, r64 := bits.Div64(uint64(n.High), uint64(n.Low), uint64(d))
		return W(q64), W(r64)
	}

	x := uint64(n.High)<<size | uint64(n.Low)

	return W(x / uint64(d)), W(x % uint64(d))
}

// Division21 divides n by d. The remainder is always exact. The quotient is
// truncated to one word and the error is set when it did not fit.
func Division21[W Word](n Doublet[W], d guarantee.Nonzero[W]) fallible.Fallible[Division[W, W]] {
	v := d.Value()

	qh, rh := n.High/v, n.High%v
	ql, r := Div21(Doublet[W]{Low: n.Low, High: rh}, v)

	return fallible.New(Division[W, W]{Quotient: ql, Remainder: r}, qh != 0)
}

// Division32 divides n by d. The caller guarantees that d is normalized (its
// most significant bit is set) and that the top two words of n are less than
// d, so the quotient fits in one word.
//
// The trial digit is taken from the top two words of n and the top word of d.
// When those top words are equal the trial digit does not fit a word and is
// clamped to the maximum before correction.
func Division32[W Word](n Triplet[W], d Doublet[W]) (W, Doublet[W]) {
	top := Doublet[W]{Low: n.Mid, High: n.High}
	if Msb(d.High) != One || Compare21(top, d) >= 0 {
		panic(Error.New("invalid 3-by-2 division"))
	}

	var q W
	if n.High == d.High {
		q = ^W(0)
	} else {
		q, _ = Div21(top, d.High)
	}

	p := Mul21(d, q)
	for Compare32(p, n) > 0 {
		q--
		p, _ = Minus32(p, Triplet[W]{Low: d.Low, Mid: d.High})
	}

	r, _ := Minus32(n, p)

	return q, Doublet[W]{Low: r.Low, High: r.Mid}
}
