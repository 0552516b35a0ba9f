package word

import (
	"github.com/calebcase/ultimath/fallible"
)

// Divider divides single words by a fixed divisor with a multiplication and
// a shift.
type Divider[W Word] struct {
	Divisor    W
	Multiplier W
	Add        bool
	Shift      uint
}

// NewDivider precomputes the reciprocal of d. It returns false when d is
// zero.
//
// Powers of two use the all ones multiplier with the increment. Other
// divisors use the rounded up multiplier when its error is at most 2^k and
// the rounded down multiplier with the increment otherwise, where
// k = ⌊log2 d⌋.
func NewDivider[W Word](d W) (Divider[W], bool) {
	if d == 0 {
		return Divider[W]{}, false
	}

	size := Size[W]()
	k := Len(d) - 1

	if IsPowerOf2(d) {
		return Divider[W]{
			Divisor:    d,
			Multiplier: ^W(0),
			Add:        true,
			Shift:      size + k,
		}, true
	}

	// ⌊2^(size+k) / d⌋ fits in one word because d > 2^k.
	m, rem := Div21(Doublet[W]{High: W(1) << k}, d)

	if d-rem <= W(1)<<k {
		return Divider[W]{
			Divisor:    d,
			Multiplier: m + 1,
			Shift:      size + k,
		}, true
	}

	return Divider[W]{
		Divisor:    d,
		Multiplier: m,
		Add:        true,
		Shift:      size + k,
	}, true
}

// Quotient returns x / d.
func (d Divider[W]) Quotient(x W) W {
	p := Mul(x, d.Multiplier)
	if d.Add {
		var c bool
		p.Low, c = Add(p.Low, d.Multiplier, false)
		p.High, _ = Add(p.High, 0, c)
	}

	return p.High >> (d.Shift - Size[W]())
}

// Division returns the quotient and remainder of x / d.
func (d Divider[W]) Division(x W) Division[W, W] {
	q := d.Quotient(x)

	return Division[W, W]{Quotient: q, Remainder: x - q*d.Divisor}
}

// Divider21 divides double words by a fixed single word divisor using a
// precomputed reciprocal.
type Divider21[W Word] struct {
	Divisor    W
	Normalized W
	Shift      uint
	Reciprocal W
}

// NewDivider21 precomputes the reciprocal ⌊(B²-1)/n⌋ - B of the normalized
// divisor n = d << LeadingZeros(d). It returns false when d is zero.
func NewDivider21[W Word](d W) (Divider21[W], bool) {
	if d == 0 {
		return Divider21[W]{}, false
	}

	s := LeadingZeros(d)
	n := d << s

	// (B² - 1)/n - B = (B·(B - 1 - n) + B - 1) / n and B - 1 - n < n.
	rec, _ := Div21(Doublet[W]{Low: ^W(0), High: ^n}, n)

	return Divider21[W]{
		Divisor:    d,
		Normalized: n,
		Shift:      s,
		Reciprocal: rec,
	}, true
}

// Div21 divides x by the divisor. The caller guarantees x.High < Divisor.
func (d Divider21[W]) Div21(x Doublet[W]) (q, r W) {
	if x.High >= d.Divisor {
		panic(Error.New("quotient overflow: high=%d divisor=%d", uint64(x.High), uint64(d.Divisor)))
	}

	u1, u0 := x.High, x.Low
	if d.Shift != 0 {
		u1 = u1<<d.Shift | u0>>(Size[W]()-d.Shift)
		u0 <<= d.Shift
	}

	p := Mul(d.Reciprocal, u1)

	var c bool
	p.Low, c = Add(p.Low, u0, false)
	p.High, _ = Add(p.High, u1, c)

	q = p.High + 1
	r = u0 - q*d.Normalized

	if r > p.Low {
		q--
		r += d.Normalized
	}

	if r >= d.Normalized {
		q++
		r -= d.Normalized
	}

	return q, r >> d.Shift
}

// Division divides x by the divisor. The remainder is always exact. The
// quotient is truncated to one word and the error is set when it did not
// fit.
func (d Divider21[W]) Division(x Doublet[W]) fallible.Fallible[Division[W, W]] {
	qh, rh := d.Div21(Doublet[W]{Low: x.High})
	ql, r := d.Div21(Doublet[W]{Low: x.Low, High: rh})

	return fallible.New(Division[W, W]{Quotient: ql, Remainder: r}, qh != 0)
}
