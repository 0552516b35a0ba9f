package vector

import (
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/word"
)

// DivideWord sets q to x / d and returns x % d. q must be as long as x and
// may alias it. The division runs on a precomputed reciprocal of d.
func DivideWord[W word.Word](q, x []W, d guarantee.Nonzero[W]) W {
	divider, _ := word.NewDivider21(d.Value())

	return DivideWordBy(q, x, divider)
}

// DivideWordBy is DivideWord with a caller-held divider, for repeated
// divisions by the same word.
func DivideWordBy[W word.Word](q, x []W, divider word.Divider21[W]) W {
	var r W
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = divider.Div21(word.Doublet[W]{Low: x[i], High: r})
	}

	return r
}

// Divide returns the unsigned quotient and remainder of u / v as normalized
// bodies. It panics when v is zero.
func Divide[W word.Word](u, v []W) (q, r []W) {
	u, v = Normalize(u, word.Zero), Normalize(v, word.Zero)

	if len(v) == 0 {
		panic(Error.New("division by zero"))
	}

	if Compare(u, v) < 0 {
		return nil, Clone(u)
	}

	if len(v) == 1 {
		q = make([]W, len(u))
		rem := DivideWord(q, u, guarantee.Must(guarantee.NonzeroOf(v[0])))

		return Normalize(q, word.Zero), Normalize([]W{rem}, word.Zero)
	}

	n, m := len(v), len(u)-len(v)

	// Normalize so the top divisor word has its high bit set. The dividend
	// gains a word to hold the bits shifted out of its top.
	s := word.LeadingZeros(v[n-1])

	vn := make([]W, n)
	ShiftUp(vn, v, s)

	un := make([]W, len(u)+1)
	ShiftUp(un, u, s)

	q = make([]W, m+1)
	d := word.Doublet[W]{Low: vn[n-2], High: vn[n-1]}

	for j := m; j >= 0; j-- {
		window := un[j : j+n+1]

		var digit W

		top := word.Doublet[W]{Low: un[j+n-1], High: un[j+n]}
		if word.Compare21(top, d) >= 0 {
			// The window is below vn·B, so its top two words can at most
			// equal d. The digit is then B-1 or less.
			digit = ^W(0)
		} else {
			digit, _ = word.Division32(word.Triplet[W]{Low: un[j+n-2], Mid: un[j+n-1], High: un[j+n]}, d)
		}

		borrow := mulSub(window, vn, digit)
		for borrow {
			digit--

			c := Add(window[:n], window[:n], vn, false)
			window[n], c = word.Add(window[n], 0, c)
			borrow = !c
		}

		q[j] = digit
	}

	r = make([]W, n)
	ShiftDown(r, un[:n], s, word.Zero)

	return Normalize(q, word.Zero), Normalize(r, word.Zero)
}

// mulSub subtracts v·digit from x, which is one word longer than v, and
// reports whether the result went negative.
func mulSub[W word.Word](x, v []W, digit W) bool {
	var (
		carry  W
		borrow bool
	)

	for i := range v {
		p := word.MulAdd(v[i], digit, carry, 0)
		carry = p.High
		x[i], borrow = word.Sub(x[i], p.Low, borrow)
	}

	x[len(v)], borrow = word.Sub(x[len(v)], carry, borrow)

	return borrow
}
