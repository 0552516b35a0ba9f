package vector

import (
	"github.com/calebcase/ultimath/word"
)

// MulWord sets z to x·y + carry and returns the high word of the product.
// z and x must have the same length and may alias.
func MulWord[W word.Word](z, x []W, y, carry W) W {
	c := carry
	for i := range z {
		p := word.MulAdd(x[i], y, c, 0)
		z[i], c = p.Low, p.High
	}

	return c
}

// MulAddWord adds x·y to z and returns the word carried out of z. z and x
// must have the same length.
func MulAddWord[W word.Word](z, x []W, y W) W {
	var c W
	for i := range z {
		p := word.MulAdd(x[i], y, z[i], c)
		z[i], c = p.Low, p.High
	}

	return c
}

// Multiply sets z to the unsigned product of x and y. z must have
// len(x)+len(y) words and must not alias x or y.
func Multiply[W word.Word](z, x, y []W) {
	if len(z) != len(x)+len(y) {
		panic(Error.New("product needs %d words, have %d", len(x)+len(y), len(z)))
	}

	for i := range z {
		z[i] = 0
	}

	if len(x) == 0 {
		return
	}

	for i, w := range y {
		if w == 0 {
			continue
		}

		z[i+len(x)] = MulAddWord(z[i:i+len(x)], x, w)
	}
}

// Square sets z to x·x. z must have 2·len(x) words and must not alias x.
//
// Each cross product x[i]·x[j] with i < j is accumulated once, doubled with a
// one bit shift, and the diagonal squares are added last.
func Square[W word.Word](z, x []W) {
	n := len(x)
	if len(z) != 2*n {
		panic(Error.New("square needs %d words, have %d", 2*n, len(z)))
	}

	for i := range z {
		z[i] = 0
	}

	for i := 0; i+1 < n; i++ {
		z[i+n] = MulAddWord(z[2*i+1:i+n], x[i+1:], x[i])
	}

	ShiftUp(z, z, 1)

	var c bool
	for i := 0; i < n; i++ {
		p := word.Mul(x[i], x[i])
		z[2*i], c = word.Add(z[2*i], p.Low, c)
		z[2*i+1], c = word.Add(z[2*i+1], p.High, c)
	}
}
