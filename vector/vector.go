package vector

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/ultimath/word"
)

// Error is the error class for violated vector preconditions.
var Error = errs.Class("vector")

// Load returns body[i]. Words below the body are zero and words above it
// are the appendix extension.
func Load[W word.Word](body []W, i int, appendix word.Bit) W {
	if i < 0 {
		return 0
	}

	if i >= len(body) {
		return word.Extension[W](appendix)
	}

	return body[i]
}

// Bit returns bit i of body or the appendix when i is out of range.
func Bit[W word.Word](body []W, i uint, appendix word.Bit) word.Bit {
	size := word.Size[W]()
	if i/size >= uint(len(body)) {
		return appendix
	}

	return word.Bit(body[i/size]>>(i%size)) & word.One
}

// Normalize returns body without redundant top words.
func Normalize[W word.Word](body []W, appendix word.Bit) []W {
	ext := word.Extension[W](appendix)

	n := len(body)
	for n > 0 && body[n-1] == ext {
		n--
	}

	return body[:n]
}

// IsNormalized reports whether body has no redundant top words.
func IsNormalized[W word.Word](body []W, appendix word.Bit) bool {
	return len(body) == 0 || body[len(body)-1] != word.Extension[W](appendix)
}

// Clone returns a copy of body.
func Clone[W word.Word](body []W) []W {
	if len(body) == 0 {
		return nil
	}

	c := make([]W, len(body))
	copy(c, body)

	return c
}

// Resize returns a copy of body with n words, extended with the appendix or
// truncated.
func Resize[W word.Word](body []W, n int, appendix word.Bit) []W {
	z := make([]W, n)
	for i := range z {
		z[i] = Load(body, i, appendix)
	}

	return z
}

// Compare returns -1, 0 or +1 when x is less than, equal to or greater than
// y as unsigned numbers. The bodies may differ in length.
func Compare[W word.Word](x, y []W) int {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}

	for i := n - 1; i >= 0; i-- {
		a, b := Load(x, i, word.Zero), Load(y, i, word.Zero)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// IsZero reports whether every word of body is zero.
func IsZero[W word.Word](body []W) bool {
	for _, w := range body {
		if w != 0 {
			return false
		}
	}

	return true
}

// Count returns the number of bits in body equal to b.
func Count[W word.Word](body []W, b word.Bit) uint {
	var n uint
	for _, w := range body {
		n += word.CountOf(w, b)
	}

	return n
}

// Ascending returns the length of the run of b starting at the least
// significant bit of body. The boolean is true when the run spans the whole
// body.
func Ascending[W word.Word](body []W, b word.Bit) (uint, bool) {
	var n uint
	for _, w := range body {
		k := word.Ascending(w, b)
		n += k

		if k != word.Size[W]() {
			return n, false
		}
	}

	return n, true
}

// Descending returns the length of the run of b starting at the most
// significant bit of body. The boolean is true when the run spans the whole
// body.
func Descending[W word.Word](body []W, b word.Bit) (uint, bool) {
	var n uint
	for i := len(body) - 1; i >= 0; i-- {
		k := word.Descending(body[i], b)
		n += k

		if k != word.Size[W]() {
			return n, false
		}
	}

	return n, true
}
