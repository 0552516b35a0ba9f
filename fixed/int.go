package fixed

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// Error is the error class for mismatched fixed-width operands.
var Error = errs.Class("fixed")

// Int is an integer of exactly Len() words.
type Int[W word.Word] struct {
	words  []W
	signed bool
}

// New returns zero with n words.
func New[W word.Word](n int, signed bool) Int[W] {
	if n <= 0 {
		panic(Error.New("word count must be positive: %d", n))
	}

	return Int[W]{words: make([]W, n), signed: signed}
}

// FromWords returns the value with the given little-endian words. The words
// are copied.
func FromWords[W word.Word](words []W, signed bool) Int[W] {
	x := New[W](len(words), signed)
	copy(x.words, words)

	return x
}

// Min returns the least value with n words.
func Min[W word.Word](n int, signed bool) Int[W] {
	x := New[W](n, signed)
	if signed {
		x.words[n-1] = W(1) << (word.Size[W]() - 1)
	}

	return x
}

// Max returns the greatest value with n words.
func Max[W word.Word](n int, signed bool) Int[W] {
	x := Min[W](n, signed)
	vector.Toggle(x.words, x.words)

	return x
}

func (x Int[W]) like() Int[W] {
	return Int[W]{words: make([]W, len(x.words)), signed: x.signed}
}

func (x Int[W]) check(y Int[W]) {
	if len(x.words) != len(y.words) || x.signed != y.signed {
		panic(Error.New("mismatched operands: %d/%t and %d/%t", len(x.words), x.signed, len(y.words), y.signed))
	}
}

// Len returns the number of words.
func (x Int[W]) Len() int {
	return len(x.words)
}

// Size returns the width in bits.
func (x Int[W]) Size() uint {
	return uint(len(x.words)) * word.Size[W]()
}

// IsSigned reports whether x is signed.
func (x Int[W]) IsSigned() bool {
	return x.signed
}

// IsZero reports whether x is zero.
func (x Int[W]) IsZero() bool {
	return vector.IsZero(x.words)
}

// IsNegative reports whether x is below zero.
func (x Int[W]) IsNegative() bool {
	return x.Appendix() == word.One
}

// Appendix returns the bit that extends x: its sign bit when signed.
func (x Int[W]) Appendix() word.Bit {
	if !x.signed || len(x.words) == 0 {
		return word.Zero
	}

	return word.Msb(x.words[len(x.words)-1])
}

// Word returns word i of x, extended with the appendix past the top.
func (x Int[W]) Word(i int) W {
	return vector.Load(x.words, i, x.Appendix())
}

// Bit returns bit i of x, extended with the appendix past the top.
func (x Int[W]) Bit(i uint) word.Bit {
	return vector.Bit(x.words, i, x.Appendix())
}

// Words returns a copy of the words of x.
func (x Int[W]) Words() []W {
	return vector.Clone(x.words)
}

// WithWords calls fn with exclusive access to the words of x. Copies of x
// made before the call keep their value.
func (x *Int[W]) WithWords(fn func(words []W)) {
	x.words = vector.Clone(x.words)
	fn(x.words)
}

// WithBytes calls fn with the little-endian bytes of x and stores them back
// when fn returns.
func (x *Int[W]) WithBytes(fn func(b []byte)) {
	b := word.Bytes(x.words)
	fn(b)

	x.words = vector.Clone(x.words)
	copy(x.words, word.FromBytes[W](b, word.Zero))
}

// Equal reports whether x and y hold the same value.
func (x Int[W]) Equal(y Int[W]) bool {
	x.check(y)

	return vector.Compare(x.words, y.words) == 0
}

// Compare returns -1, 0 or +1 when x is less than, equal to or greater than
// y.
func (x Int[W]) Compare(y Int[W]) int {
	x.check(y)

	xa, ya := x.Appendix(), y.Appendix()
	if xa != ya {
		if xa == word.One {
			return -1
		}

		return 1
	}

	return vector.Compare(x.words, y.words)
}

// String returns x in base 10.
func (x Int[W]) String() string {
	return x.Big().String()
}

// Format implements fmt.Formatter through the math/big formatting verbs.
func (x Int[W]) Format(s fmt.State, ch rune) {
	x.Big().Format(s, ch)
}

// Equal reports whether two fallible values agree in both value and flag.
func Equal[W word.Word](a, b fallible.Fallible[Int[W]]) bool {
	return fallible.Equal(a, b, Int[W].Equal)
}
