package fixed

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// FromBig converts b to an Int with n words. The payload is b modulo the
// width and the error is set when b is out of range.
func FromBig[W word.Word](n int, signed bool, b *big.Int) fallible.Fallible[Int[W]] {
	x := New[W](n, signed)

	mask := new(big.Int).Lsh(big.NewInt(1), x.Size())
	mask.Sub(mask, big.NewInt(1))

	low := new(big.Int).And(b, mask)
	words := word.FromBytes[W](word.Reverse(low.Bytes()), word.Zero)
	copy(x.words, words)

	return fallible.New(x, x.Big().Cmp(b) != 0)
}

// Big returns x as a math/big integer.
func (x Int[W]) Big() *big.Int {
	b := new(big.Int).SetBytes(word.Reverse(word.Bytes(x.words)))
	if x.IsNegative() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), x.Size()))
	}

	return b
}

// Exactly converts s to an Int with n words. The payload is the truncated
// pattern and the error is set when s does not fit.
func Exactly[W word.Word, S constraints.Integer](n int, signed bool, s S) fallible.Fallible[Int[W]] {
	b := new(big.Int)
	if s < 0 {
		b.SetInt64(int64(s))
	} else {
		b.SetUint64(uint64(s))
	}

	return FromBig[W](n, signed, b)
}

// Leniently converts f to an Int with n words, discarding any fraction. It
// returns false for NaN and infinities. The error is set when a fraction was
// discarded or the integer part does not fit.
func Leniently[W word.Word](n int, signed bool, f float64) (fallible.Fallible[Int[W]], bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallible.Fallible[Int[W]]{}, false
	}

	tr := math.Trunc(f)
	b, _ := big.NewFloat(tr).Int(nil)

	return fallible.Join(FromBig[W](n, signed, b), tr != f), true
}

// Count returns the number of bits of x equal to b.
func (x Int[W]) Count(b word.Bit) uint {
	return vector.Count(x.words, b)
}

// Ascending returns the length of the run of b starting at the least
// significant bit of x.
func (x Int[W]) Ascending(b word.Bit) uint {
	n, _ := vector.Ascending(x.words, b)

	return n
}

// Descending returns the length of the run of b starting at the most
// significant bit of x.
func (x Int[W]) Descending(b word.Bit) uint {
	n, _ := vector.Descending(x.words, b)

	return n
}

// Entropy returns the number of bits needed to hold x including one appendix
// bit.
func (x Int[W]) Entropy() uint {
	return x.Size() - x.Descending(x.Appendix()) + 1
}
