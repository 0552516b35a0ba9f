package word_test

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/word"
)

func TestSize(t *testing.T) {
	require.Equal(t, uint(8), word.Size[uint8]())
	require.Equal(t, uint(16), word.Size[uint16]())
	require.Equal(t, uint(32), word.Size[uint32]())
	require.Equal(t, uint(64), word.Size[uint64]())
	require.Equal(t, uint(bits.UintSize), word.Size[uint]())
}

func TestAddSub(t *testing.T) {
	type TC struct {
		name  string
		a, b  uint8
		carry bool
		sum   uint8
		out   bool
	}

	tcs := []TC{
		{name: "0+0", a: 0, b: 0, sum: 0},
		{name: "0+0+1", a: 0, b: 0, carry: true, sum: 1},
		{name: "255+1", a: 255, b: 1, sum: 0, out: true},
		{name: "255+0+1", a: 255, b: 0, carry: true, sum: 0, out: true},
		{name: "255+255+1", a: 255, b: 255, carry: true, sum: 255, out: true},
		{name: "100+27", a: 100, b: 27, sum: 127},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			sum, out := word.Add(tc.a, tc.b, tc.carry)
			require.Equal(t, tc.sum, sum)
			require.Equal(t, tc.out, out)

			// Subtraction undoes the addition and reports the same carry.
			a, borrow := word.Sub(sum, tc.b, tc.carry)
			require.Equal(t, tc.a, a)
			require.Equal(t, tc.out, borrow)
		})
	}
}

func TestMulExhaustive8(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			p := word.Mul(uint8(a), uint8(b))
			if got := uint16(p.High)<<8 | uint16(p.Low); got != uint16(a*b) {
				require.Equal(t, uint16(a*b), got, "a=%d b=%d", a, b)
			}
		}
	}
}

func TestMul64(t *testing.T) {
	rng := rand.New(rand.NewSource(64))

	for i := 0; i < 10000; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		hi, lo := bits.Mul64(a, b)

		p := word.Mul(a, b)
		require.Equal(t, word.Doublet[uint64]{Low: lo, High: hi}, p)
	}

	p := word.MulAdd(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))
	require.Equal(t, word.Doublet[uint64]{Low: ^uint64(0), High: ^uint64(0)}, p)
}

func TestDivision21Exhaustive8(t *testing.T) {
	for d := 1; d < 256; d++ {
		divisor := guarantee.Must(guarantee.NonzeroOf(uint8(d)))

		for n := 0; n < 1<<16; n++ {
			x := word.Doublet[uint8]{Low: uint8(n), High: uint8(n >> 8)}

			f := word.Division21(x, divisor)
			if f.Value.Quotient != uint8(n/d) || f.Value.Remainder != uint8(n%d) || f.Error != (n/d > 255) {
				require.Failf(t, "division mismatch", "n=%d d=%d got=%+v", n, d, f)
			}
		}
	}
}

func TestDiv21Precondition(t *testing.T) {
	require.Panics(t, func() {
		word.Div21(word.Doublet[uint8]{High: 3}, 3)
	})
}

// div32 is the reference 3-by-2 division on uint8 words.
func div32(n word.Triplet[uint8], d word.Doublet[uint8]) (uint8, uint16) {
	x := uint32(n.High)<<16 | uint32(n.Mid)<<8 | uint32(n.Low)
	y := uint32(d.High)<<8 | uint32(d.Low)

	return uint8(x / y), uint16(x % y)
}

func TestDivision32(t *testing.T) {
	type TC struct {
		name string
		n    word.Triplet[uint8]
		d    word.Doublet[uint8]
	}

	tcs := []TC{
		{
			name: "top words equal",
			n:    word.Triplet[uint8]{Low: 0xff, Mid: 0x00, High: 0x80},
			d:    word.Doublet[uint8]{Low: 0x01, High: 0x80},
		},
		{
			name: "top words equal, maximum quotient",
			n:    word.Triplet[uint8]{Low: 0xff, Mid: 0xfe, High: 0xff},
			d:    word.Doublet[uint8]{Low: 0xff, High: 0xff},
		},
		{
			name: "top words equal, one correction",
			n:    word.Triplet[uint8]{Low: 0x00, Mid: 0x00, High: 0x80},
			d:    word.Doublet[uint8]{Low: 0xff, High: 0x80},
		},
		{
			name: "trial digit two too large",
			n:    word.Triplet[uint8]{Low: 0x00, Mid: 0x00, High: 0x7f},
			d:    word.Doublet[uint8]{Low: 0xff, High: 0x80},
		},
		{
			name: "zero dividend",
			n:    word.Triplet[uint8]{},
			d:    word.Doublet[uint8]{Low: 0x00, High: 0x80},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			q, r := word.Division32(tc.n, tc.d)
			eq, er := div32(tc.n, tc.d)

			require.Equal(t, eq, q)
			require.Equal(t, er, uint16(r.High)<<8|uint16(r.Low))
		})
	}
}

func TestDivision32Sweep(t *testing.T) {
	for dh := 0x80; dh < 0x100; dh += 3 {
		for dl := 0; dl < 0x100; dl += 17 {
			d := word.Doublet[uint8]{Low: uint8(dl), High: uint8(dh)}

			// The top two words of the dividend range over values just below d,
			// which includes every case where the top words are equal.
			for _, top := range []int{0, dh<<8 - 1, dh << 8, dh<<8 | dl - 1} {
				if top < 0 || top >= dh<<8|dl {
					continue
				}

				for low := 0; low < 0x100; low += 5 {
					n := word.Triplet[uint8]{Low: uint8(low), Mid: uint8(top), High: uint8(top >> 8)}

					q, r := word.Division32(n, d)
					eq, er := div32(n, d)

					require.Equal(t, eq, q, "n=%v d=%v", n, d)
					require.Equal(t, er, uint16(r.High)<<8|uint16(r.Low), "n=%v d=%v", n, d)
				}
			}
		}
	}
}

func TestDivision32Precondition(t *testing.T) {
	require.Panics(t, func() {
		word.Division32(word.Triplet[uint8]{High: 1}, word.Doublet[uint8]{High: 0x7f})
	})
	require.Panics(t, func() {
		word.Division32(word.Triplet[uint8]{Mid: 1, High: 0x80}, word.Doublet[uint8]{Low: 1, High: 0x80})
	})
}

func BenchmarkMul64(b *testing.B) {
	x, y := uint64(0xdeadbeefcafebabe), uint64(0x0123456789abcdef)

	for n := 0; n < b.N; n++ {
		word.Mul(x, y)
	}
}
