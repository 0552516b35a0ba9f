package word_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ultimath/word"
)

func TestRewidth(t *testing.T) {
	t.Run("widen", func(t *testing.T) {
		src := []uint16{0x0201, 0x0403, 0x0605}

		require.Equal(t, []uint32{0x04030201, 0x00000605}, word.Rewidth[uint32](src, word.Zero))
		require.Equal(t, []uint32{0x04030201, 0xffff0605}, word.Rewidth[uint32](src, word.One))
		require.Equal(t, []uint64{0xffff060504030201}, word.Rewidth[uint64](src, word.One))
	})

	t.Run("narrow", func(t *testing.T) {
		src := []uint64{0x0807060504030201}

		require.Equal(t, []uint16{0x0201, 0x0403, 0x0605, 0x0807}, word.Rewidth[uint16](src, word.Zero))
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, word.Bytes(src))
	})

	t.Run("roundtrip", func(t *testing.T) {
		src := []uint32{0xdeadbeef, 0xcafebabe, 0x01234567}

		b := word.Bytes(src)
		require.Len(t, b, 12)
		require.Equal(t, src, word.FromBytes[uint32](b, word.Zero))
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, word.Rewidth[uint8]([]uint64{}, word.One))
	})
}

func TestReverse(t *testing.T) {
	require.Equal(t, uint8(0x12), word.ReverseBytes(uint8(0x12)))
	require.Equal(t, uint16(0x3412), word.ReverseBytes(uint16(0x1234)))
	require.Equal(t, uint32(0x78563412), word.ReverseBytes(uint32(0x12345678)))
	require.Equal(t, uint64(0xefcdab8967452301), word.ReverseBytes(uint64(0x0123456789abcdef)))

	// A reversed little-endian view is the big-endian view.
	le := word.Bytes([]uint32{0x01020304})
	require.Equal(t, []byte{1, 2, 3, 4}, word.Reverse(le))
}

func TestBitCounting(t *testing.T) {
	type TC struct {
		w          uint8
		b          word.Bit
		count      uint
		ascending  uint
		descending uint
	}

	tcs := []TC{
		{w: 0b0000_0000, b: word.Zero, count: 8, ascending: 8, descending: 8},
		{w: 0b0000_0000, b: word.One, count: 0, ascending: 0, descending: 0},
		{w: 0b0001_0100, b: word.Zero, count: 6, ascending: 2, descending: 3},
		{w: 0b1110_1011, b: word.One, count: 6, ascending: 2, descending: 3},
		{w: 0b1111_1111, b: word.One, count: 8, ascending: 8, descending: 8},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%08b/%d", i, tc.w, tc.b), func(t *testing.T) {
			require.Equal(t, tc.count, word.CountOf(tc.w, tc.b))
			require.Equal(t, tc.ascending, word.Ascending(tc.w, tc.b))
			require.Equal(t, tc.descending, word.Descending(tc.w, tc.b))
		})
	}

	require.Equal(t, word.One, word.Msb(uint16(0x8000)))
	require.Equal(t, word.Zero, word.Msb(uint16(0x7fff)))
	require.Equal(t, uint8(0xff), word.Extension[uint8](word.One))
}

func TestCount(t *testing.T) {
	type TC struct {
		a, b    word.Count
		compare int
	}

	tcs := []TC{
		{a: word.Finite(0), b: word.Finite(0), compare: 0},
		{a: word.Finite(1), b: word.Finite(2), compare: -1},
		{a: word.Finite(1 << 40), b: word.Infinity(1 << 40), compare: -1},
		{a: word.Infinity(0), b: word.Infinity(1), compare: 1},
		{a: word.Infinity(3), b: word.Infinity(3), compare: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.compare, tc.a.Compare(tc.b))
			require.Equal(t, -tc.compare, tc.b.Compare(tc.a))
		})
	}

	require.Equal(t, "∞", word.Infinity(0).String())
	require.Equal(t, "∞-2", word.Infinity(2).String())
	require.Equal(t, "7", word.Finite(7).String())

	n, ok := word.Infinity(0).Natural()
	require.False(t, ok)
	require.Zero(t, n)
}

func TestShift(t *testing.T) {
	require.True(t, word.ShiftOf(0).IsZero())
	require.False(t, word.ShiftOf(7).Overshifts(8))
	require.True(t, word.ShiftOf(8).Overshifts(8))
	require.True(t, word.NewShift(word.Infinity(5)).Overshifts(1<<20))

	require.Equal(t, word.ShiftOf(1), word.ShiftOf(9).Masked(8))
	require.Equal(t, word.ShiftOf(7), word.NewShift(word.Infinity(0)).Masked(8))
	require.Equal(t, word.ShiftOf(5), word.NewShift(word.Infinity(2)).Masked(8))
}
