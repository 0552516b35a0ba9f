package systems_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/systems"
	"github.com/calebcase/ultimath/word"
)

func TestExactly(t *testing.T) {
	require.Equal(t, fallible.Exact(int8(-1)), systems.Exactly[int8](int64(-1)))
	require.Equal(t, fallible.Invalid(uint8(0xff)), systems.Exactly[uint8](int8(-1)))
	require.Equal(t, fallible.Invalid(int8(-1)), systems.Exactly[int8](uint8(255)))
	require.Equal(t, fallible.Invalid(int8(0)), systems.Exactly[int8](256))
	require.Equal(t, fallible.Exact(uint64(math.MaxUint64)), systems.Exactly[uint64](uint64(math.MaxUint64)))
	require.Equal(t, fallible.Invalid(int64(-1)), systems.Exactly[int64](uint64(math.MaxUint64)))
}

func TestLeniently(t *testing.T) {
	type TC struct {
		name     string
		f        float64
		ok       bool
		expected fallible.Fallible[int8]
	}

	tcs := []TC{
		{name: "NaN", f: math.NaN()},
		{name: "+Inf", f: math.Inf(1)},
		{name: "-Inf", f: math.Inf(-1)},
		{name: "exact", f: -128, ok: true, expected: fallible.Exact(int8(-128))},
		{name: "fraction", f: 12.75, ok: true, expected: fallible.Invalid(int8(12))},
		{name: "negative fraction", f: -12.75, ok: true, expected: fallible.Invalid(int8(-12))},
		{name: "too large", f: 128, ok: true, expected: fallible.Invalid(int8(-128))},
		{name: "too small", f: -129.5, ok: true, expected: fallible.Invalid(int8(127))},
		{name: "huge", f: 1e30, ok: true, expected: fallible.Invalid(int8(0))},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f, ok := systems.Leniently[int8](tc.f)
			require.Equal(t, tc.ok, ok)

			if ok {
				require.Equal(t, tc.expected, f)
			}
		})
	}

	u, ok := systems.Leniently[uint64](18446744073709549568)
	require.True(t, ok)
	require.Equal(t, fallible.Exact(uint64(18446744073709549568)), u)

	u, ok = systems.Leniently[uint64](-0.5)
	require.True(t, ok)
	require.Equal(t, fallible.Invalid(uint64(0)), u)

	i, ok := systems.Leniently[int64](-9223372036854775808)
	require.True(t, ok)
	require.Equal(t, fallible.Exact(int64(math.MinInt64)), i)
}

func TestCounts(t *testing.T) {
	type TC struct {
		x                int8
		b                word.Bit
		count, asc, desc uint
	}

	tcs := []TC{
		{x: 0, b: word.Zero, count: 8, asc: 8, desc: 8},
		{x: -1, b: word.One, count: 8, asc: 8, desc: 8},
		{x: -1, b: word.Zero, count: 0, asc: 0, desc: 0},
		{x: -16, b: word.One, count: 4, asc: 0, desc: 4},
		{x: -16, b: word.Zero, count: 4, asc: 4, desc: 0},
		{x: 6, b: word.Zero, count: 6, asc: 1, desc: 5},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d/%d", i, tc.x, tc.b), func(t *testing.T) {
			require.Equal(t, tc.count, systems.Count(tc.x, tc.b))
			require.Equal(t, tc.asc, systems.Ascending(tc.x, tc.b))
			require.Equal(t, tc.desc, systems.Descending(tc.x, tc.b))
		})
	}

	require.Equal(t, uint(1), systems.Entropy(int8(0)))
	require.Equal(t, uint(1), systems.Entropy(int8(-1)))
	require.Equal(t, uint(8), systems.Entropy(int8(127)))
	require.Equal(t, uint(8), systems.Entropy(int8(-128)))
	require.Equal(t, uint(4), systems.Entropy(int8(-5)))
	require.Equal(t, uint(9), systems.Entropy(uint8(255)))
	require.Equal(t, uint(65), systems.Entropy(uint64(math.MaxUint64)))
}

func TestNewDivider(t *testing.T) {
	_, ok := systems.NewDivider(uint32(0))
	require.False(t, ok)

	d, ok := systems.NewDivider(uint32(10))
	require.True(t, ok)
	require.Equal(t, word.Division[uint32, uint32]{Quotient: 429496729, Remainder: 5}, d.Division(math.MaxUint32))
}
