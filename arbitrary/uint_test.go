package arbitrary_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ultimath/arbitrary"
	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/guarantee"
	"github.com/calebcase/ultimath/word"
)

type U = arbitrary.UInt[uint8]

func finite(n int64) U {
	return arbitrary.ExactlyUInt[uint8](n).Value
}

// inf returns 2^∞ - k.
func inf(k int64) U {
	return arbitrary.Infinity(finite(k))
}

func requireUInt(t *testing.T, expected U, actual U) {
	t.Helper()

	if !expected.Equal(actual) {
		require.Failf(t, "value mismatch", "expected=%s actual=%s", expected, actual)
	}
}

func TestUIntPlusMinus(t *testing.T) {
	type TC struct {
		name     string
		a, b     U
		plus     U
		plusErr  bool
		minus    U
		minusErr bool
	}

	tcs := []TC{
		{name: "finite", a: finite(5), b: finite(3), plus: finite(8), minus: finite(2)},
		{name: "finite underflow", a: finite(3), b: finite(5), plus: finite(8), minus: inf(2), minusErr: true},
		{name: "infinite and finite", a: inf(5), b: finite(2), plus: inf(3), minus: inf(7)},
		{name: "infinite wraps", a: inf(1), b: finite(1), plus: finite(0), plusErr: true, minus: inf(2)},
		{name: "infinite and larger infinite", a: inf(3), b: inf(5), plus: inf(8), plusErr: true, minus: finite(2)},
		{name: "infinite and smaller infinite", a: inf(5), b: inf(3), plus: inf(8), plusErr: true, minus: inf(2), minusErr: true},
		{name: "finite and infinite", a: finite(2), b: inf(3), plus: inf(1), minus: finite(5), minusErr: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			p := tc.a.Plus(tc.b)
			requireUInt(t, tc.plus, p.Value)
			require.Equal(t, tc.plusErr, p.Error)

			m := tc.a.Minus(tc.b)
			requireUInt(t, tc.minus, m.Value)
			require.Equal(t, tc.minusErr, m.Error)
		})
	}
}

func TestUIntTimes(t *testing.T) {
	type TC struct {
		name     string
		a, b     U
		expected U
		err      bool
	}

	tcs := []TC{
		{name: "finite", a: finite(12), b: finite(34), expected: finite(408)},
		{name: "infinite by one", a: inf(3), b: finite(1), expected: inf(3)},
		{name: "one by infinite", a: finite(1), b: inf(3), expected: inf(3)},
		{name: "infinite by zero", a: inf(3), b: finite(0), expected: finite(0)},
		{name: "infinite by two", a: inf(3), b: finite(2), expected: inf(6), err: true},
		{name: "infinite by infinite", a: inf(3), b: inf(2), expected: finite(6), err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f := tc.a.Times(tc.b)
			requireUInt(t, tc.expected, f.Value)
			require.Equal(t, tc.err, f.Error)

			s := tc.a.Squared()
			require.True(t, fallible.Equal(tc.a.Times(tc.a), s, U.Equal))
		})
	}
}

func TestUIntDivision(t *testing.T) {
	type TC struct {
		name      string
		a, b      U
		quotient  U
		remainder U
		err       bool
	}

	tcs := []TC{
		{name: "finite", a: finite(200), b: finite(7), quotient: finite(28), remainder: finite(4)},
		{name: "finite by infinite", a: finite(5), b: inf(3), quotient: finite(0), remainder: finite(5)},
		{name: "infinite by smaller infinite", a: inf(3), b: inf(5), quotient: finite(1), remainder: finite(2)},
		{name: "infinite by itself", a: inf(3), b: inf(3), quotient: finite(1), remainder: finite(0)},
		{name: "infinite by larger infinite", a: inf(5), b: inf(3), quotient: finite(0), remainder: inf(5)},
		{name: "infinite by one", a: inf(6), b: finite(1), quotient: inf(6), remainder: finite(0)},
		{name: "infinite by two", a: inf(7), b: finite(2), quotient: inf(3), remainder: inf(1), err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f := tc.a.Division(guarantee.Must(guarantee.NonzeroValue(tc.b)))
			requireUInt(t, tc.quotient, f.Value.Quotient)
			requireUInt(t, tc.remainder, f.Value.Remainder)
			require.Equal(t, tc.err, f.Error)
		})
	}
}

func TestUIntOrder(t *testing.T) {
	require.Equal(t, -1, finite(5).Compare(inf(100)))
	require.Equal(t, 1, inf(100).Compare(finite(5)))
	require.Equal(t, 1, inf(3).Compare(inf(5)))
	require.Equal(t, 0, inf(3).Compare(inf(3)))
	require.Equal(t, -1, finite(3).Compare(finite(300)))

	requireUInt(t, finite(0), finite(0).Complement(true).Value)
	requireUInt(t, inf(5), finite(5).Complement(true).Value)
	requireUInt(t, finite(5), inf(5).Complement(true).Value)
	requireUInt(t, inf(6), finite(5).Toggled())

	require.Equal(t, "∞-5", inf(5).String())
	require.Equal(t, "5", finite(5).String())
	require.Equal(t, "∞-5", fmt.Sprintf("%d", inf(5)))

	// 2^∞ - 1 is all ones.
	require.Equal(t, word.Infinity(0), inf(1).Descending(word.One))
	require.Equal(t, word.Infinity(0), inf(1).Ascending(word.One))
	require.Equal(t, word.Finite(0), inf(1).Ascending(word.Zero))
	require.Equal(t, uint(1), inf(1).Entropy())
}

func TestUIntShift(t *testing.T) {
	requireUInt(t, inf(40), inf(5).Up(word.ShiftOf(3)))
	requireUInt(t, inf(1), inf(5).Down(word.ShiftOf(3)))
	requireUInt(t, inf(1), inf(5).Down(word.NewShift(word.Infinity(0))))
	requireUInt(t, finite(0), inf(5).Up(word.NewShift(word.Infinity(0))))
	requireUInt(t, finite(0), finite(255).Down(word.ShiftOf(8)))
}

func TestUIntConversions(t *testing.T) {
	f := arbitrary.ExactlyUInt[uint32](-3)
	require.True(t, f.Error)
	require.True(t, f.Value.IsInfinite())
	requireUInt(t, inf(3), arbitrary.FromWordsUInt(word.Rewidth[uint8](f.Value.Words(), word.One), word.One))

	l, ok := arbitrary.LenientlyUInt[uint16](1e6 + 0.25)
	require.True(t, ok)
	require.True(t, l.Error)
	require.Equal(t, "1000000", l.Value.String())

	l, ok = arbitrary.LenientlyUInt[uint16](-2)
	require.True(t, ok)
	require.True(t, l.Error)
	require.Equal(t, "∞-2", l.Value.String())

	b := arbitrary.FromBigUInt[uint64](new(big.Int).Lsh(big.NewInt(1), 200))
	require.False(t, b.Error)
	require.Equal(t, 4, b.Value.Len())
	require.Equal(t, uint(202), b.Value.Entropy())
}

func TestUIntRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Finite operands behave like math/big naturals.
	for i := 0; i < 1000; i++ {
		a, b := new(big.Int).Abs(randomBig(rng)), new(big.Int).Abs(randomBig(rng))
		x := arbitrary.FromBigUInt[uint32](a).Value
		y := arbitrary.FromBigUInt[uint32](b).Value

		require.Equal(t, 0, new(big.Int).Add(a, b).Cmp(x.Plus(y).Value.Big()))
		require.Equal(t, 0, new(big.Int).Mul(a, b).Cmp(x.Times(y).Value.Big()))
		require.Equal(t, a.Cmp(b) < 0, x.Minus(y).Error)
		require.Equal(t, a.Cmp(b), x.Compare(y))

		if divisor, ok := guarantee.NonzeroValue(y); ok {
			f := x.Division(divisor)
			q, r := new(big.Int).QuoRem(a, b, new(big.Int))
			require.False(t, f.Error)
			require.Equal(t, 0, q.Cmp(f.Value.Quotient.Big()))
			require.Equal(t, 0, r.Cmp(f.Value.Remainder.Big()))
		}
	}
}
