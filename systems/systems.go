package systems

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/word"
)

// Size returns the width of T in bits.
func Size[T constraints.Integer]() uint {
	var zero T

	return uint(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed type.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// Min returns the least value of T.
func Min[T constraints.Integer]() T {
	if !IsSigned[T]() {
		return 0
	}

	var one T = 1

	return one << (Size[T]() - 1)
}

// Max returns the greatest value of T.
func Max[T constraints.Integer]() T {
	return ^Min[T]()
}

// Appendix returns the bit that extends x: its sign for signed types and
// zero otherwise.
func Appendix[T constraints.Integer](x T) word.Bit {
	return word.BitOf(x < 0)
}

// raw returns the bits of x zero-extended to 64 bits.
func raw[T constraints.Integer](x T) uint64 {
	size := Size[T]()
	if size == 64 {
		return uint64(x)
	}

	return uint64(x) & (1<<size - 1)
}

// Toggled returns the bitwise complement of x.
func Toggled[T constraints.Integer](x T) T {
	return ^x
}

// Complement returns ^x, plus one when increment is set. The error is set
// only when incrementing the signed minimum, whose negation wraps to itself.
func Complement[T constraints.Integer](x T, increment bool) fallible.Fallible[T] {
	if !increment {
		return fallible.Exact(^x)
	}

	return fallible.New(^x+1, IsSigned[T]() && x == Min[T]())
}

// Magnitude returns |x| in the unsigned type M, which must be at least as
// wide as T. It is exact for every x, including the signed minimum.
func Magnitude[M constraints.Unsigned, T constraints.Integer](x T) M {
	if x < 0 {
		return 0 - M(x)
	}

	return M(x)
}

// Absolute returns |x| in T. The error is set for the signed minimum.
func Absolute[T constraints.Integer](x T) fallible.Fallible[T] {
	if x < 0 {
		return Complement(x, true)
	}

	return fallible.Exact(x)
}

// Up shifts x toward the most significant bit. Distances of the width or
// more, including infinite ones, produce zero.
func Up[T constraints.Integer](x T, s word.Shift) T {
	if s.Overshifts(Size[T]()) {
		return 0
	}

	d, _ := s.Natural()

	return x << d
}

// Down shifts x toward the least significant bit, filling with the sign for
// signed types. Distances of the width or more leave only the fill.
func Down[T constraints.Integer](x T, s word.Shift) T {
	if s.Overshifts(Size[T]()) {
		if x < 0 {
			return ^T(0)
		}

		return 0
	}

	d, _ := s.Natural()

	return x >> d
}

// UpMasked shifts x up by the distance reduced modulo the width.
func UpMasked[T constraints.Integer](x T, s word.Shift) T {
	return Up(x, s.Masked(Size[T]()))
}

// DownMasked shifts x down by the distance reduced modulo the width.
func DownMasked[T constraints.Integer](x T, s word.Shift) T {
	return Down(x, s.Masked(Size[T]()))
}
