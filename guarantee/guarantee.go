// Package guarantee provides wrappers that cannot hold invalid values.
//
// Constructors return false instead of a wrapper when the input would break
// the guarantee, so a zero divisor or an infinite magnitude is refused up
// front rather than reported later.
package guarantee

import (
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the error class for violated guarantees.
var Error = errs.Class("guarantee")

// Zeroer is implemented by values that can report being zero.
type Zeroer interface {
	IsZero() bool
}

// Signer is implemented by values that can report being negative.
type Signer interface {
	IsNegative() bool
}

// Infiniter is implemented by values that can report being infinite.
type Infiniter interface {
	IsInfinite() bool
}

// Nonzero holds a value that is not zero. Only NonzeroOf and NonzeroValue
// produce a valid Nonzero; the zero Nonzero holds nothing and Value panics
// on it.
type Nonzero[T any] struct {
	value T
	valid bool
}

// Value returns the wrapped value.
func (n Nonzero[T]) Value() T {
	if !n.valid {
		panic(Error.New("uninitialized nonzero %T", n.value))
	}

	return n.value
}

// NonzeroOf returns x as a Nonzero integer.
func NonzeroOf[T constraints.Integer](x T) (Nonzero[T], bool) {
	if x == 0 {
		return Nonzero[T]{}, false
	}

	return Nonzero[T]{value: x, valid: true}, true
}

// NonzeroValue returns x as a Nonzero value.
func NonzeroValue[T Zeroer](x T) (Nonzero[T], bool) {
	if x.IsZero() {
		return Nonzero[T]{}, false
	}

	return Nonzero[T]{value: x, valid: true}, true
}

// Natural holds a value that is not negative.
type Natural[T any] struct {
	value T
}

// Value returns the wrapped value.
func (n Natural[T]) Value() T {
	return n.value
}

// NaturalOf returns x as a Natural integer.
func NaturalOf[T constraints.Integer](x T) (Natural[T], bool) {
	if x < 0 {
		return Natural[T]{}, false
	}

	return Natural[T]{value: x}, true
}

// NaturalValue returns x as a Natural value.
func NaturalValue[T Signer](x T) (Natural[T], bool) {
	if x.IsNegative() {
		return Natural[T]{}, false
	}

	return Natural[T]{value: x}, true
}

// Finite holds a value with a finite two's complement representation.
type Finite[T any] struct {
	value T
}

// Value returns the wrapped value.
func (f Finite[T]) Value() T {
	return f.value
}

// FiniteOf returns x as a Finite integer. Builtin integers are always finite.
func FiniteOf[T constraints.Integer](x T) Finite[T] {
	return Finite[T]{value: x}
}

// FiniteValue returns x as a Finite value.
func FiniteValue[T Infiniter](x T) (Finite[T], bool) {
	if x.IsInfinite() {
		return Finite[T]{}, false
	}

	return Finite[T]{value: x}, true
}

// Must returns v or panics when ok is false. It is meant for constants and
// tests where the guarantee is known to hold.
func Must[T any](v T, ok bool) T {
	if !ok {
		panic(Error.New("guarantee violated: %T", v))
	}

	return v
}
