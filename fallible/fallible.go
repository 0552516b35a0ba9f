// Package fallible pairs values with an overflow flag.
//
// A Fallible is built where an operation could overflow and consumed right
// away: unwrapped, chained with Map, or merged with an upstream flag. The flag
// is monotonic. Once set, no chained operation clears it.
package fallible

import (
	"github.com/zeebo/errs"
)

// Error is the error class for fallible results converted to Go errors.
var Error = errs.Class("fallible")

// ErrOverflow is reported by Err when the flag is set.
var ErrOverflow = Error.New("overflow")

// Fallible is a value and an overflow flag.
type Fallible[T any] struct {
	Value T
	Error bool
}

// New returns a fallible value with the given flag.
func New[T any](value T, err bool) Fallible[T] {
	return Fallible[T]{Value: value, Error: err}
}

// Exact returns value without an error.
func Exact[T any](value T) Fallible[T] {
	return Fallible[T]{Value: value}
}

// Invalid returns value with an error.
func Invalid[T any](value T) Fallible[T] {
	return Fallible[T]{Value: value, Error: true}
}

// Veto sets the flag when condition holds. The payload is unchanged.
func (f Fallible[T]) Veto(condition bool) Fallible[T] {
	f.Error = f.Error || condition

	return f
}

// Optional returns the value and true when no error occurred.
func (f Fallible[T]) Optional() (T, bool) {
	if f.Error {
		var zero T
		return zero, false
	}

	return f.Value, true
}

// Err returns the payload together with ErrOverflow when the flag is set.
// The payload is returned in both cases so callers may recover.
func (f Fallible[T]) Err() (T, error) {
	if f.Error {
		return f.Value, ErrOverflow
	}

	return f.Value, nil
}

// Components returns the payload and the flag.
func (f Fallible[T]) Components() (T, bool) {
	return f.Value, f.Error
}

// Join ORs an upstream flag into f.
func Join[T any](f Fallible[T], upstream bool) Fallible[T] {
	return f.Veto(upstream)
}

// Map applies fn to the payload and ORs the flags.
func Map[T, U any](f Fallible[T], fn func(T) Fallible[U]) Fallible[U] {
	u := fn(f.Value)
	u.Error = u.Error || f.Error

	return u
}

// Transform applies an exact fn to the payload and keeps the flag.
func Transform[T, U any](f Fallible[T], fn func(T) U) Fallible[U] {
	return Fallible[U]{Value: fn(f.Value), Error: f.Error}
}

// Equal reports whether a and b have equal payloads according to eq and the
// same flag.
func Equal[T any](a, b Fallible[T], eq func(T, T) bool) bool {
	return a.Error == b.Error && eq(a.Value, b.Value)
}

// Sink accumulates flags across a sequence of statements.
type Sink struct {
	err bool
}

// Set records the flag.
func (s *Sink) Set(err bool) {
	s.err = s.err || err
}

// Error reports whether any recorded flag was set.
func (s *Sink) Error() bool {
	return s.err
}

// Take records the flag of f and returns its payload.
func Take[T any](s *Sink, f Fallible[T]) T {
	s.Set(f.Error)

	return f.Value
}

// Wrap returns value with every flag recorded in s.
func Wrap[T any](s *Sink, value T) Fallible[T] {
	return Fallible[T]{Value: value, Error: s.err}
}
