// Package arbitrary implements growable integers as a normalized body of
// words plus an appendix bit that repeats forever above the body.
//
// Int is signed: the appendix is the sign and arithmetic never overflows,
// the body simply grows. UInt is unsigned: a set appendix marks an infinite
// value, the two's complement pattern of a negative number read as 2^∞ - k.
// UInt arithmetic reports an error whenever a result would need a different
// amount of infinity than its operands provide:
//
//	| Operation | Error when                                               |
//	|-----------|----------------------------------------------------------|
//	| Plus      | appendix(a) + appendix(b) != appendix(result)            |
//	| Minus     | appendix(a) - appendix(b) != appendix(result)            |
//	| Times     | both infinite, or one infinite and the other above one   |
//	| Division  | infinite dividend and finite divisor other than one      |
//
// Division involving an infinite divisor is exact: a finite dividend gives
// {0, a}; an infinite dividend gives {1, a - b} or {0, a} by unsigned order.
//
// Values are immutable. WithWords and WithBytes work on a private copy and
// renormalize it when the callback returns.
package arbitrary
