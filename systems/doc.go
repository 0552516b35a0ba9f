// Package systems implements the arithmetic kernel for Go's builtin
// fixed-width integers, int8 through uint64, as generic functions over
// constraints.Integer.
//
// Every operation that can overflow returns a fallible.Fallible whose payload
// is the wrapped two's complement result. Shifts, toggles and full-width
// multiplication never fail.
//
//	| Operation      | Error when                                   |
//	|----------------|----------------------------------------------|
//	| Complement     | increment and x is the signed minimum        |
//	| Absolute       | x is the signed minimum                      |
//	| Plus, Minus    | the exact result does not fit                |
//	| Times, Squared | the exact product does not fit               |
//	| Division       | signed minimum divided by -1                 |
//	| DivisionDoublet| the quotient does not fit one word           |
//	| Exactly        | the source value does not fit                |
package systems
