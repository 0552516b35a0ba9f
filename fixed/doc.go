// Package fixed implements multi-word fixed-width integers. An Int holds
// exactly N words of W and is signed or unsigned from construction; both
// properties are preserved by every operation.
//
// Operations combining two values require the same word count and
// signedness and panic otherwise. Overflow is reported through
// fallible.Fallible with the wrapped two's complement result as payload.
package fixed
