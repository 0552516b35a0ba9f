// Package integer encodes integers as control data blocks.
//
// A block carries the magnitude of the value in big-endian order. Signed
// schemas move the magnitude up one bit and store the sign in the low bit, so
// small values of either sign fit directly in the control byte.
//
// Arbitrary unsigned integers may be infinite. The value 2^∞ - k is written
// as the negative block of magnitude k and needs a signed schema.
package integer
