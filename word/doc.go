// Package word provides the single machine word layer of the arithmetic
// kernel.
//
// A word is any unsigned Go integer type. Every multi-word value in this
// module is a little-endian sequence of words (least significant word first)
// plus one appendix bit that conceptually repeats forever above the stored
// words.
//
// Single Word Arithmetic
//
// The primitives here produce exact double-width (Doublet) and triple-width
// (Triplet) results so that the multi-word engines in package vector never
// lose a carry:
//
//  | operation  | operands             | result                       |
//  |------------|----------------------|------------------------------|
//  | Mul        | W × W                | Doublet                      |
//  | Division21 | Doublet ÷ W          | W quotient, W remainder      |
//  | Division32 | Triplet ÷ Doublet    | W quotient, Doublet remainder|
//
// Reciprocal Division
//
// A Divider turns division by a fixed divisor into a multiplication and a
// shift:
//
//  q = (x·M + (Add ? M : 0)) >> Shift
//
// A Divider21 stores the normalized divisor and the reciprocal
// ⌊(B²-1)/d⌋ - B so that a Doublet ÷ W step costs two multiplications and
// at most two corrections.
//
// Counts
//
// Bit counts and shift distances are Count values. A Count is either a
// natural number or ∞ - k, which is what counting the appendix-dominated tail
// of an arbitrary integer yields.
package word
