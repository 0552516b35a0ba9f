// Package vector implements the word sequence engines of the arithmetic
// kernel: normalization, complement, shifts, addition, multiplication and
// division over little-endian []W bodies.
//
// A body is read together with an appendix bit. Loads past the end of a body
// return the appendix extension, so a body of any length stands for an
// infinitely long two's complement pattern. Bodies are normalized when their
// top word differs from the appendix extension.
//
// Operations write into caller-provided slices unless documented otherwise
// and never retain them. Inputs and outputs may alias where the comment says
// so.
//
// Division
//
// Divide is Knuth's Algorithm D. Both operands are shifted left until the top
// divisor word has its high bit set. Each quotient digit is estimated by a
// 3-by-2 word division (word.Division32), which is exact or one too large,
// and corrected by adding the divisor back. When the top two words of the
// running remainder equal the top two words of the divisor the estimate does
// not fit a word, and the digit is clamped to the maximum word instead.
package vector
