package vector

import (
	"github.com/calebcase/ultimath/word"
)

// Toggle sets z to the bitwise complement of x. z and x may alias.
func Toggle[W word.Word](z, x []W) {
	for i := range z {
		z[i] = ^Load(x, i, word.Zero)
	}
}

// Complement sets z to ^x, plus one when increment is set, and returns the
// carry out of the top word. z and x may alias.
func Complement[W word.Word](z, x []W, increment bool) bool {
	c := increment
	for i := range z {
		z[i], c = word.Add(^Load(x, i, word.Zero), 0, c)
	}

	return c
}

// Add sets z to x + y + carry and returns the carry out. x and y are extended
// with zero to the length of z. z may alias x or y.
func Add[W word.Word](z, x, y []W, carry bool) bool {
	c := carry
	for i := range z {
		z[i], c = word.Add(Load(x, i, word.Zero), Load(y, i, word.Zero), c)
	}

	return c
}

// AddWord sets z to x + y and returns the carry out.
func AddWord[W word.Word](z, x []W, y W) bool {
	c := false
	for i := range z {
		var w W
		if i == 0 {
			w = y
		}

		z[i], c = word.Add(Load(x, i, word.Zero), w, c)
	}

	return c
}

// Sub sets z to x - y - borrow and returns the borrow out. x and y are
// extended with zero to the length of z. z may alias x or y.
func Sub[W word.Word](z, x, y []W, borrow bool) bool {
	b := borrow
	for i := range z {
		z[i], b = word.Sub(Load(x, i, word.Zero), Load(y, i, word.Zero), b)
	}

	return b
}

// SubWord sets z to x - y and returns the borrow out.
func SubWord[W word.Word](z, x []W, y W) bool {
	b := false
	for i := range z {
		var w W
		if i == 0 {
			w = y
		}

		z[i], b = word.Sub(Load(x, i, word.Zero), w, b)
	}

	return b
}

// AddSigned sets z to the two's complement sum of x and y, each read with its
// appendix, and returns the appendix of the exact result. z must be long
// enough to hold one more word than the longer operand for the result to be
// exact.
func AddSigned[W word.Word](z []W, x []W, xa word.Bit, y []W, ya word.Bit) word.Bit {
	c := false
	for i := range z {
		z[i], c = word.Add(Load(x, i, xa), Load(y, i, ya), c)
	}

	// The appendix of the sum is xa + ya + carry taken modulo two.
	return word.Bit(uint8(xa)+uint8(ya)+uint8(word.BitOf(c))) & word.One
}

// SubSigned sets z to the two's complement difference of x and y, each read
// with its appendix, and returns the appendix of the exact result.
func SubSigned[W word.Word](z []W, x []W, xa word.Bit, y []W, ya word.Bit) word.Bit {
	// x - y = x + ^y + 1
	c := true
	for i := range z {
		z[i], c = word.Add(Load(x, i, xa), ^Load(y, i, ya), c)
	}

	return word.Bit(uint8(xa)+uint8(ya.Toggled())+uint8(word.BitOf(c))) & word.One
}
