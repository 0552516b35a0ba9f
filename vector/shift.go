package vector

import (
	"github.com/calebcase/ultimath/word"
)

// ShiftUp sets z to x shifted toward the most significant end by distance
// bits. Vacated low bits are zero and bits shifted past the end of z are
// dropped. x reads as zero past its end. z and x may alias.
func ShiftUp[W word.Word](z, x []W, distance uint) {
	size := word.Size[W]()

	words := distance / size
	if words >= uint(len(z)) {
		for i := range z {
			z[i] = 0
		}

		return
	}

	n, k := int(words), distance%size

	for i := len(z) - 1; i >= 0; i-- {
		hi, lo := Load(x, i-n, word.Zero), Load(x, i-n-1, word.Zero)

		if k == 0 {
			z[i] = hi
		} else {
			z[i] = hi<<k | lo>>(size-k)
		}
	}
}

// ShiftDown sets z to x shifted toward the least significant end by distance
// bits. x is read with its appendix, so vacated high bits take the appendix
// and a shift past the end of x leaves only the extension. z and x may alias.
func ShiftDown[W word.Word](z, x []W, distance uint, appendix word.Bit) {
	size := word.Size[W]()
	ext := word.Extension[W](appendix)

	words := distance / size
	if words >= uint(len(x)) {
		for i := range z {
			z[i] = ext
		}

		return
	}

	n, k := int(words), distance%size

	for i := range z {
		lo, hi := Load(x, i+n, appendix), Load(x, i+n+1, appendix)

		if k == 0 {
			z[i] = lo
		} else {
			z[i] = lo>>k | hi<<(size-k)
		}
	}
}

// Truncate clears the bits of z at and above bit n.
func Truncate[W word.Word](z []W, n uint) {
	size := word.Size[W]()

	for i := range z {
		lo := uint(i) * size
		switch {
		case lo >= n:
			z[i] = 0
		case n-lo < size:
			z[i] &= ^W(0) >> (size - (n - lo))
		}
	}
}
