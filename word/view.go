package word

import (
	"math/bits"
)

// Rewidth re-views the little-endian sequence src as words of type To. Bits
// past the end of src are filled with the appendix. The result has the
// minimum number of To words that covers every bit of src.
func Rewidth[To, From Word](src []From, appendix Bit) []To {
	fs, ts := Size[From](), Size[To]()

	total := uint(len(src)) * fs
	dst := make([]To, (total+ts-1)/ts)

	for i := range dst {
		var acc uint64

		for off := uint(0); off < ts; {
			p := uint(i)*ts + off
			j, k := p/fs, p%fs

			w := Extension[From](appendix)
			if j < uint(len(src)) {
				w = src[j]
			}

			take := fs - k
			if ts-off < take {
				take = ts - off
			}

			acc |= ((uint64(w) >> k) & mask(take)) << off
			off += take
		}

		dst[i] = To(acc)
	}

	return dst
}

// Bytes re-views src as little-endian bytes.
func Bytes[W Word](src []W) []byte {
	return Rewidth[byte](src, Zero)
}

// FromBytes re-views little-endian bytes as words of type W, filling the
// last word with the appendix.
func FromBytes[W Word](src []byte, appendix Bit) []W {
	return Rewidth[W](src, appendix)
}

// ReverseBytes returns w with its bytes in reverse order.
func ReverseBytes[W Word](w W) W {
	switch Size[W]() {
	case 16:
		return W(bits.ReverseBytes16(uint16(w)))
	case 32:
		return W(bits.ReverseBytes32(uint32(w)))
	case 64:
		return W(bits.ReverseBytes64(uint64(w)))
	}

	return w
}

// Reverse returns a copy of b in reverse order. It converts a little-endian
// byte view into a big-endian one and back.
func Reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}

	return r
}
