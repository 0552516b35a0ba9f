package word

// Doublet is a double-width integer split into two halves. For signed T the
// low half holds raw bits and only the high half carries the sign.
type Doublet[T any] struct {
	Low  T
	High T
}

// Triplet is a triple-width integer split into three parts.
type Triplet[T any] struct {
	Low  T
	Mid  T
	High T
}

// Division is a quotient and a remainder.
type Division[Q, R any] struct {
	Quotient  Q
	Remainder R
}

// Compare21 returns -1, 0 or +1 when a is less than, equal to or greater than
// b as unsigned double-width integers.
func Compare21[W Word](a, b Doublet[W]) int {
	switch {
	case a.High != b.High:
		if a.High < b.High {
			return -1
		}

		return 1
	case a.Low != b.Low:
		if a.Low < b.Low {
			return -1
		}

		return 1
	}

	return 0
}

// Compare32 returns -1, 0 or +1 when a is less than, equal to or greater
// than b as unsigned triple-width integers.
func Compare32[W Word](a, b Triplet[W]) int {
	if c := Compare21(Doublet[W]{Low: a.Mid, High: a.High}, Doublet[W]{Low: b.Mid, High: b.High}); c != 0 {
		return c
	}

	switch {
	case a.Low < b.Low:
		return -1
	case a.Low > b.Low:
		return 1
	}

	return 0
}

// Plus21 returns a + b and the carry out.
func Plus21[W Word](a, b Doublet[W]) (Doublet[W], bool) {
	var c bool
	a.Low, c = Add(a.Low, b.Low, false)
	a.High, c = Add(a.High, b.High, c)

	return a, c
}

// Minus21 returns a - b and the borrow out.
func Minus21[W Word](a, b Doublet[W]) (Doublet[W], bool) {
	var c bool
	a.Low, c = Sub(a.Low, b.Low, false)
	a.High, c = Sub(a.High, b.High, c)

	return a, c
}

// Minus32 returns a - b and the borrow out.
func Minus32[W Word](a, b Triplet[W]) (Triplet[W], bool) {
	var c bool
	a.Low, c = Sub(a.Low, b.Low, false)
	a.Mid, c = Sub(a.Mid, b.Mid, c)
	a.High, c = Sub(a.High, b.High, c)

	return a, c
}

// Mul21 returns the exact product of a double-width a and a single word b.
func Mul21[W Word](a Doublet[W], b W) Triplet[W] {
	lo := Mul(a.Low, b)
	hi := Mul(a.High, b)

	var c bool
	t := Triplet[W]{Low: lo.Low}
	t.Mid, c = Add(lo.High, hi.Low, false)
	t.High, _ = Add(hi.High, 0, c)

	return t
}
