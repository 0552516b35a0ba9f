package arbitrary

import (
	"math/big"

	"github.com/calebcase/ultimath/vector"
	"github.com/calebcase/ultimath/word"
)

// pattern is an infinitely long two's complement bit pattern.
type pattern[W word.Word] struct {
	body     []W
	appendix word.Bit
}

func newPattern[W word.Word](body []W, appendix word.Bit) pattern[W] {
	body = vector.Normalize(body, appendix)
	if len(body) == 0 {
		body = nil
	}

	return pattern[W]{body: body, appendix: appendix}
}

func (p pattern[W]) isZero() bool {
	return len(p.body) == 0 && p.appendix == word.Zero
}

func (p pattern[W]) negative() bool {
	return p.appendix == word.One
}

func (p pattern[W]) clone() pattern[W] {
	return pattern[W]{body: vector.Clone(p.body), appendix: p.appendix}
}

func (p pattern[W]) toggled() pattern[W] {
	z := make([]W, len(p.body))
	vector.Toggle(z, p.body)

	return pattern[W]{body: z, appendix: p.appendix.Toggled()}
}

func (p pattern[W]) negated() pattern[W] {
	z := make([]W, len(p.body)+1)
	a := vector.SubSigned(z, nil, word.Zero, p.body, p.appendix)

	return newPattern(z, a)
}

func (p pattern[W]) complement(increment bool) pattern[W] {
	if increment {
		return p.negated()
	}

	return p.toggled()
}

// magnitude returns |p| as a normalized unsigned body.
func (p pattern[W]) magnitude() []W {
	if p.negative() {
		return p.negated().body
	}

	return p.body
}

func (p pattern[W]) plus(q pattern[W]) pattern[W] {
	z := make([]W, max(len(p.body), len(q.body))+1)
	a := vector.AddSigned(z, p.body, p.appendix, q.body, q.appendix)

	return newPattern(z, a)
}

func (p pattern[W]) minus(q pattern[W]) pattern[W] {
	z := make([]W, max(len(p.body), len(q.body))+1)
	a := vector.SubSigned(z, p.body, p.appendix, q.body, q.appendix)

	return newPattern(z, a)
}

func (p pattern[W]) times(q pattern[W]) pattern[W] {
	pm, qm := p.magnitude(), q.magnitude()

	z := make([]W, len(pm)+len(qm))
	vector.Multiply(z, pm, qm)

	r := newPattern(z, word.Zero)
	if p.negative() != q.negative() {
		return r.negated()
	}

	return r
}

func (p pattern[W]) squared() pattern[W] {
	m := p.magnitude()

	z := make([]W, 2*len(m))
	vector.Square(z, m)

	return newPattern(z, word.Zero)
}

// division truncates toward zero; the remainder takes the sign of p.
func (p pattern[W]) division(q pattern[W]) (pattern[W], pattern[W]) {
	qu, re := vector.Divide(p.magnitude(), q.magnitude())

	quotient, remainder := newPattern(qu, word.Zero), newPattern(re, word.Zero)
	if p.negative() != q.negative() {
		quotient = quotient.negated()
	}
	if p.negative() {
		remainder = remainder.negated()
	}

	return quotient, remainder
}

func (p pattern[W]) up(s word.Shift) pattern[W] {
	d, ok := s.Natural()
	if !ok {
		return pattern[W]{}
	}

	if d == 0 || p.isZero() {
		return p
	}

	z := vector.Resize(p.body, len(p.body)+int(d/word.Size[W]())+1, p.appendix)
	vector.ShiftUp(z, z, d)

	return newPattern(z, p.appendix)
}

func (p pattern[W]) down(s word.Shift) pattern[W] {
	size := word.Size[W]()

	d, ok := s.Natural()
	if !ok || d/size >= uint(len(p.body)) {
		return pattern[W]{appendix: p.appendix}
	}

	if d == 0 {
		return p
	}

	z := make([]W, len(p.body)-int(d/size))
	vector.ShiftDown(z, p.body, d, p.appendix)

	return newPattern(z, p.appendix)
}

// compare orders patterns as signed numbers.
func (p pattern[W]) compare(q pattern[W]) int {
	if p.appendix != q.appendix {
		if p.negative() {
			return -1
		}

		return 1
	}

	sign := 1
	if p.negative() {
		sign = -1
	}

	switch {
	case len(p.body) < len(q.body):
		return -sign
	case len(p.body) > len(q.body):
		return sign
	}

	return vector.Compare(p.body, q.body)
}

func (p pattern[W]) equal(q pattern[W]) bool {
	return p.compare(q) == 0
}

func (p pattern[W]) count(b word.Bit) word.Count {
	if b == p.appendix {
		return word.Infinity(vector.Count(p.body, b.Toggled()))
	}

	return word.Finite(vector.Count(p.body, b))
}

func (p pattern[W]) ascending(b word.Bit) word.Count {
	n, all := vector.Ascending(p.body, b)
	if all && b == p.appendix {
		return word.Infinity(0)
	}

	return word.Finite(n)
}

// descending counts the run from the infinite top. A run of the appendix is
// infinite less the bits below it.
func (p pattern[W]) descending(b word.Bit) word.Count {
	if b != p.appendix {
		return word.Finite(0)
	}

	n, _ := vector.Descending(p.body, b)

	return word.Infinity(uint(len(p.body))*word.Size[W]() - n)
}

func (p pattern[W]) entropy() uint {
	return p.descending(p.appendix).Less() + 1
}

func (p pattern[W]) big() *big.Int {
	b := new(big.Int).SetBytes(word.Reverse(word.Bytes(p.body)))
	if p.negative() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), uint(len(p.body))*word.Size[W]()))
	}

	return b
}

func patternOf[W word.Word](b *big.Int) pattern[W] {
	m := newPattern(word.FromBytes[W](word.Reverse(b.Bytes()), word.Zero), word.Zero)
	if b.Sign() < 0 {
		return m.negated()
	}

	return m
}
