package integer

import (
	"math/big"

	"github.com/calebcase/ultimath/arbitrary"
	"github.com/calebcase/ultimath/fallible"
	"github.com/calebcase/ultimath/fixed"
	"github.com/calebcase/ultimath/word"
)

func fromBig(i *big.Int) Block {
	return Block{
		Value:    zero(new(big.Int).Abs(i).Bytes()),
		Negative: i.Sign() < 0,
	}
}

// Big returns the value of b. A nil Value is zero.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// FromInt returns the block of x.
func FromInt[W word.Word](x arbitrary.Int[W]) Block {
	return fromBig(x.Big())
}

// FromUInt returns the block of x. Infinite values are negative blocks.
func FromUInt[W word.Word](x arbitrary.UInt[W]) Block {
	return fromBig(x.Big())
}

// FromFixed returns the block of x.
func FromFixed[W word.Word](x fixed.Int[W]) Block {
	return fromBig(x.Big())
}

// ToInt returns the arbitrary integer of b.
func ToInt[W word.Word](b Block) arbitrary.Int[W] {
	return arbitrary.FromBig[W](b.Big())
}

// ToUInt returns the arbitrary unsigned integer of b.
func ToUInt[W word.Word](b Block) arbitrary.UInt[W] {
	return ToInt[W](b).Unsigned()
}

// ToFixed returns the fixed width integer of n words of b. The error flag is
// set when the value does not fit.
func ToFixed[W word.Word](b Block, n int, signed bool) fallible.Fallible[fixed.Int[W]] {
	return fixed.FromBig[W](n, signed, b.Big())
}

// EncodeInt writes x.
func EncodeInt[W word.Word](e *Encoder, x arbitrary.Int[W]) error {
	b := FromInt(x)

	return e.Encode(&b)
}

// DecodeInt reads an arbitrary integer.
func DecodeInt[W word.Word](d *Decoder) (x arbitrary.Int[W], err error) {
	var b Block

	err = d.Decode(&b)
	if err != nil {
		return x, err
	}

	return ToInt[W](b), nil
}

// EncodeUInt writes x.
func EncodeUInt[W word.Word](e *Encoder, x arbitrary.UInt[W]) error {
	b := FromUInt(x)

	return e.Encode(&b)
}

// DecodeUInt reads an arbitrary unsigned integer.
func DecodeUInt[W word.Word](d *Decoder) (x arbitrary.UInt[W], err error) {
	var b Block

	err = d.Decode(&b)
	if err != nil {
		return x, err
	}

	return ToUInt[W](b), nil
}
