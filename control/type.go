package control

import (
	"github.com/zeebo/errs"
)

// Error is the error class for framing failures.
var Error = errs.Class("control")

// MaxSize is the largest data size a decoder accepts.
const MaxSize = 1 << 32

// Type is a control block type: the fixed prefix bits of its control byte
// and the mask of the bits it leaves for data or size.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// String returns the abbreviation of the type.
func (t Type) String() string {
	return t.Abbr
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Control block types.
var (
	Unknown      = Type{}
	Data         = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1        = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2        = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	Empty        = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null         = Type{0b_0000_0000, 0b_0000_0000, "n"}

	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		Empty,
		Null,
	}
)

// Parse returns the type of the control byte b.
func Parse(b byte) (t Type, ok bool) {
	return Types.Match(b)
}

// Block is a single control block.
type Block struct {
	Type Type
	Data []byte
}

// Smallest returns the most compact type that can carry data.
func Smallest(data []byte) Type {
	size := len(data)

	switch {
	case size == 0:
		return Empty
	case size == 1 && data[0]&Data.Mask == data[0]:
		return Data
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return Data1
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return Data2
	case size <= 64:
		return DataSize
	}

	return DataSizeSize
}
