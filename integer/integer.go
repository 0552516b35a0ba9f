package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/ultimath/control"
)

// Error is the error class for integer codec failures.
var Error = errs.Class("integer")

// Block is a signed integer number. Value holds the big-endian magnitude.
// Infinite unsigned values 2^∞ - k travel as Negative with magnitude k.
type Block struct {
	Value    []byte
	Negative bool
}

// zero returns b, or a zero byte when b is empty. big.Int encodes zero as an
// empty byte array, but we desire zero to be an actual zero byte.
func zero(b []byte) []byte {
	if len(b) == 0 {
		return []byte{0}
	}

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return zero(i.Bytes()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	b.Value = zero(i.Bytes())

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits bounds the width of the values when nonzero. Signed values take
	// one of the bits for the sign.
	Bits uint64

	// Signed carries the sign in the low bit. Without it negative blocks
	// are rejected.
	Signed bool

	// Nullable permits null blocks, decoded as a nil Value.
	Nullable bool
}

// check returns an error when the magnitude i with the given sign does not
// fit the schema.
func (s Schema) check(i *big.Int, negative bool) error {
	if negative && !s.Signed {
		return Error.New("negative value for unsigned schema")
	}

	if s.Bits == 0 {
		return nil
	}

	bits := uint64(i.BitLen())
	limit := s.Bits
	if s.Signed {
		limit--

		// The most negative value has one more bit of magnitude.
		if negative && bits == s.Bits && i.TrailingZeroBits() == uint(bits-1) {
			return nil
		}
	}

	if bits > limit {
		return Error.New("too large: bits=%d schema=%d", bits, s.Bits)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     *control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd *control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader.
func (d *Decoder) Decode(b *Block) (err error) {
	cb := &control.Block{}

	err = d.cd.Decode(cb)
	if err != nil {
		return err
	}

	defer Error.WrapP(&err)

	switch cb.Type {
	case control.Null:
		if !d.schema.Nullable {
			return Error.New("null value for non-nullable schema")
		}

		b.Value = nil
		b.Negative = false

		return nil
	case control.Empty:
		return Error.New("empty block")
	}

	i := new(big.Int).SetBytes(cb.Data)
	if d.schema.Signed {
		b.Negative = i.Bit(0) == 1
		i.Rsh(i, 1)
	} else {
		b.Negative = false
	}

	err = d.schema.check(i, b.Negative)
	if err != nil {
		return err
	}

	b.Value = zero(i.Bytes())

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     *control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce *control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// pad left pads b with zero bytes to size.
func pad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}

	return append(make([]byte, size-len(b)), b...)
}

// Encode write a block to the writer. A nil Value is written as null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null value for non-nullable schema")
		}

		return e.ce.Null()
	}

	i := new(big.Int).SetBytes(b.Value)

	err = e.schema.check(i, b.Negative)
	if err != nil {
		return err
	}

	if e.schema.Signed {
		i.Lsh(i, 1)
		if b.Negative {
			i.SetBit(i, 0, 1)
		}
	}

	bits := i.BitLen()
	bytes := zero(i.Bytes())

	switch {
	case bits <= 7:
		return e.ce.Encode(&control.Block{
			Type: control.Data,
			Data: bytes,
		})
	case bits <= 13: // 5+8
		return e.ce.Encode(&control.Block{
			Type: control.Data1,
			Data: pad(bytes, 2),
		})
	case bits <= 20: // 4+8+8
		return e.ce.Encode(&control.Block{
			Type: control.Data2,
			Data: pad(bytes, 3),
		})
	case len(bytes) <= 64: // 2^6
		return e.ce.Encode(&control.Block{
			Type: control.DataSize,
			Data: bytes,
		})
	case len(bytes) <= control.MaxSize:
		return e.ce.Encode(&control.Block{
			Type: control.DataSizeSize,
			Data: bytes,
		})
	}

	return Error.New("too large")
}
