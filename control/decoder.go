package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// ErrTruncated is returned when the input ends inside a block.
var ErrTruncated = Error.New("truncated block")

// Decoder reads control blocks from r.
type Decoder struct {
	r io.Reader

	consumed uint64
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

func (d *Decoder) read(n uint64) (data []byte, err error) {
	data = make([]byte, n)

	m, err := io.ReadFull(d.r, data)
	d.consumed += uint64(m)

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, oops.Trace(ErrTruncated)
	}
	if err != nil {
		return nil, oops.Trace(err)
	}

	return data, nil
}

// Decode reads the next block into b. It returns io.EOF, unwrapped, when the
// input ends cleanly between blocks.
func (d *Decoder) Decode(b *Block) (err error) {
	var head [1]byte

	n, err := d.r.Read(head[:])
	for n == 0 && err == nil {
		n, err = d.r.Read(head[:])
	}
	if n == 0 {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return Error.Wrap(oops.Trace(err))
	}
	d.consumed++

	defer Error.WrapP(&err)

	t, ok := Parse(head[0])
	if !ok {
		return Error.New("invalid control byte: %08b", head[0])
	}

	value := head[0] & t.Mask
	b.Type = t
	b.Data = nil

	switch t {
	case Null, Empty:
		return nil
	case Data:
		b.Data = []byte{value}

		return nil
	case Data1, Data2:
		extra := uint64(1)
		if t == Data2 {
			extra = 2
		}

		rest, err := d.read(extra)
		if err != nil {
			return err
		}

		b.Data = append([]byte{value}, rest...)

		return nil
	case DataSize:
		b.Data, err = d.read(uint64(value) + 1)

		return err
	}

	sb, err := d.read(uint64(value) + 1)
	if err != nil {
		return err
	}

	s := new(big.Int).SetBytes(sb)
	s.Add(s, big.NewInt(1))
	if !s.IsUint64() || s.Uint64() > MaxSize {
		return Error.New("invalid: size=%s", s)
	}

	b.Data, err = d.read(s.Uint64())

	return err
}
