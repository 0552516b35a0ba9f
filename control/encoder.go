package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks to w.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Data writes data in the most compact block type that can carry it.
func (e *Encoder) Data(data []byte) (err error) {
	return e.Encode(&Block{
		Type: Smallest(data),
		Data: data,
	})
}

// Null writes a null block.
func (e *Encoder) Null() (err error) {
	return e.Encode(&Block{Type: Null})
}

// Encode writes b. The data must fit the block's type.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	head, err := header(b)
	if err != nil {
		return err
	}

	_, err = e.w.Write(head)
	if err != nil {
		return err
	}

	switch b.Type {
	case Data, Empty, Null:
		return nil
	case Data1, Data2:
		_, err = e.w.Write(b.Data[1:])
	default:
		_, err = e.w.Write(b.Data)
	}

	return err
}

// header returns the control byte of b and any size bytes that follow it.
func header(b *Block) (head []byte, err error) {
	size := len(b.Data)

	switch b.Type {
	case Null, Empty:
		if size != 0 {
			return nil, Error.New("invalid: type=%s size=%d", b.Type, size)
		}

		return []byte{b.Type.Prefix}, nil
	case Data:
		if size != 1 || b.Data[0]&Data.Mask != b.Data[0] {
			return nil, Error.New("invalid: type=%s data=%x", b.Type, b.Data)
		}
	case Data1:
		if size != 2 || b.Data[0]&Data1.Mask != b.Data[0] {
			return nil, Error.New("invalid: type=%s data=%x", b.Type, b.Data)
		}
	case Data2:
		if size != 3 || b.Data[0]&Data2.Mask != b.Data[0] {
			return nil, Error.New("invalid: type=%s data=%x", b.Type, b.Data)
		}
	case DataSize:
		if size == 0 || size > 64 {
			return nil, Error.New("invalid: type=%s size=%d", b.Type, size)
		}

		return []byte{DataSize.Prefix | byte(size-1)}, nil
	case DataSizeSize:
		if size == 0 || uint64(size) > MaxSize {
			return nil, Error.New("invalid: type=%s size=%d", b.Type, size)
		}

		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()
		if len(sb) == 0 {
			sb = []byte{0}
		}

		return append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...), nil
	default:
		return nil, Error.New("invalid: type=%s", b.Type)
	}

	return []byte{b.Type.Prefix | b.Data[0]}, nil
}
