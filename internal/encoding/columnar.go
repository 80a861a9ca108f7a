package encoding

import (
	"fmt"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

// ColumnarEncoder writes a column of values into a pooled buffer.
type ColumnarEncoder[T any] interface {
	// WriteSlice appends values to the column.
	WriteSlice(values []T)
	// Bytes returns the encoded column. The slice is only valid until the
	// next write or Finish.
	Bytes() []byte
	// Len returns the number of values written.
	Len() int
	// Finish releases the buffer. The encoder is unusable afterwards.
	Finish()
}

// ColumnarDecoder reads a column written by the matching ColumnarEncoder.
type ColumnarDecoder[T any] interface {
	// Decode returns the first count values of data.
	Decode(data []byte, count int) ([]T, error)
}

var (
	_ ColumnarEncoder[float64] = (*ValueEncoder)(nil)
	_ ColumnarEncoder[float64] = (*GorillaEncoder)(nil)
	_ ColumnarDecoder[float64] = ValueDecoder{}
	_ ColumnarDecoder[float64] = GorillaDecoder{}
)

// NewNumericEncoder returns the float64 encoder for enc. Raw values are
// written in the byte order of engine; a Gorilla stream is always
// most-significant bit first.
//
// Returns:
//   - ColumnarEncoder[float64]: the encoder, to be released with Finish
//   - error: errs.ErrUnsupportedEncoding for an unknown encoding
func NewNumericEncoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarEncoder[float64], error) {
	switch enc {
	case format.TypeRaw:
		return NewValueEncoder(engine), nil
	case format.TypeGorilla:
		return NewGorillaEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedEncoding, uint8(enc))
	}
}

// NewNumericDecoder returns the float64 decoder for enc.
//
// Returns:
//   - ColumnarDecoder[float64]: the decoder
//   - error: errs.ErrUnsupportedEncoding for an unknown encoding
func NewNumericDecoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarDecoder[float64], error) {
	switch enc {
	case format.TypeRaw:
		return NewValueDecoder(engine), nil
	case format.TypeGorilla:
		return NewGorillaDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedEncoding, uint8(enc))
	}
}
