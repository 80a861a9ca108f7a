package encoding

import (
	"fmt"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/pool"
)

// ValueEncoder writes float64 magnitudes as raw IEEE-754 bits, 8 bytes each,
// into a pooled buffer.
type ValueEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewValueEncoder creates an encoder writing in the byte order of engine.
func NewValueEncoder(engine endian.EndianEngine) *ValueEncoder {
	return &ValueEncoder{
		engine: engine,
		buf:    pool.GetSeriesBuffer(),
	}
}

// WriteSlice encodes values with a single buffer extension.
//
// Panics if Finish has been called.
func (e *ValueEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("value encoder already finished")
	}
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	e.buf.B = endian.AppendFloat64s(e.engine, e.buf.B, values)
}

// Bytes returns the encoded values. The slice is only valid until the next
// write or Finish.
func (e *ValueEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("value encoder already finished")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *ValueEncoder) Len() int {
	return e.count
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *ValueEncoder) Finish() {
	if e.buf != nil {
		pool.PutSeriesBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ValueDecoder reads values written by ValueEncoder. It is stateless.
type ValueDecoder struct {
	engine endian.EndianEngine
}

// NewValueDecoder creates a decoder reading in the byte order of engine.
func NewValueDecoder(engine endian.EndianEngine) ValueDecoder {
	return ValueDecoder{engine: engine}
}

// Decode returns the count values at the start of data.
//
// Returns:
//   - []float64: the decoded values
//   - error: errs.ErrInvalidNumericValuesCount when data holds fewer than
//     count values
func (d ValueDecoder) Decode(data []byte, count int) ([]float64, error) {
	if count < 0 || len(data) < count*8 {
		return nil, fmt.Errorf("%w: need %d values, payload holds %d bytes", errs.ErrInvalidNumericValuesCount, count, len(data))
	}

	return endian.Float64s(d.engine, data[:count*8])
}
