// Package endian provides the byte orders used by encoded measurement series.
//
// An EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
// Series default to little-endian; the chosen order is recorded in the
// series header so a decoder always reads values the way they were written:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, []float64{1.5, 2.25})
//	values, err := endian.Float64s(engine, buf)
//
// All functions are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/measure/errs"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends the IEEE-754 bits of values to dst, 8 bytes each.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	dst = growBytes(dst, len(values)*8)
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// Float64s decodes a payload written by AppendFloat64s.
//
// Returns:
//   - []float64: the decoded values
//   - error: errs.ErrInvalidPayload when len(src) is not a multiple of 8
func Float64s(engine EndianEngine, src []byte) ([]float64, error) {
	if len(src)%8 != 0 {
		return nil, fmt.Errorf("%w: float payload of %d bytes is not a multiple of 8", errs.ErrInvalidPayload, len(src))
	}

	values := make([]float64, len(src)/8)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}

	return values, nil
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}

	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
