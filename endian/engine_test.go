package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestFloat64s(t *testing.T) {
	values := []float64{0, 1.8288, -40, 273.15, math.Inf(1), math.SmallestNonzeroFloat64}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := AppendFloat64s(engine, []byte{0xAA}, values)
		require.Len(t, buf, 1+len(values)*8)
		require.Equal(t, byte(0xAA), buf[0])

		decoded, err := Float64s(engine, buf[1:])
		require.NoError(t, err)
		require.Equal(t, values, decoded)
	}
}

func TestAppendFloat64s_SpareCapacity(t *testing.T) {
	dst := make([]byte, 2, 64)
	out := AppendFloat64s(GetLittleEndianEngine(), dst, []float64{1, 2})

	require.Len(t, out, 18)
	require.Same(t, &dst[0], &out[0])
}

func TestFloat64s_ByteOrder(t *testing.T) {
	little := AppendFloat64s(GetLittleEndianEngine(), nil, []float64{1})
	big := AppendFloat64s(GetBigEndianEngine(), nil, []float64{1})

	// 1.0 is 0x3FF0000000000000.
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, little)
	require.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, big)
}

func TestFloat64s_Truncated(t *testing.T) {
	_, err := Float64s(GetLittleEndianEngine(), make([]byte, 12))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	values, err := Float64s(GetLittleEndianEngine(), nil)
	require.NoError(t, err)
	require.Empty(t, values)
}
