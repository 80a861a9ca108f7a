package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
)

func TestValueEncoder(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		enc := NewValueEncoder(engine)

		enc.WriteSlice([]float64{1.8288})
		enc.WriteSlice([]float64{-40, 273.15, math.Inf(-1)})
		enc.WriteSlice(nil)
		require.Equal(t, 4, enc.Len())
		require.Len(t, enc.Bytes(), 32)
		require.Equal(t, endian.AppendFloat64s(engine, nil, []float64{1.8288}), enc.Bytes()[:8])

		data := slices.Clone(enc.Bytes())
		enc.Finish()
		require.Equal(t, 0, enc.Len())
		require.Panics(t, func() { enc.WriteSlice([]float64{1}) })

		dec := NewValueDecoder(engine)
		values, err := dec.Decode(data, 4)
		require.NoError(t, err)
		require.Equal(t, []float64{1.8288, -40, 273.15, math.Inf(-1)}, values)

		values, err = dec.Decode(data, 2)
		require.NoError(t, err)
		require.Equal(t, []float64{1.8288, -40}, values)
	}
}

func TestValueDecoder_Short(t *testing.T) {
	dec := NewValueDecoder(endian.GetLittleEndianEngine())

	_, err := dec.Decode(make([]byte, 15), 2)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)

	_, err = dec.Decode(nil, -1)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)
}

func BenchmarkValueEncoder_WriteSlice(b *testing.B) {
	values := make([]float64, 1024)
	for i := range values {
		values[i] = float64(i) * 0.3048
	}

	for b.Loop() {
		enc := NewValueEncoder(endian.GetLittleEndianEngine())
		enc.WriteSlice(values)
		enc.Finish()
	}
}
