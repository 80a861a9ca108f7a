package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

func gorillaBytes(values ...[]float64) ([]byte, int) {
	enc := NewGorillaEncoder()
	defer enc.Finish()

	for _, v := range values {
		enc.WriteSlice(v)
	}

	return slices.Clone(enc.Bytes()), enc.Len()
}

func TestGorilla_RoundTrip(t *testing.T) {
	drift := make([]float64, 500)
	for i := range drift {
		drift[i] = 21.5 + math.Sin(float64(i)/20)*0.25
	}

	tests := []struct {
		name   string
		values []float64
	}{
		{"single", []float64{273.15}},
		{"constant", slices.Repeat([]float64{-40}, 100)},
		{"drifting", drift},
		{"sign changes", []float64{1, -1, 2, -2, 0, math.Copysign(0, -1)}},
		{"special values", []float64{math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64, 1}},
		{"tiny xor", []float64{1, math.Nextafter(1, 2), 1, math.Nextafter(1, 0)}},
		{"wide xor", []float64{0, -math.MaxFloat64, math.SmallestNonzeroFloat64, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, n := gorillaBytes(tt.values)
			require.Equal(t, len(tt.values), n)

			decoded, err := NewGorillaDecoder().Decode(data, len(tt.values))
			require.NoError(t, err)
			require.Len(t, decoded, len(tt.values))
			for i, v := range tt.values {
				require.Equal(t, math.Float64bits(v), math.Float64bits(decoded[i]), "value %d", i)
			}
		})
	}
}

func TestGorilla_NaN(t *testing.T) {
	data, _ := gorillaBytes([]float64{1, math.NaN(), 2})

	decoded, err := NewGorillaDecoder().Decode(data, 3)
	require.NoError(t, err)
	require.InDelta(t, 1, decoded[0], 0)
	require.True(t, math.IsNaN(decoded[1]))
	require.InDelta(t, 2, decoded[2], 0)
}

func TestGorilla_SlicesFormOneStream(t *testing.T) {
	split, _ := gorillaBytes([]float64{20.5, 20.75}, []float64{20.75, 21})
	whole, _ := gorillaBytes([]float64{20.5, 20.75, 20.75, 21})

	require.Equal(t, whole, split)
}

func TestGorilla_Compact(t *testing.T) {
	data, _ := gorillaBytes(slices.Repeat([]float64{101.325}, 1000))

	// 64 bits for the first value, one bit for each repeat.
	require.Len(t, data, (64+999+7)/8)
}

func TestGorilla_Truncated(t *testing.T) {
	data, _ := gorillaBytes([]float64{1.5, 2.5, 3.75, 100})
	dec := NewGorillaDecoder()

	_, err := dec.Decode(data[:len(data)-2], 4)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)

	_, err = dec.Decode(data[:7], 1)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)

	_, err = dec.Decode(data, -1)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)

	values, err := dec.Decode(nil, 0)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestGorilla_ReuseWithoutBlock(t *testing.T) {
	// First value, then a changed value that claims to reuse a block that
	// was never defined.
	data := make([]byte, 9)
	data[8] = 0b1000_0000

	_, err := NewGorillaDecoder().Decode(data, 2)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)
}

func TestGorilla_AllStopsEarly(t *testing.T) {
	data, _ := gorillaBytes([]float64{1, 2, 3, 4})

	var got []float64
	for v := range NewGorillaDecoder().All(data, 4) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []float64{1, 2}, got)
}

func TestGorilla_FinishedEncoderPanics(t *testing.T) {
	enc := NewGorillaEncoder()
	enc.WriteSlice([]float64{1})
	enc.Finish()

	require.Equal(t, 0, enc.Len())
	require.Panics(t, func() { enc.WriteSlice([]float64{2}) })
	require.Panics(t, func() { _ = enc.Bytes() })
}

func TestNumericCodecs(t *testing.T) {
	values := []float64{-273.15, -273.15, 0, 100}
	engine := endian.GetBigEndianEngine()

	for _, typ := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		t.Run(typ.String(), func(t *testing.T) {
			enc, err := NewNumericEncoder(typ, engine)
			require.NoError(t, err)
			enc.WriteSlice(values)
			data := slices.Clone(enc.Bytes())
			enc.Finish()

			dec, err := NewNumericDecoder(typ, engine)
			require.NoError(t, err)
			decoded, err := dec.Decode(data, len(values))
			require.NoError(t, err)
			require.Equal(t, values, decoded)
		})
	}

	_, err := NewNumericEncoder(format.EncodingType(2), engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	_, err = NewNumericDecoder(format.EncodingType(0), engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func BenchmarkGorillaEncoder_WriteSlice(b *testing.B) {
	values := make([]float64, 1024)
	for i := range values {
		values[i] = 20 + float64(i%16)*0.125
	}

	for b.Loop() {
		enc := NewGorillaEncoder()
		enc.WriteSlice(values)
		_ = enc.Bytes()
		enc.Finish()
	}
}
