package series_test

import (
	"hash/crc32"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
	"github.com/arloliu/measure/internal/hash"
	"github.com/arloliu/measure/section"
	"github.com/arloliu/measure/series"
	"github.com/arloliu/measure/unit"
)

func encodeReadings(t *testing.T, opts ...series.EncoderOption) []byte {
	t.Helper()

	enc, err := series.NewEncoder(opts...)
	require.NoError(t, err)

	require.NoError(t, enc.Append(dynamic.MustFrom(measure.Celsius(21.5))))
	require.NoError(t, enc.AppendValues(dynamic.MustLookup("Fahrenheit"), 70.1, 71.3))
	require.NoError(t, enc.AppendValues(dynamic.MustLookup("Meter"), 1.5))
	require.NoError(t, enc.Append(dynamic.MustLookup("celsius").WithValue(-4)))
	require.NoError(t, enc.AppendValues(dynamic.MustLookup("Kelvin")))
	require.Equal(t, 3, enc.UnitCount())
	require.Equal(t, 5, enc.Len())

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}

// reseal rewrites the header checksum after a test tampers with the body.
func reseal(t *testing.T, data []byte) {
	t.Helper()

	h, err := section.ParseHeader(data)
	require.NoError(t, err)
	h.Checksum = crc32.ChecksumIEEE(data[section.HeaderSize:])
	h.PutBytes(data[:section.HeaderSize])
}

func TestRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4}

	encodings := []format.EncodingType{format.TypeRaw, format.TypeGorilla}

	for _, valEnc := range encodings {
		for _, comp := range compressions {
			for _, bigEndian := range []bool{false, true} {
				name := valEnc.String() + "_" + comp.String()
				opts := []series.EncoderOption{series.WithCompression(comp), series.WithValueEncoding(valEnc)}
				if bigEndian {
					name += "_big_endian"
					opts = append(opts, series.WithBigEndian())
				}

				t.Run(name, func(t *testing.T) {
					dec, err := series.NewDecoder(encodeReadings(t, opts...))
					require.NoError(t, err)

					require.Equal(t, comp, dec.Compression())
					require.Equal(t, valEnc, dec.ValueEncoding())
					require.Equal(t, bigEndian, dec.IsBigEndian())
					require.True(t, dec.HasUnitNames())
					require.Equal(t, 5, dec.Len())

					var names []string
					for _, q := range dec.Units() {
						names = append(names, q.Unit().Descriptor().Name)
					}
					require.Equal(t, []string{"Celsius", "Fahrenheit", "Meter"}, names)

					var all []string
					for q := range dec.All() {
						all = append(all, q.String())
					}
					require.Equal(t, []string{"21.5 Celsius", "-4 Celsius", "70.1 Fahrenheit", "71.3 Fahrenheit", "1.5 Meter"}, all)
				})
			}
		}
	}
}

func TestGorilla_SensorSeries(t *testing.T) {
	readings := make([]float64, 2000)
	for i := range readings {
		readings[i] = 21 + float64(i/50)*0.25
	}

	encode := func(valEnc format.EncodingType) []byte {
		enc, err := series.NewEncoder(series.WithCompression(format.CompressionNone), series.WithValueEncoding(valEnc))
		require.NoError(t, err)
		require.NoError(t, enc.AppendValues(dynamic.MustLookup("Celsius"), readings...))
		require.NoError(t, enc.AppendValues(dynamic.MustLookup("Fahrenheit"), 70.1, 70.1, 70.2))

		data, err := enc.Finish()
		require.NoError(t, err)

		return data
	}

	raw := encode(format.TypeRaw)
	gorilla := encode(format.TypeGorilla)
	require.Less(t, len(gorilla), len(raw))

	dec, err := series.NewDecoder(gorilla)
	require.NoError(t, err)
	require.Equal(t, format.TypeGorilla, dec.ValueEncoding())

	celsius, err := dec.Values("Celsius")
	require.NoError(t, err)
	require.Equal(t, readings, celsius)

	fahrenheit, err := dec.Values("Fahrenheit")
	require.NoError(t, err)
	require.Equal(t, []float64{70.1, 70.1, 70.2}, fahrenheit)
}

func TestGorilla_TruncatedPayload(t *testing.T) {
	data := encodeReadings(t, series.WithCompression(format.CompressionNone), series.WithValueEncoding(format.TypeGorilla))

	// Drop the last bytes of the value stream.
	short := slices.Clone(data[:len(data)-4])
	reseal(t, short)

	_, err := series.NewDecoder(short)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
	require.ErrorIs(t, err, errs.ErrInvalidNumericValuesCount)
}

func TestDecoder_Values(t *testing.T) {
	dec, err := series.NewDecoder(encodeReadings(t))
	require.NoError(t, err)

	values, err := dec.Values("fahrenheit")
	require.NoError(t, err)
	require.Equal(t, []float64{70.1, 71.3}, values)

	// The result is a copy.
	values[0] = 0
	again, err := dec.Values("Fahrenheit")
	require.NoError(t, err)
	require.Equal(t, []float64{70.1, 71.3}, again)

	absent, err := dec.Values("Kelvin")
	require.NoError(t, err)
	require.Empty(t, absent)

	_, err = dec.Values("Réaumur")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
}

func TestDecoder_ConvertAll(t *testing.T) {
	dec, err := series.NewDecoder(encodeReadings(t))
	require.NoError(t, err)

	celsius := dec.ConvertAll(dynamic.MustLookup("Celsius"))
	require.Len(t, celsius, 4)
	require.Equal(t, []float64{21.5, -4}, celsius[:2])
	require.InDelta(t, 21.1667, celsius[2], 1e-4)
	require.InDelta(t, 21.8333, celsius[3], 1e-4)

	feet := dec.ConvertAll(dynamic.MustLookup("Foot"))
	require.Len(t, feet, 1)
	require.InDelta(t, 4.92126, feet[0], 1e-5)

	require.Empty(t, dec.ConvertAll(dynamic.MustLookup("Second")))
	require.Nil(t, dec.ConvertAll(nil))
}

func TestDecoder_ValuesIn(t *testing.T) {
	dec, err := series.NewDecoder(encodeReadings(t))
	require.NoError(t, err)

	kelvin, err := dec.ValuesIn(dynamic.MustLookup("Celsius"), dynamic.MustLookup("Kelvin"))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{294.65, 269.15}, kelvin, 1e-9)

	_, err = dec.ValuesIn(dynamic.MustLookup("Meter"), dynamic.MustLookup("Kelvin"))
	require.ErrorIs(t, err, errs.ErrQuantityMismatch)

	none, err := dec.ValuesIn(dynamic.MustLookup("Mile"), dynamic.MustLookup("Meter"))
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestEncoder_WithoutUnitNames(t *testing.T) {
	withNames := encodeReadings(t, series.WithCompression(format.CompressionNone))
	data := encodeReadings(t, series.WithCompression(format.CompressionNone), series.WithUnitNames(false))
	require.Less(t, len(data), len(withNames))

	dec, err := series.NewDecoder(data)
	require.NoError(t, err)
	require.False(t, dec.HasUnitNames())
	require.Equal(t, 5, dec.Len())
}

func TestEncoder_Errors(t *testing.T) {
	_, err := series.NewEncoder(series.WithCompression(format.CompressionType(0x0F)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = series.NewEncoder(series.WithValueEncoding(format.EncodingType(0x02)))
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	enc, err := series.NewEncoder()
	require.NoError(t, err)

	require.ErrorIs(t, enc.Append(nil), errs.ErrUnknownUnit)
	require.ErrorIs(t, enc.AppendValues(nil, 1), errs.ErrUnknownUnit)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrNoValuesAdded)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
	require.ErrorIs(t, enc.Append(dynamic.MustLookup("Meter")), errs.ErrEncoderFinished)
}

func TestDecoder_Corruption(t *testing.T) {
	valid := encodeReadings(t, series.WithCompression(format.CompressionNone))

	tests := []struct {
		name   string
		mutate func(t *testing.T, b []byte) []byte
		target error
	}{
		{
			name:   "empty",
			mutate: func(_ *testing.T, _ []byte) []byte { return nil },
			target: errs.ErrInvalidHeaderSize,
		},
		{
			name:   "bad magic",
			mutate: func(_ *testing.T, b []byte) []byte { b[1] = 0; return b },
			target: errs.ErrInvalidHeaderFlags,
		},
		{
			name:   "flipped value bit",
			mutate: func(_ *testing.T, b []byte) []byte { b[len(b)-1] ^= 0x01; return b },
			target: errs.ErrChecksumMismatch,
		},
		{
			name:   "truncated body",
			mutate: func(_ *testing.T, b []byte) []byte { return b[:len(b)-8] },
			target: errs.ErrChecksumMismatch,
		},
		{
			name: "truncated values",
			mutate: func(t *testing.T, b []byte) []byte {
				b = b[:len(b)-8]
				reseal(t, b)

				return b
			},
			target: errs.ErrInvalidPayload,
		},
		{
			name: "unit id does not match name",
			mutate: func(t *testing.T, b []byte) []byte {
				// First index entry starts with the Celsius ID.
				section.IndexEntry{UnitID: hash.ID("Kelvin"), Count: 2}.PutBytes(section.NewFlag().EndianEngine(), b[section.HeaderSize:])
				reseal(t, b)

				return b
			},
			target: errs.ErrHashMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(t, slices.Clone(valid))
			_, err := series.NewDecoder(data)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestDecoder_WithRegistry(t *testing.T) {
	data := encodeReadings(t)

	r, err := dynamic.NewRegistry([]unit.Unit{measure.Celsius(0), measure.Fahrenheit(0)}, nil)
	require.NoError(t, err)

	_, err = series.NewDecoder(data, series.WithRegistry(r))
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
	require.ErrorContains(t, err, "Meter")

	_, err = series.NewDecoder(data, series.WithRegistry(nil))
	require.Error(t, err)

	enc, err := series.NewEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.AppendValues(dynamic.MustLookup("Fahrenheit"), 212))
	data, err = enc.Finish()
	require.NoError(t, err)

	dec, err := series.NewDecoder(data, series.WithRegistry(r))
	require.NoError(t, err)
	celsius := dec.ConvertAll(dynamic.MustLookup("Celsius"))
	require.InDeltaSlice(t, []float64{100}, celsius, 1e-9)
}

func BenchmarkEncodeDecode(b *testing.B) {
	meter := dynamic.MustLookup("Meter")
	values := make([]float64, 1024)
	for i := range values {
		values[i] = float64(i) * 0.25
	}

	for b.Loop() {
		enc, _ := series.NewEncoder(series.WithCompression(format.CompressionS2))
		_ = enc.AppendValues(meter, values...)
		data, _ := enc.Finish()
		_, _ = series.NewDecoder(data)
	}
}
