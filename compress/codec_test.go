package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// readings builds a raw float64 payload resembling a batch of sensor readings
// in one unit.
func readings(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		v := 20 + 0.25*math.Sin(float64(i)/10)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
		expected    Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}

	for _, tt := range tests {
		t.Run(tt.compression.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.compression, "values")
			require.NoError(t, err)
			require.IsType(t, tt.expected, codec)

			shared, err := GetCodec(tt.compression)
			require.NoError(t, err)
			require.IsType(t, tt.expected, shared)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "values")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.ErrorContains(t, err, "values")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_value", readings(1)},
		{"small_batch", readings(16)},
		{"large_batch", readings(8192)},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"zeros", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_CompressZeros(t *testing.T) {
	original := make([]byte, 1024*1024)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(original)
			require.NoError(t, err)

			if codecName == "NoOp" {
				require.Len(t, compressed, len(original))
				return
			}
			require.Less(t, len(compressed), len(original)/10)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not compressed data"),
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for i, input := range invalidInputs {
				_, err := codec.Decompress(input)
				require.Error(t, err, "input %d", i)
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := readings(512)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines*2)
			for range numGoroutines {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_, err := codec.Compress(data)
					errCh <- err
				}()
				go func() {
					defer wg.Done()
					out, err := codec.Decompress(compressed)
					if err == nil && !bytes.Equal(data, out) {
						err = fmt.Errorf("decompressed data mismatch")
					}
					errCh <- err
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	data := readings(1024)

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				compressed, _ := codec.Compress(data)
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
