package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CompressionType
	}{
		{"none", "none", CompressionNone},
		{"zstd", "ZSTD", CompressionZstd},
		{"s2", "s2", CompressionS2},
		{"lz4", "Lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCompressionType(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, c)
			require.True(t, c.Valid())
		})
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	require.Equal(t, "Unknown", CompressionType(0).String())
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
}

func TestEncodingType(t *testing.T) {
	e, err := ParseEncodingType("raw")
	require.NoError(t, err)
	require.Equal(t, TypeRaw, e)
	require.Equal(t, "Raw", e.String())

	e, err = ParseEncodingType("GORILLA")
	require.NoError(t, err)
	require.Equal(t, TypeGorilla, e)
	require.True(t, e.Valid())

	_, err = ParseEncodingType("delta")
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	require.False(t, EncodingType(0).Valid())
	require.False(t, EncodingType(2).Valid())
	require.Equal(t, "Unknown", EncodingType(2).String())
}
