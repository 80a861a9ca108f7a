package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

func headerBytes(h *Header) []byte {
	b := make([]byte, HeaderSize)
	h.PutBytes(b)

	return b
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	require.NoError(t, header.Flag.Validate())
	require.False(t, header.Flag.IsBigEndian())
	require.True(t, header.Flag.HasUnitNames())
	require.Equal(t, format.CompressionZstd, header.Flag.Compression())
	require.Equal(t, format.TypeRaw, header.Flag.ValueEncoding())
	require.Equal(t, endian.GetLittleEndianEngine(), header.Flag.EndianEngine())
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		original := NewHeader()
		if bigEndian {
			original.Flag.WithBigEndian()
		}
		original.Flag.SetHasUnitNames(false)
		original.Flag.SetCompression(format.CompressionLZ4)
		original.Flag.SetValueEncoding(format.TypeGorilla)
		original.UnitCount = 3
		original.ValueCount = 1 << 20
		original.Checksum = 0xDEADBEEF

		data := headerBytes(original)
		require.Len(t, data, HeaderSize)

		parsed, err := ParseHeader(append(data, 0xFF))
		require.NoError(t, err)
		require.Equal(t, *original, parsed)
	}
}

func TestHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	h := NewHeader()
	h.Flag.WithBigEndian()
	h.UnitCount = 1

	h.Flag.SetValueEncoding(format.TypeGorilla)

	data := headerBytes(h)
	require.Equal(t, byte(0x17), data[0])
	require.Equal(t, byte(0xEC), data[1])
	require.Equal(t, []byte{0, 0, 0, 1}, data[4:8])
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := headerBytes(NewHeader())

	tests := []struct {
		name   string
		mutate func(b []byte) []byte
		target error
	}{
		{"too short", func(b []byte) []byte { return b[:HeaderSize-1] }, errs.ErrInvalidHeaderSize},
		{"bad magic", func(b []byte) []byte { b[1] = 0xEA; return b }, errs.ErrInvalidHeaderFlags},
		{"reserved option bit", func(b []byte) []byte { b[0] |= 0x08; return b }, errs.ErrInvalidHeaderFlags},
		{"reserved byte", func(b []byte) []byte { b[3] = 1; return b }, errs.ErrInvalidHeaderFlags},
		{"unknown compression", func(b []byte) []byte { b[2] = 0x09; return b }, errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), valid...))
			_, err := ParseHeader(data)
			require.ErrorIs(t, err, tt.target)
		})
	}

	h := &Header{}
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
}

func TestFlag_Bits(t *testing.T) {
	f := NewFlag()

	f.WithBigEndian()
	require.True(t, f.IsBigEndian())
	f.WithLittleEndian()
	require.False(t, f.IsBigEndian())

	f.SetHasUnitNames(false)
	require.False(t, f.HasUnitNames())
	f.SetHasUnitNames(true)
	require.True(t, f.HasUnitNames())

	require.Equal(t, format.TypeRaw, f.ValueEncoding())
	f.SetValueEncoding(format.TypeGorilla)
	require.Equal(t, format.TypeGorilla, f.ValueEncoding())
	require.Equal(t, uint16(ValueEncodingMask), f.Options&ValueEncodingMask)
	require.NoError(t, f.Validate())
	f.SetValueEncoding(format.TypeRaw)
	require.Equal(t, format.TypeRaw, f.ValueEncoding())
	require.Zero(t, f.Options&ValueEncodingMask)

	require.Equal(t, uint16(MagicSeriesV1Opt), f.MagicNumber())
}
