// Package compress provides the codecs applied to the value payload of an
// encoded measurement series.
//
// Series values are raw IEEE-754 float64s, so batches of readings in the same
// unit often share sign, exponent and leading mantissa bits and compress well
// with a general-purpose algorithm:
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Codecs are stateless values and safe for concurrent use.
package compress

import (
	"fmt"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

// Compressor compresses an encoded payload.
//
// The returned slice is owned by the caller. The input is not modified,
// although the no-op codec returns it unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a different
// algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the payload, used in error messages
//
// Returns:
//   - Codec: Codec for the specified type
//   - error: errs.ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression 0x%02x", errs.ErrUnsupportedCompression, target, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, uint8(compressionType))
}
