package compress

// ZstdCompressor provides Zstandard compression for series payloads where
// size matters more than encoding speed, such as archived readings.
//
// The default build uses the pure Go klauspost/compress implementation.
// Building with cgo and the gozstd tag switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
