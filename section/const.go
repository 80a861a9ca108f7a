package section

import "math"

const (
	// Bit masks of Flag.Options
	ValueEncodingMask = 0x0001 // Mask for value encoding bit (bit 0), 0=raw, 1=gorilla
	EndiannessMask    = 0x0002 // Mask for endianness bit (bit 1), 0=little, 1=big
	UnitNamesMask     = 0x0004 // Mask for unit names payload bit (bit 2)
	ReservedBitsMask  = 0x0008 // Mask for reserved bit (bit 3)
	MagicNumberMask   = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSeriesV1Opt identifies version 1 of the series format.
	MagicSeriesV1Opt = 0xEC10
)

const (
	HeaderSize     = 16         // fixed header size in bytes
	IndexEntrySize = 16         // fixed index entry size in bytes
	IndexOffset    = HeaderSize // byte offset where the index starts

	MaxUnits  = math.MaxUint16 // bounded by the uint16 count of the unit names payload
	MaxValues = math.MaxUint32
)
