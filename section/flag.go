package section

import (
	"fmt"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
)

// Flag holds the packed options and the value compression of a series.
type Flag struct {
	// Options is a packed field:
	// Bit 0 is the value encoding flag, 0 means raw, 1 means Gorilla.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2 is set when the unit names payload is present.
	// Bit 3 is reserved and must be 0.
	// Bit 4-15 are the magic number 0xEC1.
	Options uint16

	// CompressionType is the codec applied to the value payload.
	CompressionType uint8
}

// NewFlag returns the default flag: little-endian, unit names present and
// Zstd-compressed values.
func NewFlag() Flag {
	return Flag{
		Options:         MagicSeriesV1Opt | UnitNamesMask,
		CompressionType: uint8(format.CompressionZstd),
	}
}

// IsBigEndian returns whether values are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasUnitNames returns whether the unit names payload is present.
func (f Flag) HasUnitNames() bool {
	return f.Options&UnitNamesMask != 0
}

// SetHasUnitNames enables or disables the unit names payload.
func (f *Flag) SetHasUnitNames(enabled bool) {
	if enabled {
		f.Options |= UnitNamesMask
	} else {
		f.Options &^= UnitNamesMask
	}
}

// ValueEncoding returns how values are laid out before compression.
func (f Flag) ValueEncoding() format.EncodingType {
	if f.Options&ValueEncodingMask != 0 {
		return format.TypeGorilla
	}

	return format.TypeRaw
}

// SetValueEncoding records the value encoding. Anything other than
// format.TypeGorilla selects raw values.
func (f *Flag) SetValueEncoding(e format.EncodingType) {
	if e == format.TypeGorilla {
		f.Options |= ValueEncodingMask
	} else {
		f.Options &^= ValueEncodingMask
	}
}

// Compression returns the value compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the value compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// MagicNumber returns the magic number bits of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, the reserved bits and the compression
// type.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicSeriesV1Opt {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, f.MagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if !f.Compression().Valid() {
		return fmt.Errorf("%w: compression 0x%02x", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}

// EndianEngine returns the byte order selected by the flag.
func (f Flag) EndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
