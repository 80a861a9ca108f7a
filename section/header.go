package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/measure/errs"
)

// Header is the fixed-size section at the start of a series.
type Header struct {
	Flag Flag // byte offset 0-3

	// UnitCount is the number of distinct units, at most MaxUnits.
	UnitCount uint32 // byte offset 4-7
	// ValueCount is the total number of values across all units.
	ValueCount uint32 // byte offset 8-11
	// Checksum is the CRC32 (IEEE) of every byte after the header.
	Checksum uint32 // byte offset 12-15
}

// NewHeader creates a header with the default flag. Counts and checksum are
// set when the series is finished.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Options is always little-endian so the byte order can be discovered.
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	if data[3] != 0 {
		return fmt.Errorf("%w: reserved header byte is 0x%02x", errs.ErrInvalidHeaderFlags, data[3])
	}

	engine := h.Flag.EndianEngine()
	h.UnitCount = engine.Uint32(data[4:8])
	h.ValueCount = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint32(data[12:16])

	return h.Flag.Validate()
}

// PutBytes serializes the header into b, which must hold HeaderSize bytes.
func (h *Header) PutBytes(b []byte) {
	engine := h.Flag.EndianEngine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	b[3] = 0
	engine.PutUint32(b[4:8], h.UnitCount)
	engine.PutUint32(b[8:12], h.ValueCount)
	engine.PutUint32(b[12:16], h.Checksum)
}

// ParseHeader parses a Header from the start of data.
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
