// Package encoding implements the payload layouts of an encoded measurement
// series: the unit-names table and the raw float64 value column.
package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
)

// EncodeUnitNames encodes canonical unit names into a length-prefixed table.
// Format: [Count: uint16] [Len1: uint16][Name1: UTF-8] [Len2: uint16][Name2: UTF-8] ...
//
// Returns:
//   - []byte: The encoded payload
//   - error: errs.ErrInvalidUnitNamesCount for more than 65535 names,
//     errs.ErrInvalidUnitName for an empty or oversized name
func EncodeUnitNames(names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: unit count %d exceeds maximum %d", errs.ErrInvalidUnitNamesCount, len(names), math.MaxUint16)
	}

	totalSize := 2
	for _, name := range names {
		if name == "" || len(name) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: name of %d bytes", errs.ErrInvalidUnitName, len(name))
		}
		totalSize += 2 + len(name)
	}

	buf := make([]byte, 0, totalSize)
	buf = engine.AppendUint16(buf, uint16(len(names))) //nolint:gosec // bounded above
	for _, name := range names {
		buf = engine.AppendUint16(buf, uint16(len(name))) //nolint:gosec // bounded above
		buf = append(buf, name...)
	}

	return buf, nil
}

// DecodeUnitNames decodes a table written by EncodeUnitNames.
//
// Returns:
//   - []string: The decoded names, in order
//   - int: The number of bytes consumed
//   - error: errs.ErrInvalidUnitNamesPayload when data is truncated
func DecodeUnitNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read unit names count (need 2 bytes, have %d)", errs.ErrInvalidUnitNamesPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2
	names := make([]string, count)

	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of unit name %d at offset %d",
				errs.ErrInvalidUnitNamesPayload, i, offset)
		}
		nameLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+nameLen {
			return nil, 0, fmt.Errorf("%w: unit name %d needs %d bytes at offset %d, have %d total",
				errs.ErrInvalidUnitNamesPayload, i, nameLen, offset, len(data))
		}
		names[i] = string(data[offset : offset+nameLen])
		offset += nameLen
	}

	return names, offset, nil
}

// VerifyUnitNames checks that hashFunc(names[i]) equals ids[i] for every i.
//
// Returns:
//   - error: errs.ErrInvalidUnitNamesCount when the lengths differ,
//     errs.ErrHashMismatch on the first name that does not hash to its ID
func VerifyUnitNames(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: %d unit names for %d unit ids", errs.ErrInvalidUnitNamesCount, len(names), len(ids))
	}

	for i, name := range names {
		if expected := hashFunc(name); expected != ids[i] {
			return fmt.Errorf("%w: unit %q at index %d: expected id 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, expected, ids[i])
		}
	}

	return nil
}
