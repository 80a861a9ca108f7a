package section

import (
	"fmt"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
)

// IndexEntry locates the values of one unit in the value payload. Values of
// a unit are contiguous and units appear in first-appended order, so Offset
// of entry i equals the sum of the counts of entries 0..i-1.
type IndexEntry struct {
	// UnitID is the xxHash64 of the canonical unit name.
	//
	// Offset: 0, Size: 8 bytes
	UnitID uint64

	// Count is the number of values in this unit.
	//
	// Offset: 8, Size: 4 bytes
	Count uint32

	// Offset is the index, in values not bytes, of the first value.
	//
	// Offset: 12, Size: 4 bytes
	Offset uint32
}

// PutBytes writes the entry into b, which must hold IndexEntrySize bytes.
func (e IndexEntry) PutBytes(engine endian.EndianEngine, b []byte) {
	engine.PutUint64(b[0:8], e.UnitID)
	engine.PutUint32(b[8:12], e.Count)
	engine.PutUint32(b[12:16], e.Offset)
}

// ParseIndexEntry parses an index entry from data.
//
// Returns:
//   - IndexEntry: the parsed entry
//   - error: errs.ErrInvalidIndexEntrySize if data is not IndexEntrySize bytes
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) != IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidIndexEntrySize, len(data), IndexEntrySize)
	}

	return IndexEntry{
		UnitID: engine.Uint64(data[0:8]),
		Count:  engine.Uint32(data[8:12]),
		Offset: engine.Uint32(data[12:16]),
	}, nil
}

// ParseIndex parses count consecutive entries at the start of data and
// checks that they tile [0, valueCount) without gaps.
//
// Returns:
//   - []IndexEntry: the parsed entries
//   - error: errs.ErrInvalidIndexEntrySize when data is too short,
//     errs.ErrInvalidPayload when offsets or counts are inconsistent
func ParseIndex(data []byte, count int, valueCount uint32, engine endian.EndianEngine) ([]IndexEntry, error) {
	if count < 0 || len(data) < count*IndexEntrySize {
		return nil, fmt.Errorf("%w: %d entries need %d bytes, have %d", errs.ErrInvalidIndexEntrySize, count, count*IndexEntrySize, len(data))
	}

	entries := make([]IndexEntry, count)
	var next uint64
	for i := range entries {
		e, err := ParseIndexEntry(data[i*IndexEntrySize:(i+1)*IndexEntrySize], engine)
		if err != nil {
			return nil, err
		}

		if e.Count == 0 || uint64(e.Offset) != next {
			return nil, fmt.Errorf("%w: index entry %d has offset %d and count %d, expected offset %d",
				errs.ErrInvalidPayload, i, e.Offset, e.Count, next)
		}
		next += uint64(e.Count)
		entries[i] = e
	}

	if next != uint64(valueCount) {
		return nil, fmt.Errorf("%w: index covers %d values, header declares %d", errs.ErrInvalidPayload, next, valueCount)
	}

	return entries, nil
}
