package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
)

func appendEntries(engine endian.EndianEngine, entries ...IndexEntry) []byte {
	b := make([]byte, len(entries)*IndexEntrySize)
	for i, e := range entries {
		e.PutBytes(engine, b[i*IndexEntrySize:])
	}

	return b
}

func TestIndexEntry_RoundTrip(t *testing.T) {
	entry := IndexEntry{UnitID: 0x0123456789ABCDEF, Count: 7, Offset: 42}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		data := appendEntries(engine, entry)
		require.Len(t, data, IndexEntrySize)

		parsed, err := ParseIndexEntry(data, engine)
		require.NoError(t, err)
		require.Equal(t, entry, parsed)
	}

	_, err := ParseIndexEntry(make([]byte, 8), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}

func TestParseIndex(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	entries := []IndexEntry{
		{UnitID: 1, Count: 3, Offset: 0},
		{UnitID: 2, Count: 1, Offset: 3},
		{UnitID: 3, Count: 5, Offset: 4},
	}

	parsed, err := ParseIndex(appendEntries(engine, entries...), 3, 9, engine)
	require.NoError(t, err)
	require.Equal(t, entries, parsed)

	empty, err := ParseIndex(nil, 0, 0, engine)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestParseIndex_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	tests := []struct {
		name       string
		entries    []IndexEntry
		count      int
		valueCount uint32
		target     error
	}{
		{"truncated", []IndexEntry{{UnitID: 1, Count: 1}}, 2, 1, errs.ErrInvalidIndexEntrySize},
		{"gap", []IndexEntry{{UnitID: 1, Count: 1}, {UnitID: 2, Count: 1, Offset: 2}}, 2, 3, errs.ErrInvalidPayload},
		{"zero count", []IndexEntry{{UnitID: 1, Count: 0}}, 1, 0, errs.ErrInvalidPayload},
		{"value count mismatch", []IndexEntry{{UnitID: 1, Count: 2}}, 1, 3, errs.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex(appendEntries(engine, tt.entries...), tt.count, tt.valueCount, engine)
			require.ErrorIs(t, err, tt.target)
		})
	}
}
