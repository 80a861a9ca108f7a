package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Names())
	require.Empty(t, tracker.IDs())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	idx, isNew, err := tracker.Track("Meter", hash.ID("Meter"))
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, 0, idx)

	idx, isNew, err = tracker.Track("Foot", hash.ID("Foot"))
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, 1, idx)

	idx, isNew, err = tracker.Track("Meter", hash.ID("Meter"))
	require.NoError(t, err)
	require.False(t, isNew)
	require.Equal(t, 0, idx)

	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"Meter", "Foot"}, tracker.Names())
	require.Equal(t, []uint64{hash.ID("Meter"), hash.ID("Foot")}, tracker.IDs())
}

func TestTracker_EmptyName(t *testing.T) {
	tracker := NewTracker()

	_, _, err := tracker.Track("", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrInvalidUnitName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker()

	_, _, err := tracker.Track("Meter", 0x1234567890abcdef)
	require.NoError(t, err)

	_, _, err = tracker.Track("Metre", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.Contains(t, err.Error(), "Metre")
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Lookup(t *testing.T) {
	tracker := NewTracker()
	_, _, err := tracker.Track("Kelvin", 42)
	require.NoError(t, err)

	name, ok := tracker.Lookup(42)
	require.True(t, ok)
	require.Equal(t, "Kelvin", name)

	_, ok = tracker.Lookup(7)
	require.False(t, ok)

	_, _, err = tracker.Track("Rankine", 43)
	require.NoError(t, err)
	idx, ok := tracker.Index(43)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = tracker.Index(7)
	require.False(t, ok)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	for i, name := range []string{"Second", "Minute", "Hour"} {
		_, _, err := tracker.Track(name, uint64(i))
		require.NoError(t, err)
	}

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	_, ok := tracker.Lookup(0)
	require.False(t, ok)

	idx, isNew, err := tracker.Track("Day", 0)
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, 0, idx)
}
