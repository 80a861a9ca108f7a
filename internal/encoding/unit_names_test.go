package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/hash"
)

func TestEncodeDecodeUnitNames(t *testing.T) {
	names := []string{"Meter", "USGallon", "Celsius", "NauticalMilePerHour"}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoded, err := EncodeUnitNames(names, engine)
		require.NoError(t, err)

		decoded, n, err := DecodeUnitNames(append(encoded, 0xEE), engine)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, names, decoded)
	}
}

func TestEncodeUnitNames_Empty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoded, err := EncodeUnitNames(nil, engine)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, encoded)

	decoded, n, err := DecodeUnitNames(encoded, engine)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Empty(t, decoded)
}

func TestEncodeUnitNames_Invalid(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := EncodeUnitNames([]string{"Meter", ""}, engine)
	require.ErrorIs(t, err, errs.ErrInvalidUnitName)

	_, err = EncodeUnitNames([]string{strings.Repeat("m", 65536)}, engine)
	require.ErrorIs(t, err, errs.ErrInvalidUnitName)

	_, err = EncodeUnitNames(make([]string, 65536), engine)
	require.ErrorIs(t, err, errs.ErrInvalidUnitNamesCount)
}

func TestDecodeUnitNames_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoded, err := EncodeUnitNames([]string{"Kilogram", "Pound"}, engine)
	require.NoError(t, err)

	for _, size := range []int{0, 1, 3, 5, len(encoded) - 1} {
		_, _, err := DecodeUnitNames(encoded[:size], engine)
		require.ErrorIs(t, err, errs.ErrInvalidUnitNamesPayload, "size %d", size)
	}
}

func TestVerifyUnitNames(t *testing.T) {
	names := []string{"Second", "Hour"}
	ids := []uint64{hash.ID("Second"), hash.ID("Hour")}

	require.NoError(t, VerifyUnitNames(names, ids, hash.ID))

	err := VerifyUnitNames(names, ids[:1], hash.ID)
	require.ErrorIs(t, err, errs.ErrInvalidUnitNamesCount)

	ids[1] = hash.ID("Minute")
	err = VerifyUnitNames(names, ids, hash.ID)
	require.ErrorIs(t, err, errs.ErrHashMismatch)
	require.ErrorContains(t, err, "Hour")
}
