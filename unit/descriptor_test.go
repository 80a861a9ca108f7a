package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
)

func TestDescriptor_Affine(t *testing.T) {
	celsius := Descriptor{Name: "Celsius", Dimension: DimensionTemperature, Factor: 1, Offset: 273.15}

	assert.InDelta(t, 285.55, celsius.ToBase(12.4), 1e-12)
	assert.InDelta(t, 12.4, celsius.FromBase(285.55), 1e-12)
	assert.True(t, celsius.IsAffine())
	assert.False(t, celsius.IsBase())

	kelvin := Descriptor{Name: "Kelvin", Dimension: DimensionTemperature, Factor: 1}
	assert.True(t, kelvin.IsBase())
	assert.False(t, kelvin.IsAffine())
}

func TestDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name  string
		desc  Descriptor
		valid bool
	}{
		{"valid", Descriptor{Name: "Foot", Dimension: DimensionLength, Factor: 0.3048}, true},
		{"negative factor", Descriptor{Name: "Reversed", Dimension: DimensionLength, Factor: -1}, true},
		{"empty name", Descriptor{Dimension: DimensionLength, Factor: 1}, false},
		{"unknown dimension", Descriptor{Name: "Foot", Factor: 1}, false},
		{"zero factor", Descriptor{Name: "Null", Dimension: DimensionLength}, false},
		{"nan factor", Descriptor{Name: "Nan", Dimension: DimensionLength, Factor: math.NaN()}, false},
		{"infinite factor", Descriptor{Name: "Inf", Dimension: DimensionLength, Factor: math.Inf(1)}, false},
		{"infinite offset", Descriptor{Name: "Inf", Dimension: DimensionLength, Factor: 1, Offset: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidDescriptor)
		})
	}
}

func TestDimension(t *testing.T) {
	dims := Dimensions()
	require.Len(t, dims, 10)
	assert.Equal(t, DimensionLength, dims[0])
	assert.Equal(t, DimensionLuminousIntensity, dims[9])

	for _, d := range dims {
		assert.True(t, d.Valid())
		parsed, err := ParseDimension(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	parsed, err := ParseDimension("substanceamount")
	require.NoError(t, err)
	assert.Equal(t, DimensionSubstanceAmount, parsed)

	_, err = ParseDimension("Luminance")
	require.ErrorIs(t, err, errs.ErrUnknownQuantity)

	assert.Equal(t, "Unknown", Dimension(0xFF).String())
	assert.False(t, DimensionUnknown.Valid())
	assert.False(t, Dimension(0xFF).Valid())
}

func TestSystem(t *testing.T) {
	for s := SystemMetric; s <= SystemNautical; s++ {
		parsed, err := ParseSystem(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := ParseSystem("customary")
	require.NoError(t, err)
	assert.Equal(t, SystemCustomary, parsed)

	_, err = ParseSystem("galactic")
	require.ErrorIs(t, err, errs.ErrUnknownSystem)
	assert.Equal(t, "Unknown", SystemUnknown.String())
}
