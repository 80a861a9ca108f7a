package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/unit"
)

// TestConvert_KnownValues verifies conversions against reference values.
func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
		delta    float64
	}{
		{"celsius to kelvin", measure.ConvertTemperature[measure.Kelvin](measure.Celsius(12.4)).Value(), 285.55, 1e-9},
		{"celsius to fahrenheit", measure.ConvertTemperature[measure.Fahrenheit](measure.Celsius(42.24)).Value(), 108.032, 1e-9},
		{"fahrenheit to celsius", measure.ConvertTemperature[measure.Celsius](measure.Fahrenheit(-40)).Value(), -40, 1e-9},
		{"rankine to kelvin", measure.ConvertTemperature[measure.Kelvin](measure.Rankine(491.67)).Value(), 273.15, 1e-9},
		{"kilogram to ounce", measure.ConvertMass[measure.Ounce](measure.Kilogram(1)).Value(), 35.2740, 1e-4},
		{"pound to gram", measure.ConvertMass[measure.Gram](measure.Pound(2)).Value(), 907.1847, 1e-4},
		{"tonne to kilogram", measure.ConvertMass[measure.Kilogram](measure.Tonne(1.5)).Value(), 1500, 1e-9},
		{"mile to kilometer", measure.ConvertLength[measure.Kilometer](measure.Mile(1)).Value(), 1.609344, 1e-12},
		{"foot to meter", measure.ConvertLength[measure.Meter](measure.Foot(3)).Value(), 0.9144, 1e-12},
		{"hour to second", measure.ConvertTime[measure.Second](measure.Hour(2)).Value(), 7200, 0},
		{"week to day", measure.ConvertTime[measure.Day](measure.Week(1)).Value(), 7, 1e-12},
		{"hectare to acre", measure.ConvertArea[measure.Acre](measure.Hectare(1)).Value(), 2.4710538, 1e-6},
		{"liter to milliliter", measure.ConvertVolume[measure.Milliliter](measure.Liter(1)).Value(), 1000, 1e-9},
		{"gallon to liter", measure.ConvertVolume[measure.Liter](measure.Gallon(1)).Value(), 3.785411784, 1e-9},
		{"knot to kilometer per hour", measure.ConvertVelocity[measure.KilometerPerHour](measure.Knot(1)).Value(), 1.852, 1e-12},
		{"milliampere to ampere", measure.ConvertCurrent[measure.Ampere](measure.Milliampere(250)).Value(), 0.25, 1e-15},
		{"kilomole to mole", measure.ConvertSubstanceAmount[measure.Mole](measure.Kilomole(2)).Value(), 2000, 0},
		{"candela to millicandela", measure.ConvertLuminousIntensity[measure.Millicandela](measure.Candela(3)).Value(), 3000, 1e-9},
		{"parsec to light-year", measure.ConvertLength[measure.LightYear](measure.Parsec(1)).Value(), 3.26156, 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.got, tt.delta)
		})
	}
}

// TestConvert_Identity verifies that converting a value to its own unit is exact.
func TestConvert_Identity(t *testing.T) {
	values := []float64{0, 1, -3.3, 0.1, 1e-300, 1e300, math.Pi}

	for _, v := range values {
		require.Equal(t, measure.Foot(v), measure.ConvertLength[measure.Foot](measure.Foot(v)))
		require.Equal(t, measure.Fahrenheit(v), measure.ConvertTemperature[measure.Fahrenheit](measure.Fahrenheit(v)))
		require.Equal(t, measure.USGallon(v), measure.ConvertVolume[measure.Gallon](measure.USGallon(v)))
	}
}

// TestUnits_RoundTrip verifies FromBase(ToBase(x)) == x for every catalog unit.
func TestUnits_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -42.5, 1234.5678, 1e-3, -273.15}

	for _, u := range measure.Units() {
		name := u.Descriptor().Name
		for _, v := range values {
			base := u.WithValue(v).ToBase()
			back := u.FromBase(base)

			require.IsType(t, u, back, name)
			require.InDelta(t, v, back.Value(), 1e-12*math.Max(1, math.Abs(v)), "%s round trip of %v", name, v)
		}
	}
}

// TestUnits_BaseIdentity verifies that base units store their base value unchanged.
func TestUnits_BaseIdentity(t *testing.T) {
	bases := []unit.Unit{
		measure.Meter(0), measure.Kilogram(0), measure.Second(0), measure.SquareMeter(0),
		measure.CubicMeter(0), measure.MeterPerSecond(0), measure.Ampere(0), measure.Kelvin(0),
		measure.Mole(0), measure.Candela(0),
	}

	for _, b := range bases {
		d := b.Descriptor()
		require.True(t, d.IsBase(), d.Name)

		for _, v := range []float64{0, -1.5, 3.75e10, math.SmallestNonzeroFloat64} {
			require.Equal(t, v, b.WithValue(v).ToBase(), d.Name)
			require.Equal(t, v, b.FromBase(v).Value(), d.Name)
		}
	}
}

// TestUnits_Descriptors verifies that every catalog unit has a usable descriptor.
func TestUnits_Descriptors(t *testing.T) {
	seen := make(map[string]bool)
	for _, u := range measure.Units() {
		d := u.Descriptor()
		require.NoError(t, d.Validate())
		require.False(t, seen[d.Name], "duplicate unit %s", d.Name)
		require.NotEmpty(t, d.Symbol, d.Name)
		seen[d.Name] = true
	}

	require.Len(t, seen, 301)
}

func TestAddSub(t *testing.T) {
	t.Run("add keeps left unit", func(t *testing.T) {
		sum := measure.Meter(2).Add(measure.Foot(3))
		assert.IsType(t, measure.Meter(0), sum)
		assert.InDelta(t, 2.9144, sum.Value(), 1e-12)
	})

	t.Run("sub keeps left unit", func(t *testing.T) {
		diff := measure.Kilogram(1).Sub(measure.Gram(250))
		assert.InDelta(t, 0.75, diff.Value(), 1e-12)
	})

	t.Run("add across imperial and metric", func(t *testing.T) {
		sum := measure.Foot(1).Add(measure.Inch(6))
		assert.InDelta(t, 1.5, sum.Value(), 1e-12)
	})

	t.Run("temperature add sums base values", func(t *testing.T) {
		// 0 °C + 0 °C is 273.15 K + 273.15 K = 546.3 K = 273.15 °C
		sum := measure.Celsius(0).Add(measure.Celsius(0))
		assert.InDelta(t, 273.15, sum.Value(), 1e-9)
	})
}

func TestScaleNeg(t *testing.T) {
	assert.Equal(t, measure.Meter(7.5), measure.Meter(2.5).Mul(3))
	assert.Equal(t, measure.Hour(0.5), measure.Hour(1).Div(2))
	assert.Equal(t, measure.Foot(-4), measure.Foot(4).Neg())

	t.Run("scaling ignores offset", func(t *testing.T) {
		assert.Equal(t, measure.Celsius(20), measure.Celsius(10).Mul(2))
		assert.Equal(t, measure.Fahrenheit(16), measure.Fahrenheit(32).Div(2))
	})

	t.Run("division by zero", func(t *testing.T) {
		assert.True(t, math.IsInf(measure.Meter(1).Div(0).Value(), 1))
		assert.True(t, math.IsNaN(measure.Meter(0).Div(0).Value()))
	})
}

func TestRatioEqualCompare(t *testing.T) {
	assert.InDelta(t, 3, measure.Yard(1).Ratio(measure.Foot(1)), 1e-12)
	assert.InDelta(t, 60, measure.Hour(1).Ratio(measure.Minute(1)), 1e-12)

	assert.True(t, measure.Kilometer(1).Equal(measure.Meter(1000)))
	assert.True(t, measure.Hour(1).Equal(measure.Minute(60)))
	assert.False(t, measure.Meter(1).Equal(measure.Meter(math.Nextafter(1, 2))))
	assert.True(t, unit.ApproxEqual[measure.LengthQuantity](measure.Foot(1), measure.Inch(12), 1e-12))

	assert.Equal(t, 1, measure.Mile(1).Compare(measure.Kilometer(1)))
	assert.Equal(t, -1, measure.Celsius(0).Compare(measure.Fahrenheit(33)))
	assert.Equal(t, 0, measure.Kelvin(273.15).Compare(measure.Celsius(0)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2.5 Kilometer", measure.Kilometer(2.5).String())
	assert.Equal(t, "-40 Celsius", measure.Celsius(-40).String())
	assert.Equal(t, "1 Megagram", measure.Tonne(1).String())
	assert.Equal(t, "3 NauticalMilePerHour", measure.Knot(3).String())
}

func TestQuantityTags(t *testing.T) {
	assert.Equal(t, unit.DimensionLength, measure.Meter(0).Quantity().Dimension())
	assert.Equal(t, unit.DimensionTemperature, measure.Rankine(0).Quantity().Dimension())

	for _, u := range measure.Units() {
		d := u.Descriptor()
		switch u.(type) {
		case measure.Length:
			require.Equal(t, unit.DimensionLength, d.Dimension, d.Name)
		case measure.Mass:
			require.Equal(t, unit.DimensionMass, d.Dimension, d.Name)
		case measure.Time:
			require.Equal(t, unit.DimensionTime, d.Dimension, d.Name)
		case measure.Area:
			require.Equal(t, unit.DimensionArea, d.Dimension, d.Name)
		case measure.Volume:
			require.Equal(t, unit.DimensionVolume, d.Dimension, d.Name)
		case measure.Velocity:
			require.Equal(t, unit.DimensionVelocity, d.Dimension, d.Name)
		case measure.Current:
			require.Equal(t, unit.DimensionCurrent, d.Dimension, d.Name)
		case measure.Temperature:
			require.Equal(t, unit.DimensionTemperature, d.Dimension, d.Name)
		case measure.SubstanceAmount:
			require.Equal(t, unit.DimensionSubstanceAmount, d.Dimension, d.Name)
		case measure.LuminousIntensity:
			require.Equal(t, unit.DimensionLuminousIntensity, d.Dimension, d.Name)
		default:
			t.Fatalf("unit %s implements no quantity marker", d.Name)
		}
	}
}

func TestAliases(t *testing.T) {
	aliases := measure.Aliases()
	require.Len(t, aliases, 17)

	assert.Equal(t, "Megagram", aliases["Tonne"].Descriptor().Name)
	assert.Equal(t, "CubicDecimeter", aliases["Liter"].Descriptor().Name)
	assert.Equal(t, "NauticalMilePerHour", aliases["Knot"].Descriptor().Name)
	assert.Equal(t, "USGallon", aliases["Gallon"].Descriptor().Name)
}

func BenchmarkConvertLength(b *testing.B) {
	v := measure.Foot(3)
	for b.Loop() {
		_ = measure.ConvertLength[measure.Meter](v)
	}
}

func BenchmarkConvertTemperature(b *testing.B) {
	v := measure.Celsius(21.5)
	for b.Loop() {
		_ = measure.ConvertTemperature[measure.Fahrenheit](v)
	}
}
