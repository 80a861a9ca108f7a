package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure"
)

// TestDerive verifies every cross-quantity rule against reference values.
func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
		delta    float64
	}{
		{"length x length", measure.LengthMulLength(measure.Meter(2), measure.Foot(3)).Value(), 1.8288, 1e-12},
		{"length x area", measure.LengthMulArea(measure.Meter(2), measure.SquareInch(2)).Value(), 2.58064e-3, 1e-12},
		{"length / time", measure.LengthDivTime(measure.Meter(2), measure.Second(3)).Value(), 0.66667, 1e-5},
		{"length / velocity", measure.LengthDivVelocity(measure.Kilometer(36), measure.KilometerPerHour(72)).Value(), 1800, 1e-9},
		{"time x velocity", measure.TimeMulVelocity(measure.Hour(2), measure.MilePerHour(3)).Value(), 9656.064, 1e-9},
		{"area x length", measure.AreaMulLength(measure.SquareMeter(3), measure.Centimeter(50)).Value(), 1.5, 1e-12},
		{"area / length", measure.AreaDivLength(measure.SquareMeter(2), measure.Meter(4)).Value(), 0.5, 0},
		{"volume / length", measure.VolumeDivLength(measure.CubicMeter(6), measure.Foot(3)).Value(), 6.56168, 1e-5},
		{"volume / area", measure.VolumeDivArea(measure.CubicMeter(4), measure.SquareInch(6)).Value(), 1033.3354, 1e-4},
		{"velocity x time", measure.VelocityMulTime(measure.MeterPerSecond(2), measure.Hour(3)).Value(), 21600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.got, tt.delta)
		})
	}
}

// TestDerive_ResultUnits verifies that derivations return base units of the
// resulting quantity.
func TestDerive_ResultUnits(t *testing.T) {
	assert.IsType(t, measure.SquareMeter(0), measure.LengthMulLength(measure.Inch(1), measure.Inch(1)))
	assert.IsType(t, measure.CubicMeter(0), measure.LengthMulArea(measure.Inch(1), measure.Acre(1)))
	assert.IsType(t, measure.MeterPerSecond(0), measure.LengthDivTime(measure.Mile(1), measure.Hour(1)))
	assert.IsType(t, measure.Second(0), measure.LengthDivVelocity(measure.Mile(1), measure.Knot(1)))
	assert.IsType(t, measure.Meter(0), measure.TimeMulVelocity(measure.Day(1), measure.Knot(1)))
	assert.IsType(t, measure.CubicMeter(0), measure.AreaMulLength(measure.Hectare(1), measure.Yard(1)))
	assert.IsType(t, measure.Meter(0), measure.AreaDivLength(measure.Acre(1), measure.Furlong(1)))
	assert.IsType(t, measure.SquareMeter(0), measure.VolumeDivLength(measure.Liter(1), measure.Centimeter(1)))
	assert.IsType(t, measure.Meter(0), measure.VolumeDivArea(measure.Barrel(1), measure.SquareFoot(1)))
	assert.IsType(t, measure.Meter(0), measure.VelocityMulTime(measure.MilePerHour(1), measure.Minute(1)))
}

// TestDerive_Symmetry verifies that commuted products agree exactly.
func TestDerive_Symmetry(t *testing.T) {
	l := measure.Foot(7.25)
	a := measure.SquareYard(3.5)
	v := measure.Knot(12)
	d := measure.Minute(42)

	require.Equal(t, measure.LengthMulArea(l, a), measure.AreaMulLength(a, l))
	require.Equal(t, measure.TimeMulVelocity(d, v), measure.VelocityMulTime(v, d))
	require.Equal(t, measure.LengthMulLength(l, measure.Inch(3)), measure.LengthMulLength(measure.Inch(3), l))
}

// TestDerive_InverseRelations verifies that quotients undo the matching products.
func TestDerive_InverseRelations(t *testing.T) {
	l := measure.Meter(3)
	w := measure.Meter(4)
	h := measure.Meter(5)

	area := measure.LengthMulLength(l, w)
	vol := measure.AreaMulLength(area, h)

	assert.InDelta(t, 4, measure.AreaDivLength(area, l).Value(), 1e-12)
	assert.InDelta(t, 12, measure.VolumeDivLength(vol, h).Value(), 1e-12)
	assert.InDelta(t, 5, measure.VolumeDivArea(vol, area).Value(), 1e-12)

	speed := measure.LengthDivTime(measure.Kilometer(10), measure.Minute(50))
	assert.InDelta(t, 3000, measure.LengthDivVelocity(measure.Kilometer(10), speed).Value(), 1e-9)
}

func TestDerive_DivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(measure.LengthDivTime(measure.Meter(1), measure.Second(0)).Value(), 1))
	assert.True(t, math.IsNaN(measure.AreaDivLength(measure.SquareMeter(0), measure.Meter(0)).Value()))
}
