package unit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/unit"
)

// A small two-quantity universe, independent of the generated catalog.
type (
	distance    struct{}
	temperature struct{}
)

type (
	meter      float64
	foot       float64
	kelvin     float64
	fahrenheit float64
)

var (
	meterRule      = unit.Descriptor{Name: "meter", Symbol: "m", Dimension: unit.DimensionLength, System: unit.SystemMetric, Factor: 1}
	footRule       = unit.Descriptor{Name: "foot", Symbol: "ft", Dimension: unit.DimensionLength, System: unit.SystemImperial, Factor: 0.3048}
	kelvinRule     = unit.Descriptor{Name: "kelvin", Symbol: "K", Dimension: unit.DimensionTemperature, System: unit.SystemMetric, Factor: 1}
	fahrenheitRule = unit.Descriptor{Name: "fahrenheit", Symbol: "°F", Dimension: unit.DimensionTemperature, System: unit.SystemImperial, Factor: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0}
)

func (meter) Quantity() distance                  { return distance{} }
func (meter) Descriptor() unit.Descriptor         { return meterRule }
func (v meter) Value() float64                    { return float64(v) }
func (v meter) ToBase() float64                   { return meterRule.ToBase(float64(v)) }
func (meter) FromBase(b float64) unit.Unit        { return unit.FromBase[meter, distance](b) }
func (meter) WithValue(value float64) unit.Unit   { return meter(value) }
func (foot) Quantity() distance                   { return distance{} }
func (foot) Descriptor() unit.Descriptor          { return footRule }
func (v foot) Value() float64                     { return float64(v) }
func (v foot) ToBase() float64                    { return footRule.ToBase(float64(v)) }
func (foot) FromBase(b float64) unit.Unit         { return unit.FromBase[foot, distance](b) }
func (foot) WithValue(value float64) unit.Unit    { return foot(value) }
func (kelvin) Quantity() temperature              { return temperature{} }
func (kelvin) Descriptor() unit.Descriptor        { return kelvinRule }
func (v kelvin) Value() float64                   { return float64(v) }
func (v kelvin) ToBase() float64                  { return kelvinRule.ToBase(float64(v)) }
func (kelvin) FromBase(b float64) unit.Unit       { return unit.FromBase[kelvin, temperature](b) }
func (kelvin) WithValue(value float64) unit.Unit  { return kelvin(value) }
func (fahrenheit) Quantity() temperature          { return temperature{} }
func (fahrenheit) Descriptor() unit.Descriptor    { return fahrenheitRule }
func (v fahrenheit) Value() float64               { return float64(v) }
func (v fahrenheit) ToBase() float64              { return fahrenheitRule.ToBase(float64(v)) }
func (fahrenheit) FromBase(b float64) unit.Unit   { return unit.FromBase[fahrenheit, temperature](b) }
func (fahrenheit) WithValue(v float64) unit.Unit  { return fahrenheit(v) }

func TestFromBase(t *testing.T) {
	assert.Equal(t, meter(2), unit.FromBase[meter, distance](2))
	assert.InDelta(t, 10, float64(unit.FromBase[foot, distance](3.048)), 1e-12)
	assert.InDelta(t, 32, float64(unit.FromBase[fahrenheit, temperature](273.15)), 1e-9)

	var u unit.Unit = foot(0)
	back := u.FromBase(0.3048)
	require.IsType(t, foot(0), back)
	assert.InDelta(t, 1, back.Value(), 1e-12)
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 0.9144, float64(unit.Convert[meter, distance](foot(3))), 1e-12)
	assert.InDelta(t, 3, float64(unit.Convert[foot, distance](meter(0.9144))), 1e-12)
	assert.InDelta(t, 212, float64(unit.Convert[fahrenheit, temperature](kelvin(373.15))), 1e-9)

	t.Run("identity is exact", func(t *testing.T) {
		for _, v := range []float64{0.1, 1.0 / 3.0, -7.77, 1e308} {
			require.Equal(t, foot(v), unit.Convert[foot, distance](foot(v)))
			require.Equal(t, fahrenheit(v), unit.Convert[fahrenheit, temperature](fahrenheit(v)))
		}
	})
}

func TestAddSub(t *testing.T) {
	sum := unit.Add[meter, distance](meter(1), foot(1))
	assert.InDelta(t, 1.3048, float64(sum), 1e-12)

	diff := unit.Sub[foot, distance](foot(10), meter(0.3048))
	assert.InDelta(t, 9, float64(diff), 1e-12)

	// Adding temperatures adds their absolute values.
	warm := unit.Add[kelvin, temperature](kelvin(0), fahrenheit(32))
	assert.InDelta(t, 273.15, float64(warm), 1e-9)
}

func TestScale(t *testing.T) {
	assert.Equal(t, foot(7.5), unit.Mul[foot, distance](foot(2.5), 3))
	assert.Equal(t, foot(1.25), unit.Div[foot, distance](foot(2.5), 2))
	assert.Equal(t, fahrenheit(64), unit.Mul[fahrenheit, temperature](fahrenheit(32), 2))
	assert.Equal(t, meter(-4), unit.Neg[meter, distance](meter(4)))
	assert.True(t, math.IsInf(float64(unit.Div[meter, distance](meter(1), 0)), 1))
}

func TestRatioEqualCompare(t *testing.T) {
	assert.InDelta(t, 1/0.3048, unit.Ratio[distance](meter(1), foot(1)), 1e-12)

	assert.True(t, unit.Equal[distance](meter(0.3048), foot(1)))
	assert.False(t, unit.Equal[distance](meter(0.3048), meter(math.Nextafter(0.3048, 1))))
	assert.True(t, unit.ApproxEqual[distance](meter(1), meter(1+1e-13), 1e-12))
	assert.False(t, unit.ApproxEqual[distance](meter(1), meter(1.001), 1e-12))
	assert.True(t, unit.ApproxEqual[distance](meter(0), meter(0), 0))

	assert.Equal(t, -1, unit.Compare[distance](foot(1), meter(1)))
	assert.Equal(t, 1, unit.Compare[temperature](fahrenheit(33), kelvin(273.15)))
	assert.Equal(t, 0, unit.Compare[distance](meter(2), meter(2)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.5 meter", unit.Format(meter(1.5)))
	assert.Equal(t, "-40 fahrenheit", unit.Format(fahrenheit(-40)))
	assert.Equal(t, "1e+21 foot", unit.Format(foot(1e21)))
}

func BenchmarkConvert(b *testing.B) {
	v := foot(12)
	for b.Loop() {
		_ = unit.Convert[meter, distance](v)
	}
}
