package dynamic_test

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/unit"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		token     string
		name      string
		dimension unit.Dimension
	}{
		{"Meter", "Meter", unit.DimensionLength},
		{"kilometer", "Kilometer", unit.DimensionLength},
		{"square-meter", "SquareMeter", unit.DimensionArea},
		{"Square Meter", "SquareMeter", unit.DimensionArea},
		{"CUBIC_CENTIMETER", "CubicCentimeter", unit.DimensionVolume},
		{"Hectare", "Hectare", unit.DimensionArea},
		{"tonne", "Megagram", unit.DimensionMass},
		{"liter", "CubicDecimeter", unit.DimensionVolume},
		{"Gallon", "USGallon", unit.DimensionVolume},
		{"knot", "NauticalMilePerHour", unit.DimensionVelocity},
		{"celsius", "Celsius", unit.DimensionTemperature},
		{"mole", "Mole", unit.DimensionSubstanceAmount},
		{"candela", "Candela", unit.DimensionLuminousIntensity},
		{"milliampere", "Milliampere", unit.DimensionCurrent},
		{"hour", "Hour", unit.DimensionTime},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			q, err := dynamic.Lookup(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.name, q.Unit().Descriptor().Name)
			assert.Equal(t, tt.dimension, q.Dimension())
			assert.Zero(t, q.Value())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, tok := range []string{"", "parsecs", "furlongs", "m", "--"} {
		_, err := dynamic.Lookup(tok)
		require.ErrorIs(t, err, errs.ErrUnknownUnit, tok)
	}

	require.Panics(t, func() { dynamic.MustLookup("cubit") })
	require.NotPanics(t, func() { dynamic.MustLookup("Cubic Meter") })
}

func TestLookup_VariantTypes(t *testing.T) {
	q := dynamic.MustLookup("Foot")
	length, ok := q.(dynamic.Length)
	require.True(t, ok)
	require.Equal(t, measure.Foot(0), length.Typed())

	switch q := dynamic.MustLookup("Fahrenheit").WithValue(212).(type) {
	case dynamic.Temperature:
		celsius := measure.ConvertTemperature[measure.Celsius](q.Typed())
		assert.InDelta(t, 100, celsius.Value(), 1e-9)
	default:
		t.Fatalf("unexpected variant %T", q)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		amount   float64
		from, to string
		expected float64
		delta    float64
	}{
		{12.4, "Celsius", "Kelvin", 285.55, 1e-9},
		{42.24, "Celsius", "Fahrenheit", 108.032, 1e-9},
		{1, "Kilogram", "Ounce", 35.2740, 1e-4},
		{6, "Mile", "Kilometer", 9.656064, 1e-9},
		{0.6096, "SquareMeter", "SquareFoot", 6.56168, 1e-5},
		{-3, "Foot", "Meter", -0.9144, 1e-12},
		{1, "Knot", "KilometerPerHour", 1.852, 1e-12},
		{1, "Liter", "Milliliter", 1000, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			got, err := dynamic.ConvertTokens(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestConvert_Identity(t *testing.T) {
	fahrenheit := dynamic.MustLookup("Fahrenheit")
	for _, v := range []float64{0.1, 1.0 / 3.0, -459.67, 1e300} {
		got, err := dynamic.Convert(v, fahrenheit, fahrenheit)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	// An alias resolves to the very unit it names.
	got, err := dynamic.Convert(0.1, dynamic.MustLookup("Liter"), dynamic.MustLookup("CubicDecimeter"))
	require.NoError(t, err)
	require.Equal(t, 0.1, got)
}

func TestConvert_IgnoresStoredMagnitude(t *testing.T) {
	from := dynamic.MustLookup("Foot").WithValue(99)
	to := dynamic.MustLookup("Meter").WithValue(-1)

	got, err := dynamic.Convert(10, from, to)
	require.NoError(t, err)
	assert.InDelta(t, 3.048, got, 1e-12)
}

func TestConvert_QuantityMismatch(t *testing.T) {
	_, err := dynamic.Convert(1, dynamic.MustLookup("Meter"), dynamic.MustLookup("Kelvin"))
	require.ErrorIs(t, err, errs.ErrQuantityMismatch)
	require.EqualError(t, err, "quantity mismatch: cannot convert Meter (Length) to Kelvin (Temperature)")

	_, err = dynamic.ConvertTokens(1, "Liter", "SquareMeter")
	require.ErrorIs(t, err, errs.ErrQuantityMismatch)

	_, err = dynamic.ConvertTokens(1, "Liter", "Pints")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)

	_, err = dynamic.Convert(1, nil, dynamic.MustLookup("Meter"))
	require.Error(t, err)
}

func TestConvertTo(t *testing.T) {
	q, err := dynamic.ConvertTo(dynamic.MustLookup("Hour").WithValue(1.5), dynamic.MustLookup("Minute"))
	require.NoError(t, err)
	require.IsType(t, dynamic.Time{}, q)
	assert.InDelta(t, 90, q.Value(), 1e-12)
	assert.Equal(t, "Minute", q.Unit().Descriptor().Name)

	_, err = dynamic.ConvertTo(q, dynamic.MustLookup("Gram"))
	require.ErrorIs(t, err, errs.ErrQuantityMismatch)
}

func TestQuantity_String(t *testing.T) {
	assert.Equal(t, "2.5 Kilometer", dynamic.MustLookup("kilo-meter").WithValue(2.5).String())
	assert.Equal(t, "-40 Celsius", dynamic.MustLookup("Celsius").WithValue(-40).String())
}

func TestFrom(t *testing.T) {
	q, err := dynamic.From(measure.SquareFoot(3))
	require.NoError(t, err)
	require.IsType(t, dynamic.Area{}, q)
	assert.InDelta(t, 3, q.Value(), 0)

	for _, u := range measure.Units() {
		q := dynamic.MustFrom(u)
		require.Equal(t, u.Descriptor().Dimension, q.Dimension(), u.Descriptor().Name)
	}

	_, err = dynamic.From(nil)
	require.ErrorIs(t, err, errs.ErrUnknownQuantity)

	_, err = dynamic.From(impostor(1))
	require.ErrorIs(t, err, errs.ErrUnknownQuantity)
}

func TestRegistry_Default(t *testing.T) {
	r, err := dynamic.Default()
	require.NoError(t, err)
	require.Equal(t, len(measure.Units()), r.Len())
	require.Len(t, r.Tokens(), len(measure.Units())+len(measure.Aliases()))
	require.Len(t, dynamic.Tokens(), len(r.Tokens()))

	total := 0
	for _, d := range unit.Dimensions() {
		units := r.UnitsOf(d)
		require.NotEmpty(t, units, d.String())
		total += len(units)
	}
	require.Equal(t, r.Len(), total)

	// Every token resolves, whatever its spelling.
	for _, tok := range r.Tokens() {
		_, err := r.Lookup(tok)
		require.NoError(t, err, tok)
	}
}

func TestRegistry_ByID(t *testing.T) {
	meter := dynamic.MustLookup("Meter")
	got, ok := dynamic.ByID(dynamic.ID(meter))
	require.True(t, ok)
	require.Equal(t, meter, got)

	_, ok = dynamic.ByID(dynamic.ID(dynamic.MustLookup("Knot")) + 1)
	require.False(t, ok)

	// Aliases share the ID of their target.
	require.Equal(t, dynamic.ID(dynamic.MustLookup("NauticalMilePerHour")), dynamic.ID(dynamic.MustLookup("Knot")))
}

func TestRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		units   []unit.Unit
		aliases map[string]unit.Unit
		target  error
	}{
		{"duplicate unit", []unit.Unit{measure.Meter(0), measure.Meter(1)}, nil, errs.ErrDuplicateUnit},
		{"alias clashes with unit", []unit.Unit{measure.Meter(0), measure.Foot(0)}, map[string]unit.Unit{"meter": measure.Foot(0)}, errs.ErrDuplicateUnit},
		{"alias to unregistered unit", []unit.Unit{measure.Meter(0)}, map[string]unit.Unit{"Feet": measure.Foot(0)}, errs.ErrUnknownUnit},
		{"nil unit", []unit.Unit{nil}, nil, errs.ErrInvalidDescriptor},
		{"nil alias", []unit.Unit{measure.Meter(0)}, map[string]unit.Unit{"Metre": nil}, errs.ErrInvalidDescriptor},
		{"empty alias", []unit.Unit{measure.Meter(0)}, map[string]unit.Unit{"-": measure.Meter(0)}, errs.ErrInvalidUnitName},
		{"foreign unit", []unit.Unit{impostor(0)}, nil, errs.ErrUnknownQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dynamic.NewRegistry(tt.units, tt.aliases)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRegistry_Custom(t *testing.T) {
	r, err := dynamic.NewRegistry(
		[]unit.Unit{measure.Meter(0), measure.Foot(0)},
		map[string]unit.Unit{"ft": measure.Foot(0), "Metre": measure.Meter(0)},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"Meter", "Foot", "Metre", "ft"}, r.Tokens())

	q, err := r.Lookup("metre")
	require.NoError(t, err)
	require.Equal(t, "Meter", q.Unit().Descriptor().Name)

	_, err = r.Lookup("Kelvin")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
}

func TestLookup_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errCh := make(chan error, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dynamic.ConvertTokens(1, "Mile", "Meter")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

func TestJSON(t *testing.T) {
	q := dynamic.MustLookup("Meter").WithValue(2)

	data, err := dynamic.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t, `{"quantity":"Length","unit":"Meter","value":2}`, string(data))

	// Variants are json.Marshalers, so they nest in larger documents.
	nested, err := json.Marshal(map[string]dynamic.Quantity{"depth": q})
	require.NoError(t, err)
	require.JSONEq(t, `{"depth":{"quantity":"Length","unit":"Meter","value":2}}`, string(nested))

	back, err := dynamic.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, q, back)

	back, err = dynamic.Unmarshal([]byte(`{"unit":"knot","value":12.5}`))
	require.NoError(t, err)
	require.IsType(t, dynamic.Velocity{}, back)
	require.Equal(t, "NauticalMilePerHour", back.Unit().Descriptor().Name)
	require.InDelta(t, 12.5, back.Value(), 0)
}

func TestJSON_NonFinite(t *testing.T) {
	tests := []struct {
		value float64
		json  string
	}{
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			data, err := dynamic.Marshal(dynamic.MustLookup("Gram").WithValue(tt.value))
			require.NoError(t, err)
			require.JSONEq(t, `{"quantity":"Mass","unit":"Gram","value":`+tt.json+`}`, string(data))

			back, err := dynamic.Unmarshal(data)
			require.NoError(t, err)
			if math.IsNaN(tt.value) {
				require.True(t, math.IsNaN(back.Value()))
			} else {
				require.Equal(t, tt.value, back.Value())
			}
		})
	}
}

func TestJSON_Errors(t *testing.T) {
	tests := []struct {
		doc    string
		target error
	}{
		{`not json`, errs.ErrInvalidJSON},
		{`{"value":1}`, errs.ErrInvalidJSON},
		{`{"unit":"Meter","value":"one"}`, errs.ErrInvalidJSON},
		{`{"unit":"Meter","value":"nan"}`, errs.ErrInvalidJSON},
		{`{"unit":"Meter","value":true}`, errs.ErrInvalidJSON},
		{`{"unit":"Meter","value":1,"extra":true}`, errs.ErrInvalidJSON},
		{`{"unit":"Cubit","value":1}`, errs.ErrUnknownUnit},
		{`{"quantity":"Mass","unit":"Meter","value":1}`, errs.ErrQuantityMismatch},
		{`{"quantity":"Luminance","unit":"Meter","value":1}`, errs.ErrUnknownQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			_, err := dynamic.Unmarshal([]byte(tt.doc))
			require.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}

	_, err := dynamic.Marshal(nil)
	require.ErrorIs(t, err, errs.ErrInvalidJSON)
}

func BenchmarkLookup(b *testing.B) {
	for b.Loop() {
		_, _ = dynamic.Lookup("Kilometer-Per-Hour")
	}
}

func BenchmarkConvert(b *testing.B) {
	from, to := dynamic.MustLookup("Fahrenheit"), dynamic.MustLookup("Celsius")
	for b.Loop() {
		_, _ = dynamic.Convert(98.6, from, to)
	}
}

// impostor claims to measure length but is not a catalog unit.
type impostor float64

func (v impostor) Value() float64               { return float64(v) }
func (v impostor) ToBase() float64              { return float64(v) }
func (v impostor) FromBase(b float64) unit.Unit { return impostor(b) }
func (impostor) WithValue(v float64) unit.Unit  { return impostor(v) }

func (impostor) Descriptor() unit.Descriptor {
	return unit.Descriptor{Name: "Impostor", Dimension: unit.DimensionLength, Factor: 1}
}
