package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/unit"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.Len(t, c.Quantities, len(unit.Dimensions()))

	length, ok := c.Quantity("Length")
	require.True(t, ok)
	require.Equal(t, "Meter", length.Base)

	_, ok = c.Quantity("Luminance")
	require.False(t, ok)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, c.Units())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("quantities: []\n"))
	require.ErrorIs(t, err, errs.ErrInvalidCatalog)

	_, err = Parse([]byte("quantities:\n  - name: Length\n    colour: blue\n"))
	require.ErrorIs(t, err, errs.ErrInvalidCatalog)
}

func TestSeriesExpand(t *testing.T) {
	q := Quantity{
		Name: "Area",
		Base: "SquareMeter",
		Series: []Series{
			{System: "metric", Stem: "meter", Symbol: "m", Power: 2, NameFormat: "Square%s", SymbolFormat: "%s²"},
		},
	}

	units := q.Expand()
	require.Len(t, units, len(Prefixes))

	byName := make(map[string]Unit, len(units))
	for _, u := range units {
		byName[u.Name] = u
	}

	assert.Equal(t, Unit{Quantity: "Area", Name: "SquareKilometer", Symbol: "km²", System: "metric", Factor: "1e6", Offset: "0"}, byName["SquareKilometer"])
	assert.Equal(t, "1", byName["SquareMeter"].Factor)
	assert.True(t, byName["SquareMeter"].IsBase())
	assert.Equal(t, "1e-60", byName["SquareQuectometer"].Factor)
	assert.Equal(t, "µm²", byName["SquareMicrometer"].Symbol)
}

func TestSeriesExpand_Scale(t *testing.T) {
	q := Quantity{Name: "Mass", Series: []Series{{System: "metric", Stem: "gram", Symbol: "g", Scale: -3}}}

	byName := make(map[string]Unit)
	for _, u := range q.Expand() {
		byName[u.Name] = u
	}

	assert.Equal(t, "1", byName["Kilogram"].Factor)
	assert.Equal(t, "1e-3", byName["Gram"].Factor)
	assert.Equal(t, "1e27", byName["Quettagram"].Factor)
	assert.Equal(t, "1e-33", byName["Quectogram"].Factor)
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"1", 1},
		{"1e-3", 1e-3},
		{"0.3048 * 0.3048", 0.09290304},
		{"5.0 / 9.0", 5.0 / 9.0},
		{"459.67 * 5.0 / 9.0", 459.67 * 5.0 / 9.0},
		{"5 / 9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v, err := Eval(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-15)
		})
	}

	for _, bad := range []string{"", "meter", "\"1\"", "1 +"} {
		_, err := Eval(bad)
		assert.Error(t, err, bad)
	}
}

func TestUnitDescriptor(t *testing.T) {
	u := Unit{Quantity: "Temperature", Name: "Fahrenheit", Symbol: "°F", System: "imperial", Factor: "5.0 / 9.0", Offset: "459.67 * 5.0 / 9.0"}

	d, err := u.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, unit.DimensionTemperature, d.Dimension)
	assert.Equal(t, unit.SystemImperial, d.System)
	assert.InDelta(t, 255.3722222, d.Offset, 1e-6)

	u.System = "galactic"
	_, err = u.Descriptor()
	require.ErrorIs(t, err, errs.ErrUnknownSystem)
}

func TestValidate_Errors(t *testing.T) {
	valid := func() *Catalog {
		c, err := Default()
		require.NoError(t, err)

		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Catalog)
		target error
	}{
		{
			name: "integer division factor",
			mutate: func(c *Catalog) {
				c.Quantities[7].Units[3].Factor = "5 / 9"
			},
			target: errs.ErrInvalidDescriptor,
		},
		{
			name: "second base unit",
			mutate: func(c *Catalog) {
				c.Quantities[0].Units = append(c.Quantities[0].Units, Entry{Name: "Metre", Symbol: "m", System: "metric", Factor: "1"})
			},
			target: errs.ErrInvalidCatalog,
		},
		{
			name: "duplicate unit name",
			mutate: func(c *Catalog) {
				c.Quantities[1].Units = append(c.Quantities[1].Units, Entry{Name: "Foot", Symbol: "ft", System: "imperial", Factor: "2"})
			},
			target: errs.ErrDuplicateUnit,
		},
		{
			name: "dangling alias",
			mutate: func(c *Catalog) {
				c.Quantities[0].Aliases = append(c.Quantities[0].Aliases, Alias{Name: "Metre", Target: "Kilogram"})
			},
			target: errs.ErrInvalidCatalog,
		},
		{
			name: "missing quantity",
			mutate: func(c *Catalog) {
				c.Quantities = c.Quantities[:len(c.Quantities)-1]
			},
			target: errs.ErrInvalidCatalog,
		},
		{
			name: "unknown quantity",
			mutate: func(c *Catalog) {
				c.Quantities[0].Name = "Distance"
			},
			target: errs.ErrUnknownQuantity,
		},
		{
			name: "shared output file",
			mutate: func(c *Catalog) {
				c.Quantities[1].File = c.Quantities[0].File
			},
			target: errs.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := c.Validate()
			require.ErrorIs(t, err, errs.ErrInvalidCatalog)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Meter", Capitalize("meter"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "meter", LowerFirst("Meter"))
}
