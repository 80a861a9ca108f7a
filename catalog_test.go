package measure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/internal/catalog"
)

// TestCatalog_GeneratedUnitsMatchSource verifies that the generated unit types
// carry exactly the names, rules and metadata declared in units.yaml. It fails
// when the catalog is edited without regenerating.
func TestCatalog_GeneratedUnitsMatchSource(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, cat.Validate())

	expected := cat.Units()
	generated := measure.Units()
	require.Len(t, generated, len(expected), "run go generate to refresh the catalog")

	for i, entry := range expected {
		want, err := entry.Descriptor()
		require.NoError(t, err, entry.Name)

		got := generated[i].Descriptor()
		require.Equal(t, want.Name, got.Name)
		require.Equal(t, want.Symbol, got.Symbol, got.Name)
		require.Equal(t, want.Dimension, got.Dimension, got.Name)
		require.Equal(t, want.System, got.System, got.Name)
		require.InEpsilon(t, want.Factor, got.Factor, 1e-15, got.Name)
		require.InDelta(t, want.Offset, got.Offset, 1e-12, got.Name)
	}
}

func TestCatalog_AliasesMatchSource(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	aliases := measure.Aliases()
	count := 0
	for _, q := range cat.Quantities {
		for _, a := range q.Aliases {
			u, ok := aliases[a.Name]
			require.True(t, ok, "alias %s missing", a.Name)
			require.Equal(t, a.Target, u.Descriptor().Name)
			require.Equal(t, q.Name, u.Descriptor().Dimension.String())
			count++
		}
	}

	require.Len(t, aliases, count)
}

func TestCatalog_OneBasePerQuantity(t *testing.T) {
	bases := make(map[string][]string)
	for _, u := range measure.Units() {
		d := u.Descriptor()
		if d.IsBase() {
			bases[d.Dimension.String()] = append(bases[d.Dimension.String()], d.Name)
		}
	}

	require.Equal(t, map[string][]string{
		"Length":            {"Meter"},
		"Mass":              {"Kilogram"},
		"Time":              {"Second"},
		"Area":              {"SquareMeter"},
		"Volume":            {"CubicMeter"},
		"Velocity":          {"MeterPerSecond"},
		"Current":           {"Ampere"},
		"Temperature":       {"Kelvin"},
		"SubstanceAmount":   {"Mole"},
		"LuminousIntensity": {"Candela"},
	}, bases)
}
