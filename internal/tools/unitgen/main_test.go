package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/measure/internal/catalog"
)

// TestGenerateMatchesCommitted compares the declarations of a fresh
// generation with the files committed at the module root.
func TestGenerateMatchesCommitted(t *testing.T) {
	root := repoRoot(t)

	cat, err := catalog.Load(filepath.Join(root, "internal", "catalog", "units.yaml"))
	require.NoError(t, err)

	files, err := generate(cat)
	require.NoError(t, err)
	require.Len(t, files, len(cat.Quantities)+1)

	for name, code := range files {
		//nolint:gosec // paths are repo-local and deterministic.
		committed, err := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, err, "missing %s; run `go generate`", name)

		want := declarations(t, name, code)
		got := declarations(t, name, committed)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s out of date; run `go generate` (-generated +committed):\n%s", name, diff)
		}
	}
}

func TestGenerateQuantity(t *testing.T) {
	q := catalog.Quantity{
		Name: "Temperature",
		File: "temperature_gen.go",
		Base: "Kelvin",
		Units: []catalog.Entry{
			{Name: "Kelvin", Symbol: "K", System: "metric", Factor: "1"},
			{Name: "Fahrenheit", Symbol: "°F", System: "imperial", Factor: "5.0 / 9.0", Offset: "459.67 * 5.0 / 9.0"},
		},
	}

	code, err := generateQuantity(q)
	require.NoError(t, err)

	text := string(code)
	require.True(t, strings.HasPrefix(text, header))
	require.Contains(t, text, "// Kelvin is the metric base unit of temperature (K).")
	require.Contains(t, text, "// Fahrenheit is an imperial unit of temperature (°F).")
	require.Contains(t, text, "fahrenheitOffset = 459.67 * 5.0 / 9.0")
	require.Contains(t, text, "func (Fahrenheit) Quantity() TemperatureQuantity")
	require.Contains(t, text, "unit.Add[Fahrenheit, TemperatureQuantity](v, o)")

	decls := declarations(t, q.File, code)
	require.Equal(t, []string{"type Kelvin", "type Fahrenheit"}, decls.Types)
	require.Equal(t, "5.0 / 9.0", decls.Consts["fahrenheitFactor"])
	require.Len(t, decls.Methods, 30)
}

func TestGenerate_RejectsInvalidCatalog(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	cat.Quantities[0].Units[0].Factor = "0"

	_, err = generate(cat)
	require.Error(t, err)
}

func TestGenerateIndex(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	code, err := generateIndex(cat)
	require.NoError(t, err)

	text := string(code)
	require.Contains(t, text, "type Tonne = Megagram")
	require.Contains(t, text, "m[\"Knot\"] = NauticalMilePerHour(0)")
	require.Contains(t, text, "\t\tQuettameter(0),\n")
}

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"Meter":          "meter",
		"USGallon":       "usGallon",
		"NauticalMile":   "nauticalMile",
		"K":              "k",
		"AB":             "ab",
		"alreadyLowered": "alreadyLowered",
	}

	for in, expected := range tests {
		require.Equal(t, expected, lowerCamel(in), in)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out_gen.go")

	require.NoError(t, writeFile(path, []byte("package x\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "package x\n", string(data))

	if runtime.GOOS != "windows" {
		// An existing private file is made readable.
		require.NoError(t, os.Chmod(path, 0o600))
		require.NoError(t, writeFile(path, []byte("package y\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}

	require.Error(t, writeFile("  ", nil))
}

func TestExitErr(t *testing.T) {
	code := 0
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = os.Exit })

	exitErr(nil)
	require.Equal(t, 0, code)

	exitErr(os.ErrNotExist)
	require.Equal(t, 1, code)
}

type fileDecls struct {
	Types   []string
	Consts  map[string]string
	Methods []string
	Funcs   []string
}

// declarations extracts the declared names of a Go file together with the
// source text of every constant, so that two renderings can be compared
// independently of formatting.
func declarations(t *testing.T, name string, src []byte) fileDecls {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	require.NoError(t, err, name)

	d := fileDecls{Consts: make(map[string]string)}
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					d.Types = append(d.Types, "type "+spec.Name.Name)
				case *ast.ValueSpec:
					if decl.Tok != token.CONST {
						continue
					}
					for i, id := range spec.Names {
						d.Consts[id.Name] = types.ExprString(spec.Values[i])
					}
				}
			}
		case *ast.FuncDecl:
			if decl.Recv == nil {
				d.Funcs = append(d.Funcs, decl.Name.Name)
				continue
			}
			d.Methods = append(d.Methods, types.ExprString(decl.Recv.List[0].Type)+"."+decl.Name.Name)
		}
	}

	return d
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for repo root")
	}

	return filepath.Clean(filepath.Join(filepath.Dir(filename), "../../.."))
}
