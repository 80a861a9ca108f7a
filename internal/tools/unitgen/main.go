// Program unitgen reads internal/catalog/units.yaml and emits the unit types
// of package measure.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/arloliu/measure/internal/catalog"
)

const (
	header      = "// Code generated by internal/tools/unitgen. DO NOT EDIT.\n\n"
	indexFile   = "catalog_gen.go"
	packageName = "measure"
	unitImport  = "github.com/arloliu/measure/unit"

	generatedFileMode os.FileMode = 0o644
)

var exitFunc = os.Exit

var dimensionDocs = map[string]string{
	"Length":            "length",
	"Mass":              "mass",
	"Time":              "time",
	"Area":              "area",
	"Volume":            "volume",
	"Velocity":          "velocity",
	"Current":           "electric current",
	"Temperature":       "temperature",
	"SubstanceAmount":   "amount of substance",
	"LuminousIntensity": "luminous intensity",
}

var systemDocs = map[string]string{
	"metric":       "metric",
	"imperial":     "imperial",
	"customary":    "US customary",
	"astronomical": "astronomical",
	"nautical":     "nautical",
}

func main() {
	catalogPath := flag.String("catalog", "internal/catalog/units.yaml", "path to the unit catalog")
	outDir := flag.String("out", ".", "directory receiving the generated files")
	flag.Parse()

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		exitErr(err)
	}

	files, err := generate(cat)
	if err != nil {
		exitErr(err)
	}

	for _, name := range sortedKeys(files) {
		if err := writeFile(filepath.Join(*outDir, name), files[name]); err != nil {
			exitErr(err)
		}
	}

	fmt.Printf("generated %d files from %s\n", len(files), *catalogPath)
}

// generate validates the catalog and renders one file per quantity plus the
// catalog index, keyed by file name.
func generate(cat *catalog.Catalog) (map[string][]byte, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(cat.Quantities)+1)
	for _, q := range cat.Quantities {
		code, err := generateQuantity(q)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", q.Name, err)
		}
		files[q.File] = code
	}

	code, err := generateIndex(cat)
	if err != nil {
		return nil, fmt.Errorf("generate index: %w", err)
	}
	files[indexFile] = code

	return files, nil
}

func generateQuantity(q catalog.Quantity) ([]byte, error) {
	var body strings.Builder
	for _, u := range q.Expand() {
		writeUnit(&body, q, u)
	}

	return formatFile(body.String())
}

func writeUnit(body *strings.Builder, q catalog.Quantity, u catalog.Unit) {
	name := u.Name
	tag := q.Name + "Quantity"
	v := lowerCamel(name)

	if name == q.Base {
		fmt.Fprintf(body, "// %s is the %s base unit of %s (%s).\n", name, systemDocs[u.System], dimensionDocs[q.Name], u.Symbol)
	} else {
		fmt.Fprintf(body, "// %s is %s %s unit of %s (%s).\n", name, article(systemDocs[u.System]), systemDocs[u.System], dimensionDocs[q.Name], u.Symbol)
	}
	fmt.Fprintf(body, "type %s float64\n\n", name)

	body.WriteString("const (\n")
	fmt.Fprintf(body, "\t%sFactor = %s\n", v, u.Factor)
	fmt.Fprintf(body, "\t%sOffset = %s\n", v, u.Offset)
	body.WriteString(")\n\n")

	fmt.Fprintf(body, "var %sDescriptor = unit.Descriptor{Name: %q, Symbol: %q, Dimension: unit.Dimension%s, System: unit.System%s, Factor: %sFactor, Offset: %sOffset}\n\n",
		v, name, u.Symbol, q.Name, catalog.Capitalize(u.System), v, v)

	fmt.Fprintf(body, "func (%s) Quantity() %s { return %s{} }\n", name, tag, tag)
	fmt.Fprintf(body, "func (%s) Descriptor() unit.Descriptor { return %sDescriptor }\n", name, v)
	fmt.Fprintf(body, "func (v %s) Value() float64 { return float64(v) }\n", name)
	fmt.Fprintf(body, "func (v %s) ToBase() float64 { return float64(v)*%sFactor + %sOffset }\n", name, v, v)
	fmt.Fprintf(body, "func (%s) FromBase(base float64) unit.Unit { return unit.FromBase[%s, %s](base) }\n", name, name, tag)
	fmt.Fprintf(body, "func (%s) WithValue(value float64) unit.Unit { return %s(value) }\n", name, name)
	fmt.Fprintf(body, "func (v %s) Add(o %s) %s { return unit.Add[%s, %s](v, o) }\n", name, q.Name, name, name, tag)
	fmt.Fprintf(body, "func (v %s) Sub(o %s) %s { return unit.Sub[%s, %s](v, o) }\n", name, q.Name, name, name, tag)
	fmt.Fprintf(body, "func (v %s) Mul(k float64) %s { return unit.Mul[%s, %s](v, k) }\n", name, name, name, tag)
	fmt.Fprintf(body, "func (v %s) Div(k float64) %s { return unit.Div[%s, %s](v, k) }\n", name, name, name, tag)
	fmt.Fprintf(body, "func (v %s) Neg() %s { return unit.Neg[%s, %s](v) }\n", name, name, name, tag)
	fmt.Fprintf(body, "func (v %s) Ratio(o %s) float64 { return unit.Ratio[%s](v, o) }\n", name, q.Name, tag)
	fmt.Fprintf(body, "func (v %s) Equal(o %s) bool { return unit.Equal[%s](v, o) }\n", name, q.Name, tag)
	fmt.Fprintf(body, "func (v %s) Compare(o %s) int { return unit.Compare[%s](v, o) }\n", name, q.Name, tag)
	fmt.Fprintf(body, "func (v %s) String() string { return unit.Format(v) }\n\n", name)
}

func generateIndex(cat *catalog.Catalog) ([]byte, error) {
	var body strings.Builder

	aliases := 0
	for _, q := range cat.Quantities {
		for _, a := range q.Aliases {
			fmt.Fprintf(&body, "// %s is an alternative name for %s.\n", a.Name, a.Target)
			fmt.Fprintf(&body, "type %s = %s\n\n", a.Name, a.Target)
			aliases++
		}
	}

	units := cat.Units()
	body.WriteString("// Units returns a zero value of every catalog unit, grouped by quantity.\n")
	body.WriteString("func Units() []unit.Unit {\n")
	body.WriteString("\treturn []unit.Unit{\n")
	for _, u := range units {
		fmt.Fprintf(&body, "\t\t%s(0),\n", u.Name)
	}
	body.WriteString("\t}\n}\n\n")

	body.WriteString("// Aliases returns a zero value of the unit named by every alternative name.\n")
	body.WriteString("func Aliases() map[string]unit.Unit {\n")
	fmt.Fprintf(&body, "\tm := make(map[string]unit.Unit, %d)\n", aliases)
	for _, q := range cat.Quantities {
		for _, a := range q.Aliases {
			fmt.Fprintf(&body, "\tm[%q] = %s(0)\n", a.Name, a.Target)
		}
	}
	body.WriteString("\n\treturn m\n}\n")

	return formatFile(body.String())
}

func formatFile(body string) ([]byte, error) {
	var file strings.Builder
	file.WriteString(header)
	fmt.Fprintf(&file, "package %s\n\n", packageName)
	fmt.Fprintf(&file, "import %q\n\n", unitImport)
	file.WriteString(body)

	formatted, err := format.Source([]byte(file.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	return formatted, nil
}

// lowerCamel turns an exported identifier into an unexported one, keeping
// leading initialisms together: USGallon becomes usGallon.
func lowerCamel(name string) string {
	runes := []rune(name)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	if upper > 1 && upper < len(runes) {
		upper--
	}

	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// article picks the indefinite article for a lower-case system adjective.
// Capitalised initialisms such as "US" take "a".
func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}

	return "a"
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// writeFile writes a generated source file with mode 0o644, replacing the
// mode of any file already at path.
func writeFile(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // readable source tree
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, generatedFileMode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Chmod(path, generatedFileMode); err != nil { //nolint:gosec // readable source tree
		return fmt.Errorf("set output mode: %w", err)
	}

	return nil
}

func exitErr(err error) {
	if err == nil {
		return
	}
	//nolint:forbidigo // generator writes to stderr on failure.
	fmt.Fprintln(os.Stderr, err)
	exitFunc(1)
}
