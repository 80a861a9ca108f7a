// Package catalog loads the declarative unit catalog that the measure
// package is generated from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/measure/errs"
)

//go:embed units.yaml
var defaultCatalog []byte

// Catalog is the parsed form of units.yaml.
type Catalog struct {
	Quantities []Quantity `yaml:"quantities"`
}

// Quantity describes one physical quantity and its units.
type Quantity struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Base    string   `yaml:"base"`
	Series  []Series `yaml:"series"`
	Units   []Entry  `yaml:"units"`
	Aliases []Alias  `yaml:"aliases"`
}

// Series expands into the SI-prefixed units of a stem.
type Series struct {
	System       string `yaml:"system"`
	Stem         string `yaml:"stem"`
	Symbol       string `yaml:"symbol"`
	Power        int    `yaml:"power"`
	Scale        int    `yaml:"scale"`
	NameFormat   string `yaml:"name_format"`
	SymbolFormat string `yaml:"symbol_format"`
}

// Entry is a single unit. Factor and Offset are Go constant expressions.
type Entry struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	System string `yaml:"system"`
	Factor string `yaml:"factor"`
	Offset string `yaml:"offset"`
}

// Alias declares an alternative name for a unit of the same quantity.
type Alias struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// Default returns the catalog shipped with the module.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	//nolint:gosec // generator intentionally reads caller-provided catalog path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Parse(raw)
}

// Parse decodes catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", errs.ErrInvalidCatalog, err)
	}

	if len(c.Quantities) == 0 {
		return nil, fmt.Errorf("%w: no quantities defined", errs.ErrInvalidCatalog)
	}

	return &c, nil
}

// Quantity returns the quantity with the given name.
func (c *Catalog) Quantity(name string) (Quantity, bool) {
	for _, q := range c.Quantities {
		if q.Name == name {
			return q, true
		}
	}

	return Quantity{}, false
}
