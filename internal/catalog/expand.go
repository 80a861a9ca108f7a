package catalog

import (
	"fmt"
	"strings"
)

// Prefix is an SI decimal prefix.
type Prefix struct {
	Name     string
	Symbol   string
	Exponent int
}

// Prefixes lists the SI prefixes a series expands into, largest first. The
// empty prefix stands for the unprefixed stem. Hecto and deca are omitted.
var Prefixes = []Prefix{
	{"Quetta", "Q", 30},
	{"Ronna", "R", 27},
	{"Yotta", "Y", 24},
	{"Zetta", "Z", 21},
	{"Exa", "E", 18},
	{"Peta", "P", 15},
	{"Tera", "T", 12},
	{"Giga", "G", 9},
	{"Mega", "M", 6},
	{"Kilo", "k", 3},
	{"", "", 0},
	{"Deci", "d", -1},
	{"Centi", "c", -2},
	{"Milli", "m", -3},
	{"Micro", "µ", -6},
	{"Nano", "n", -9},
	{"Pico", "p", -12},
	{"Femto", "f", -15},
	{"Atto", "a", -18},
	{"Zepto", "z", -21},
	{"Yocto", "y", -24},
	{"Ronto", "r", -27},
	{"Quecto", "q", -30},
}

// Unit is a fully expanded catalog unit.
type Unit struct {
	Quantity string
	Name     string
	Symbol   string
	System   string
	Factor   string
	Offset   string
}

// IsBase reports whether u is written as the identity rule.
func (u Unit) IsBase() bool {
	return u.Factor == "1" && u.Offset == "0"
}

// Expand returns the units of q: series units in prefix order followed by
// the explicitly listed units.
func (q Quantity) Expand() []Unit {
	units := make([]Unit, 0, len(q.Series)*len(Prefixes)+len(q.Units))
	for _, s := range q.Series {
		units = append(units, s.expand(q.Name)...)
	}

	for _, e := range q.Units {
		offset := strings.TrimSpace(e.Offset)
		if offset == "" {
			offset = "0"
		}

		units = append(units, Unit{
			Quantity: q.Name,
			Name:     e.Name,
			Symbol:   e.Symbol,
			System:   e.System,
			Factor:   strings.TrimSpace(e.Factor),
			Offset:   offset,
		})
	}

	return units
}

// Units returns every expanded unit of the catalog in declaration order.
func (c *Catalog) Units() []Unit {
	var units []Unit
	for _, q := range c.Quantities {
		units = append(units, q.Expand()...)
	}

	return units
}

func (s Series) expand(quantity string) []Unit {
	power := s.Power
	if power == 0 {
		power = 1
	}

	nameFormat := defaultFormat(s.NameFormat)
	symbolFormat := defaultFormat(s.SymbolFormat)

	units := make([]Unit, 0, len(Prefixes))
	for _, p := range Prefixes {
		stem := p.Name + s.Stem
		if p.Name == "" {
			stem = Capitalize(s.Stem)
		}

		units = append(units, Unit{
			Quantity: quantity,
			Name:     fmt.Sprintf(nameFormat, stem),
			Symbol:   fmt.Sprintf(symbolFormat, p.Symbol+s.Symbol),
			System:   s.System,
			Factor:   powerOfTen(p.Exponent*power + s.Scale),
			Offset:   "0",
		})
	}

	return units
}

func defaultFormat(f string) string {
	if f == "" {
		return "%s"
	}

	return f
}

func powerOfTen(exp int) string {
	if exp == 0 {
		return "1"
	}

	return fmt.Sprintf("1e%d", exp)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// LowerFirst lower-cases the first letter of s.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(s[:1]) + s[1:]
}
