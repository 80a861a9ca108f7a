package catalog

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/unit"
)

// Eval evaluates a constant expression such as "0.3048 * 0.3048" with
// arbitrary precision and returns the nearest float64.
func Eval(expr string) (float64, error) {
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expr, err)
	}

	if tv.Value == nil {
		return 0, fmt.Errorf("evaluate %q: not a constant expression", expr)
	}

	switch tv.Value.Kind() {
	case constant.Int, constant.Float:
	default:
		return 0, fmt.Errorf("evaluate %q: not a numeric constant", expr)
	}

	v, _ := constant.Float64Val(constant.ToFloat(tv.Value))

	return v, nil
}

// Descriptor evaluates u into the descriptor its generated type reports.
func (u Unit) Descriptor() (unit.Descriptor, error) {
	dim, err := unit.ParseDimension(u.Quantity)
	if err != nil {
		return unit.Descriptor{}, err
	}

	sys, err := unit.ParseSystem(u.System)
	if err != nil {
		return unit.Descriptor{}, err
	}

	factor, err := Eval(u.Factor)
	if err != nil {
		return unit.Descriptor{}, err
	}

	offset, err := Eval(u.Offset)
	if err != nil {
		return unit.Descriptor{}, err
	}

	return unit.Descriptor{
		Name:      u.Name,
		Symbol:    u.Symbol,
		Dimension: dim,
		System:    sys,
		Factor:    factor,
		Offset:    offset,
	}, nil
}

// Validate checks the whole catalog and reports every problem found.
//
// A valid catalog has known quantities with an output file, units with a
// finite non-zero factor and a finite offset, exactly one identity-rule unit
// per quantity which is also the declared base, names that are unique across
// units and aliases, and aliases that point at a unit of their own quantity.
func (c *Catalog) Validate() error {
	var problems []error

	seen := make(map[string]string)
	claim := func(name, owner string) {
		if prev, ok := seen[name]; ok {
			problems = append(problems, fmt.Errorf("%w: %s declared by %s and %s", errs.ErrDuplicateUnit, name, prev, owner))
			return
		}
		seen[name] = owner
	}

	files := make(map[string]string)
	for _, q := range c.Quantities {
		if _, err := unit.ParseDimension(q.Name); err != nil {
			problems = append(problems, err)
			continue
		}

		if q.File == "" {
			problems = append(problems, fmt.Errorf("quantity %s has no output file", q.Name))
		} else if prev, ok := files[q.File]; ok {
			problems = append(problems, fmt.Errorf("quantities %s and %s share output file %s", prev, q.Name, q.File))
		} else {
			files[q.File] = q.Name
		}

		var bases []string
		names := make([]string, 0)
		for _, u := range q.Expand() {
			claim(u.Name, q.Name)
			names = append(names, u.Name)

			d, err := u.Descriptor()
			if err != nil {
				problems = append(problems, fmt.Errorf("unit %s: %w", u.Name, err))
				continue
			}

			if err := d.Validate(); err != nil {
				problems = append(problems, err)
				continue
			}

			if d.IsBase() {
				bases = append(bases, u.Name)
			}
		}

		switch {
		case len(bases) != 1:
			problems = append(problems, fmt.Errorf("quantity %s must have exactly one base unit, found %v", q.Name, bases))
		case bases[0] != q.Base:
			problems = append(problems, fmt.Errorf("quantity %s declares base %s but identity unit is %s", q.Name, q.Base, bases[0]))
		}

		for _, a := range q.Aliases {
			claim(a.Name, q.Name)
			if !slices.Contains(names, a.Target) {
				problems = append(problems, fmt.Errorf("alias %s targets %s which is not a %s unit", a.Name, a.Target, q.Name))
			}
		}
	}

	for _, d := range unit.Dimensions() {
		if _, ok := c.Quantity(d.String()); !ok {
			problems = append(problems, fmt.Errorf("quantity %s is missing", d))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", errs.ErrInvalidCatalog, errors.Join(problems...))
	}

	return nil
}
