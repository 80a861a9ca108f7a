package dynamic

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/collision"
	"github.com/arloliu/measure/internal/hash"
	"github.com/arloliu/measure/unit"
)

// Registry maps unit tokens and unit IDs to zero-valued variants. It is
// read-only once built and safe for concurrent use.
type Registry struct {
	tokens map[uint64]token
	ids    *collision.Tracker
	units  []Quantity // by ID index, in registration order
	names  []string   // every accepted token in its canonical spelling
}

type token struct {
	normalized string
	quantity   Quantity
}

// NewRegistry builds a registry from unit values and alternative names.
//
// Every unit is registered under its descriptor name and every alias under
// its map key. Tokens match case-insensitively, ignoring '-', '_' and ' '.
//
// Returns:
//   - *Registry: the registry
//   - error: errs.ErrInvalidDescriptor for a unit with an unusable rule,
//     errs.ErrDuplicateUnit when two tokens have the same spelling,
//     errs.ErrHashCollision when two different tokens share a hash
func NewRegistry(units []unit.Unit, aliases map[string]unit.Unit) (*Registry, error) {
	r := &Registry{
		tokens: make(map[uint64]token, len(units)+len(aliases)),
		ids:    collision.NewTracker(),
		units:  make([]Quantity, 0, len(units)),
		names:  make([]string, 0, len(units)+len(aliases)),
	}

	for _, u := range units {
		if u == nil {
			return nil, fmt.Errorf("%w: nil unit", errs.ErrInvalidDescriptor)
		}

		d := u.Descriptor()
		if err := d.Validate(); err != nil {
			return nil, err
		}

		q, err := From(u.WithValue(0))
		if err != nil {
			return nil, err
		}

		_, added, err := r.ids.Track(d.Name, hash.ID(d.Name))
		if err != nil {
			return nil, err
		}
		if !added {
			return nil, fmt.Errorf("%w: unit %s registered twice", errs.ErrDuplicateUnit, d.Name)
		}
		r.units = append(r.units, q)

		if err := r.addToken(d.Name, q); err != nil {
			return nil, err
		}
	}

	aliasNames := make([]string, 0, len(aliases))
	for name := range aliases {
		aliasNames = append(aliasNames, name)
	}
	slices.Sort(aliasNames)

	for _, name := range aliasNames {
		target := aliases[name]
		if target == nil {
			return nil, fmt.Errorf("%w: alias %s has no target", errs.ErrInvalidDescriptor, name)
		}

		q, ok := r.ByID(hash.ID(target.Descriptor().Name))
		if !ok {
			return nil, fmt.Errorf("%w: alias %s targets unregistered unit %s", errs.ErrUnknownUnit, name, target.Descriptor().Name)
		}

		if err := r.addToken(name, q); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) addToken(name string, q Quantity) error {
	normalized := hash.Normalize(name)
	if normalized == "" {
		return fmt.Errorf("%w: %q", errs.ErrInvalidUnitName, name)
	}

	key := hash.ID(normalized)
	if existing, ok := r.tokens[key]; ok {
		if existing.normalized == normalized {
			return fmt.Errorf("%w: %q clashes with %s", errs.ErrDuplicateUnit, name, existing.quantity.Unit().Descriptor().Name)
		}

		return fmt.Errorf("%w: tokens %q and %q", errs.ErrHashCollision, existing.normalized, normalized)
	}

	r.tokens[key] = token{normalized: normalized, quantity: q}
	r.names = append(r.names, name)

	return nil
}

// Lookup resolves a unit token such as "Kilometer", "square-meter" or "knot"
// to a zero-valued variant.
//
// Returns:
//   - Quantity: the variant of the unit, holding 0
//   - error: errs.ErrUnknownUnit for an unknown token
func (r *Registry) Lookup(tok string) (Quantity, error) {
	if t, ok := r.tokens[hash.Token(tok)]; ok && t.normalized == hash.Normalize(tok) {
		return t.quantity, nil
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownUnit, tok)
}

// ByID resolves the ID of a canonical unit name, as written by the series
// codec, to a zero-valued variant.
func (r *Registry) ByID(id uint64) (Quantity, bool) {
	idx, ok := r.ids.Index(id)
	if !ok {
		return nil, false
	}

	return r.units[idx], true
}

// Units returns a zero-valued variant of every registered unit, in
// registration order.
func (r *Registry) Units() []Quantity {
	return slices.Clone(r.units)
}

// UnitsOf returns the registered units of dimension d.
func (r *Registry) UnitsOf(d unit.Dimension) []Quantity {
	var out []Quantity
	for _, q := range r.units {
		if q.Dimension() == d {
			out = append(out, q)
		}
	}

	return out
}

// Tokens returns every accepted token in its canonical spelling: unit names
// in registration order followed by aliases in lexical order.
func (r *Registry) Tokens() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered units, aliases excluded.
func (r *Registry) Len() int {
	return len(r.units)
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry(measure.Units(), measure.Aliases())
})

// Default returns the registry of the measure catalog. It is built on first
// use.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Lookup resolves a token against the default registry.
func Lookup(tok string) (Quantity, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}

	return r.Lookup(tok)
}

// MustLookup is like Lookup but panics on an unknown token. It is meant for
// tokens fixed at compile time.
func MustLookup(tok string) Quantity {
	q, err := Lookup(tok)
	if err != nil {
		panic(err)
	}

	return q
}

// ByID resolves a unit ID against the default registry.
func ByID(id uint64) (Quantity, bool) {
	r, err := Default()
	if err != nil {
		return nil, false
	}

	return r.ByID(id)
}

// Tokens returns the tokens of the default registry.
func Tokens() []string {
	r, err := Default()
	if err != nil {
		return nil
	}

	return r.Tokens()
}

// ID returns the identifier of the unit held by q, the xxHash64 of its
// canonical name.
func ID(q Quantity) uint64 {
	return hash.ID(q.Unit().Descriptor().Name)
}
