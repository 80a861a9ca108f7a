package unit

import (
	"fmt"
	"math"

	"github.com/arloliu/measure/errs"
)

// Descriptor carries the conversion rule of a unit together with the
// metadata used for display and lookup.
//
// A magnitude v expressed in the described unit corresponds to the base
// value v*Factor + Offset of its quantity. Factor is never zero.
type Descriptor struct {
	Name      string    // Name is the canonical unit name, e.g. "Kilometer".
	Symbol    string    // Symbol is the conventional symbol, e.g. "km".
	Dimension Dimension // Dimension is the measured quantity.
	System    System    // System is the system of measurement.
	Factor    float64   // Factor is the multiplicative part of the affine rule.
	Offset    float64   // Offset is the additive part of the affine rule.
}

// ToBase maps a magnitude in this unit to the base unit of its quantity.
func (d Descriptor) ToBase(value float64) float64 {
	return value*d.Factor + d.Offset
}

// FromBase maps a base value to a magnitude in this unit.
func (d Descriptor) FromBase(base float64) float64 {
	return (base - d.Offset) / d.Factor
}

// IsBase reports whether the descriptor is the identity rule.
func (d Descriptor) IsBase() bool {
	return d.Factor == 1 && d.Offset == 0
}

// IsAffine reports whether the rule has a non-zero offset, as temperature
// scales other than Kelvin do.
func (d Descriptor) IsAffine() bool {
	return d.Offset != 0
}

// Validate checks that the descriptor defines an invertible conversion.
//
// Returns:
//   - error: wraps errs.ErrInvalidDescriptor when the name is empty, the
//     dimension is unknown, the factor is zero or not finite, or the offset
//     is not finite.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty unit name", errs.ErrInvalidDescriptor)
	}

	if !d.Dimension.Valid() {
		return fmt.Errorf("%w: unit %s has unknown dimension %d", errs.ErrInvalidDescriptor, d.Name, d.Dimension)
	}

	if d.Factor == 0 || math.IsNaN(d.Factor) || math.IsInf(d.Factor, 0) {
		return fmt.Errorf("%w: unit %s has factor %v", errs.ErrInvalidDescriptor, d.Name, d.Factor)
	}

	if math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0) {
		return fmt.Errorf("%w: unit %s has offset %v", errs.ErrInvalidDescriptor, d.Name, d.Offset)
	}

	return nil
}
