// Package dynamic resolves units from text at run time and converts between
// them.
//
// A Quantity is a closed sum type with one variant per physical quantity.
// Each variant holds a unit value typed by its quantity marker, so that code
// which switches on the variant gets back the statically typed world:
//
//	q, err := dynamic.Lookup("foot")
//	switch q := q.(type) {
//	case dynamic.Length:
//		meters := measure.ConvertLength[measure.Meter](q.Typed())
//	}
//
// Conversions between variants of different quantities fail with
// errs.ErrQuantityMismatch instead of failing to compile.
package dynamic

import (
	"fmt"

	"github.com/arloliu/measure"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/unit"
)

// Quantity is a unit value of one of the ten physical quantities.
//
// The implementations are exactly Length, Mass, Time, Area, Volume, Velocity,
// Current, Temperature, SubstanceAmount and LuminousIntensity.
type Quantity interface {
	// Dimension reports the quantity of the variant.
	Dimension() unit.Dimension
	// Unit returns the wrapped unit value.
	Unit() unit.Unit
	// Value returns the magnitude of the wrapped unit value.
	Value() float64
	// WithValue returns the same variant and unit holding value.
	WithValue(value float64) Quantity
	// String formats the value as "<value> <UnitName>".
	String() string

	sealed()
}

// variant is embedded by every Quantity implementation.
type variant[U unit.Unit] struct {
	unit U
}

// Typed returns the wrapped unit as its quantity marker type.
func (v variant[U]) Typed() U {
	return v.unit
}

func (v variant[U]) Unit() unit.Unit {
	return v.unit
}

func (v variant[U]) Value() float64 {
	return v.unit.Value()
}

func (v variant[U]) String() string {
	return unit.Format(v.unit)
}

func (v variant[U]) MarshalJSON() ([]byte, error) {
	return marshalUnit(v.unit)
}

func (variant[U]) sealed() {}

// with returns the wrapped unit holding value. The concrete unit type is
// preserved by WithValue, so the assertion cannot fail.
func (v variant[U]) with(value float64) U {
	u, _ := v.unit.WithValue(value).(U)
	return u
}

type (
	// Length wraps a unit of length.
	Length struct{ variant[measure.Length] }
	// Mass wraps a unit of mass.
	Mass struct{ variant[measure.Mass] }
	// Time wraps a unit of time.
	Time struct{ variant[measure.Time] }
	// Area wraps a unit of area.
	Area struct{ variant[measure.Area] }
	// Volume wraps a unit of volume.
	Volume struct{ variant[measure.Volume] }
	// Velocity wraps a unit of velocity.
	Velocity struct{ variant[measure.Velocity] }
	// Current wraps a unit of electric current.
	Current struct{ variant[measure.Current] }
	// Temperature wraps a unit of temperature.
	Temperature struct{ variant[measure.Temperature] }
	// SubstanceAmount wraps a unit of amount of substance.
	SubstanceAmount struct{ variant[measure.SubstanceAmount] }
	// LuminousIntensity wraps a unit of luminous intensity.
	LuminousIntensity struct{ variant[measure.LuminousIntensity] }
)

var (
	_ Quantity = Length{}
	_ Quantity = Mass{}
	_ Quantity = Time{}
	_ Quantity = Area{}
	_ Quantity = Volume{}
	_ Quantity = Velocity{}
	_ Quantity = Current{}
	_ Quantity = Temperature{}
	_ Quantity = SubstanceAmount{}
	_ Quantity = LuminousIntensity{}
)

func (Length) Dimension() unit.Dimension            { return unit.DimensionLength }
func (Mass) Dimension() unit.Dimension              { return unit.DimensionMass }
func (Time) Dimension() unit.Dimension              { return unit.DimensionTime }
func (Area) Dimension() unit.Dimension              { return unit.DimensionArea }
func (Volume) Dimension() unit.Dimension            { return unit.DimensionVolume }
func (Velocity) Dimension() unit.Dimension          { return unit.DimensionVelocity }
func (Current) Dimension() unit.Dimension           { return unit.DimensionCurrent }
func (Temperature) Dimension() unit.Dimension       { return unit.DimensionTemperature }
func (SubstanceAmount) Dimension() unit.Dimension   { return unit.DimensionSubstanceAmount }
func (LuminousIntensity) Dimension() unit.Dimension { return unit.DimensionLuminousIntensity }

func (q Length) WithValue(v float64) Quantity   { return Length{variant[measure.Length]{q.with(v)}} }
func (q Mass) WithValue(v float64) Quantity     { return Mass{variant[measure.Mass]{q.with(v)}} }
func (q Time) WithValue(v float64) Quantity     { return Time{variant[measure.Time]{q.with(v)}} }
func (q Area) WithValue(v float64) Quantity     { return Area{variant[measure.Area]{q.with(v)}} }
func (q Volume) WithValue(v float64) Quantity   { return Volume{variant[measure.Volume]{q.with(v)}} }
func (q Velocity) WithValue(v float64) Quantity { return Velocity{variant[measure.Velocity]{q.with(v)}} }
func (q Current) WithValue(v float64) Quantity  { return Current{variant[measure.Current]{q.with(v)}} }

func (q Temperature) WithValue(v float64) Quantity {
	return Temperature{variant[measure.Temperature]{q.with(v)}}
}

func (q SubstanceAmount) WithValue(v float64) Quantity {
	return SubstanceAmount{variant[measure.SubstanceAmount]{q.with(v)}}
}

func (q LuminousIntensity) WithValue(v float64) Quantity {
	return LuminousIntensity{variant[measure.LuminousIntensity]{q.with(v)}}
}

// From wraps a unit value in the variant of its quantity.
//
// Returns:
//   - Quantity: the variant holding u
//   - error: errs.ErrUnknownQuantity when u does not belong to one of the
//     catalog quantities
func From(u unit.Unit) (Quantity, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: nil unit", errs.ErrUnknownQuantity)
	}

	var (
		q  Quantity
		ok bool
	)

	switch u.Descriptor().Dimension {
	case unit.DimensionLength:
		q, ok = wrap(u, func(m measure.Length) Quantity { return Length{variant[measure.Length]{m}} })
	case unit.DimensionMass:
		q, ok = wrap(u, func(m measure.Mass) Quantity { return Mass{variant[measure.Mass]{m}} })
	case unit.DimensionTime:
		q, ok = wrap(u, func(m measure.Time) Quantity { return Time{variant[measure.Time]{m}} })
	case unit.DimensionArea:
		q, ok = wrap(u, func(m measure.Area) Quantity { return Area{variant[measure.Area]{m}} })
	case unit.DimensionVolume:
		q, ok = wrap(u, func(m measure.Volume) Quantity { return Volume{variant[measure.Volume]{m}} })
	case unit.DimensionVelocity:
		q, ok = wrap(u, func(m measure.Velocity) Quantity { return Velocity{variant[measure.Velocity]{m}} })
	case unit.DimensionCurrent:
		q, ok = wrap(u, func(m measure.Current) Quantity { return Current{variant[measure.Current]{m}} })
	case unit.DimensionTemperature:
		q, ok = wrap(u, func(m measure.Temperature) Quantity { return Temperature{variant[measure.Temperature]{m}} })
	case unit.DimensionSubstanceAmount:
		q, ok = wrap(u, func(m measure.SubstanceAmount) Quantity { return SubstanceAmount{variant[measure.SubstanceAmount]{m}} })
	case unit.DimensionLuminousIntensity:
		q, ok = wrap(u, func(m measure.LuminousIntensity) Quantity { return LuminousIntensity{variant[measure.LuminousIntensity]{m}} })
	}

	if !ok {
		d := u.Descriptor()
		return nil, fmt.Errorf("%w: unit %s reports %s but is not a catalog unit of it", errs.ErrUnknownQuantity, d.Name, d.Dimension)
	}

	return q, nil
}

// MustFrom is like From but panics if u is not a catalog unit.
func MustFrom(u unit.Unit) Quantity {
	q, err := From(u)
	if err != nil {
		panic(err)
	}

	return q
}

func wrap[M unit.Unit](u unit.Unit, mk func(M) Quantity) (Quantity, bool) {
	m, ok := u.(M)
	if !ok {
		return nil, false
	}

	return mk(m), true
}
