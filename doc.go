// Package measure provides typed units of measurement for ten physical
// quantities: length, mass, time, area, volume, velocity, electric current,
// temperature, amount of substance and luminous intensity.
//
// Every unit is a named float64 whose magnitude maps to the base unit of its
// quantity by the affine rule base = value*factor + offset:
//
//	d := measure.Foot(3)
//	m := measure.ConvertLength[measure.Meter](d) // 0.9144 Meter
//	t := measure.ConvertTemperature[measure.Kelvin](measure.Celsius(12.4)) // 285.55 Kelvin
//
// Units of the same quantity combine through methods that take the quantity's
// marker interface, so the compiler rejects mixing a length with a mass:
//
//	total := measure.Meter(2).Add(measure.Foot(3)) // Meter
//	_ = measure.Meter(2).Add(measure.Second(1))    // does not compile
//
// Products and quotients that change the quantity are free functions named
// after the operands, e.g. LengthMulLength or VolumeDivArea. They work on base
// values and return the base unit of the result quantity.
//
// Scaling with Mul and Div applies to the stored magnitude only. For units
// with an offset this is rarely a physical operation: Celsius(10).Mul(2) is
// Celsius(20), not twice the thermodynamic temperature.
//
// Equality is exact. Two values are Equal only if their base values are
// bit-identical; use unit.ApproxEqual for tolerant comparison.
//
// The unit types are generated from internal/catalog/units.yaml. The dynamic
// package resolves units by name at runtime.
package measure

//go:generate go run ./internal/tools/unitgen -catalog internal/catalog/units.yaml -out .
