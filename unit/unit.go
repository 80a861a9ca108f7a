// Package unit defines the contract shared by every unit of measurement and
// the generic algebra built on top of it.
//
// A unit is a named float64 type whose magnitude maps to the base unit of its
// physical quantity through the affine rule base = value*factor + offset.
// The quantity is carried as a type parameter Q, taken from the Quantity
// method of the unit, so that mixing units of different quantities is a
// compile-time error:
//
//	type Meter float64
//	func (Meter) Quantity() LengthQuantity { return LengthQuantity{} }
//
//	unit.Convert[Foot, LengthQuantity](Meter(1)) // 3.28084 ft
//	unit.Convert[Second, LengthQuantity](Meter(1)) // does not compile
//
// Units are immutable values: every operation returns a new value.
package unit

// Unit is the quantity-agnostic view of a unit value.
//
// It is what dynamic code works with; statically typed code should prefer
// Of and Scalar so that the quantity is checked by the compiler.
type Unit interface {
	// Value returns the stored magnitude in this unit.
	Value() float64
	// ToBase returns the magnitude expressed in the base unit of the quantity.
	ToBase() float64
	// FromBase returns a value of the same concrete unit holding the
	// magnitude that corresponds to the given base value.
	FromBase(base float64) Unit
	// WithValue returns a value of the same concrete unit holding value.
	WithValue(value float64) Unit
	// Descriptor returns the conversion rule and metadata of the unit.
	Descriptor() Descriptor
}

// Of is a unit measuring quantity Q.
//
// Q is a zero-size tag type. A concrete type has a single Quantity method, so
// it belongs to exactly one quantity.
type Of[Q any] interface {
	Unit
	Quantity() Q
}

// Scalar is the constraint satisfied by concrete unit types of quantity Q.
// It is used where a result of a specific unit type has to be constructed.
type Scalar[Q any] interface {
	~float64
	Of[Q]
}
