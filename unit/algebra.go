package unit

import (
	"cmp"
	"math"
	"strconv"
)

// FromBase constructs a U from a base value of its quantity.
func FromBase[U Scalar[Q], Q any](base float64) U {
	var zero U
	return U(zero.Descriptor().FromBase(base))
}

// Convert expresses from in unit To.
//
// Converting a value to its own concrete type returns it unchanged, so the
// identity conversion is exact even for units whose factor is not a power of
// two.
func Convert[To Scalar[Q], Q any](from Of[Q]) To {
	if v, ok := any(from).(To); ok {
		return v
	}

	return FromBase[To, Q](from.ToBase())
}

// Add returns a + b expressed in the unit of a.
func Add[U Scalar[Q], Q any](a U, b Of[Q]) U {
	return FromBase[U, Q](a.ToBase() + b.ToBase())
}

// Sub returns a - b expressed in the unit of a.
func Sub[U Scalar[Q], Q any](a U, b Of[Q]) U {
	return FromBase[U, Q](a.ToBase() - b.ToBase())
}

// Mul scales the stored magnitude of a by k.
//
// The affine rule is not applied, so Celsius(10) scaled by 2 is Celsius(20),
// not the temperature whose Kelvin value doubled.
func Mul[U Scalar[Q], Q any](a U, k float64) U {
	return U(float64(a) * k)
}

// Div divides the stored magnitude of a by k. Like Mul it ignores the offset.
func Div[U Scalar[Q], Q any](a U, k float64) U {
	return U(float64(a) / k)
}

// Neg negates the stored magnitude of a.
func Neg[U Scalar[Q], Q any](a U) U {
	return -a
}

// Ratio returns the dimensionless ratio a/b computed on base values.
func Ratio[Q any](a, b Of[Q]) float64 {
	return a.ToBase() / b.ToBase()
}

// Equal reports whether a and b denote exactly the same base value.
//
// No tolerance is applied: Foot(1) and Inch(12) are equal only if their base
// values are bit-identical. Use ApproxEqual for tolerant comparison.
func Equal[Q any](a, b Of[Q]) bool {
	return a.ToBase() == b.ToBase()
}

// ApproxEqual reports whether a and b differ by at most relTol relative to
// the larger base magnitude.
func ApproxEqual[Q any](a, b Of[Q], relTol float64) bool {
	x, y := a.ToBase(), b.ToBase()
	if x == y {
		return true
	}

	return math.Abs(x-y) <= relTol*max(math.Abs(x), math.Abs(y))
}

// Compare orders a and b by base value, returning -1, 0 or +1.
func Compare[Q any](a, b Of[Q]) int {
	return cmp.Compare(a.ToBase(), b.ToBase())
}

// Format renders u as "<value> <Name>", e.g. "2.5 Kilometer".
func Format(u Unit) string {
	return strconv.FormatFloat(u.Value(), 'g', -1, 64) + " " + u.Descriptor().Name
}
