package measure

// Cross-quantity products and quotients. Operands may be in any unit; the
// arithmetic is done on base values and the result is always in the base
// unit of the resulting quantity. Division by zero follows IEEE-754.

// LengthMulLength returns the area spanned by two lengths.
func LengthMulLength(a, b Length) SquareMeter {
	return SquareMeter(a.ToBase() * b.ToBase())
}

// LengthMulArea returns the volume of a prism of base b and height a.
func LengthMulArea(a Length, b Area) CubicMeter {
	return CubicMeter(a.ToBase() * b.ToBase())
}

// LengthDivTime returns the average speed covering distance a in duration b.
func LengthDivTime(a Length, b Time) MeterPerSecond {
	return MeterPerSecond(a.ToBase() / b.ToBase())
}

// LengthDivVelocity returns the time needed to cover distance a at speed b.
func LengthDivVelocity(a Length, b Velocity) Second {
	return Second(a.ToBase() / b.ToBase())
}

// TimeMulVelocity returns the distance covered in duration a at speed b.
func TimeMulVelocity(a Time, b Velocity) Meter {
	return Meter(a.ToBase() * b.ToBase())
}

// AreaMulLength returns the volume of a prism of base a and height b.
func AreaMulLength(a Area, b Length) CubicMeter {
	return CubicMeter(a.ToBase() * b.ToBase())
}

// AreaDivLength returns the side of a rectangle of area a and side b.
func AreaDivLength(a Area, b Length) Meter {
	return Meter(a.ToBase() / b.ToBase())
}

// VolumeDivLength returns the cross-section of a prism of volume a and height b.
func VolumeDivLength(a Volume, b Length) SquareMeter {
	return SquareMeter(a.ToBase() / b.ToBase())
}

// VolumeDivArea returns the height of a prism of volume a and base b.
func VolumeDivArea(a Volume, b Area) Meter {
	return Meter(a.ToBase() / b.ToBase())
}

// VelocityMulTime returns the distance covered at speed a in duration b.
func VelocityMulTime(a Velocity, b Time) Meter {
	return Meter(a.ToBase() * b.ToBase())
}
