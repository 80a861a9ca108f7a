package measure

import "github.com/arloliu/measure/unit"

// Quantity tags. Each unit type reports exactly one of them from its
// Quantity method, which is what ties it to a quantity.
type (
	LengthQuantity            struct{}
	MassQuantity              struct{}
	TimeQuantity              struct{}
	AreaQuantity              struct{}
	VolumeQuantity            struct{}
	VelocityQuantity          struct{}
	CurrentQuantity           struct{}
	TemperatureQuantity       struct{}
	SubstanceAmountQuantity   struct{}
	LuminousIntensityQuantity struct{}
)

func (LengthQuantity) Dimension() unit.Dimension            { return unit.DimensionLength }
func (MassQuantity) Dimension() unit.Dimension              { return unit.DimensionMass }
func (TimeQuantity) Dimension() unit.Dimension              { return unit.DimensionTime }
func (AreaQuantity) Dimension() unit.Dimension              { return unit.DimensionArea }
func (VolumeQuantity) Dimension() unit.Dimension            { return unit.DimensionVolume }
func (VelocityQuantity) Dimension() unit.Dimension          { return unit.DimensionVelocity }
func (CurrentQuantity) Dimension() unit.Dimension           { return unit.DimensionCurrent }
func (TemperatureQuantity) Dimension() unit.Dimension       { return unit.DimensionTemperature }
func (SubstanceAmountQuantity) Dimension() unit.Dimension   { return unit.DimensionSubstanceAmount }
func (LuminousIntensityQuantity) Dimension() unit.Dimension { return unit.DimensionLuminousIntensity }

// Quantity markers. A value of any unit of the quantity satisfies its marker,
// which is what cross-unit operations accept.
type (
	// Length is any unit of length. The base unit is Meter.
	Length interface{ unit.Of[LengthQuantity] }
	// Mass is any unit of mass. The base unit is Kilogram.
	Mass interface{ unit.Of[MassQuantity] }
	// Time is any unit of time. The base unit is Second.
	Time interface{ unit.Of[TimeQuantity] }
	// Area is any unit of area. The base unit is SquareMeter.
	Area interface{ unit.Of[AreaQuantity] }
	// Volume is any unit of volume. The base unit is CubicMeter.
	Volume interface{ unit.Of[VolumeQuantity] }
	// Velocity is any unit of velocity. The base unit is MeterPerSecond.
	Velocity interface{ unit.Of[VelocityQuantity] }
	// Current is any unit of electric current. The base unit is Ampere.
	Current interface{ unit.Of[CurrentQuantity] }
	// Temperature is any unit of temperature. The base unit is Kelvin.
	Temperature interface{ unit.Of[TemperatureQuantity] }
	// SubstanceAmount is any unit of amount of substance. The base unit is Mole.
	SubstanceAmount interface{ unit.Of[SubstanceAmountQuantity] }
	// LuminousIntensity is any unit of luminous intensity. The base unit is Candela.
	LuminousIntensity interface{ unit.Of[LuminousIntensityQuantity] }
)

// ConvertLength expresses a length in unit To.
func ConvertLength[To unit.Scalar[LengthQuantity]](from Length) To {
	return unit.Convert[To, LengthQuantity](from)
}

// ConvertMass expresses a mass in unit To.
func ConvertMass[To unit.Scalar[MassQuantity]](from Mass) To {
	return unit.Convert[To, MassQuantity](from)
}

// ConvertTime expresses a duration in unit To.
func ConvertTime[To unit.Scalar[TimeQuantity]](from Time) To {
	return unit.Convert[To, TimeQuantity](from)
}

// ConvertArea expresses an area in unit To.
func ConvertArea[To unit.Scalar[AreaQuantity]](from Area) To {
	return unit.Convert[To, AreaQuantity](from)
}

// ConvertVolume expresses a volume in unit To.
func ConvertVolume[To unit.Scalar[VolumeQuantity]](from Volume) To {
	return unit.Convert[To, VolumeQuantity](from)
}

// ConvertVelocity expresses a velocity in unit To.
func ConvertVelocity[To unit.Scalar[VelocityQuantity]](from Velocity) To {
	return unit.Convert[To, VelocityQuantity](from)
}

// ConvertCurrent expresses an electric current in unit To.
func ConvertCurrent[To unit.Scalar[CurrentQuantity]](from Current) To {
	return unit.Convert[To, CurrentQuantity](from)
}

// ConvertTemperature expresses a temperature in unit To, applying the offsets
// of both scales.
func ConvertTemperature[To unit.Scalar[TemperatureQuantity]](from Temperature) To {
	return unit.Convert[To, TemperatureQuantity](from)
}

// ConvertSubstanceAmount expresses an amount of substance in unit To.
func ConvertSubstanceAmount[To unit.Scalar[SubstanceAmountQuantity]](from SubstanceAmount) To {
	return unit.Convert[To, SubstanceAmountQuantity](from)
}

// ConvertLuminousIntensity expresses a luminous intensity in unit To.
func ConvertLuminousIntensity[To unit.Scalar[LuminousIntensityQuantity]](from LuminousIntensity) To {
	return unit.Convert[To, LuminousIntensityQuantity](from)
}
