package unit

import (
	"fmt"
	"strings"

	"github.com/arloliu/measure/errs"
)

type (
	// Dimension identifies the physical quantity a unit measures.
	Dimension uint8
	// System identifies the system of measurement a unit belongs to.
	System uint8
)

const (
	DimensionUnknown           Dimension = 0x0
	DimensionLength            Dimension = 0x1
	DimensionMass              Dimension = 0x2
	DimensionTime              Dimension = 0x3
	DimensionArea              Dimension = 0x4
	DimensionVolume            Dimension = 0x5
	DimensionVelocity          Dimension = 0x6
	DimensionCurrent           Dimension = 0x7
	DimensionTemperature       Dimension = 0x8
	DimensionSubstanceAmount   Dimension = 0x9
	DimensionLuminousIntensity Dimension = 0xA

	SystemUnknown      System = 0x0
	SystemMetric       System = 0x1 // SystemMetric covers SI units and SI-accepted units.
	SystemImperial     System = 0x2 // SystemImperial covers British imperial units.
	SystemCustomary    System = 0x3 // SystemCustomary covers United States customary units.
	SystemAstronomical System = 0x4 // SystemAstronomical covers parsecs, light-years and astronomical units.
	SystemNautical     System = 0x5 // SystemNautical covers fathoms, cables and nautical miles.
)

var dimensionNames = [...]string{
	DimensionUnknown:           "Unknown",
	DimensionLength:            "Length",
	DimensionMass:              "Mass",
	DimensionTime:              "Time",
	DimensionArea:              "Area",
	DimensionVolume:            "Volume",
	DimensionVelocity:          "Velocity",
	DimensionCurrent:           "Current",
	DimensionTemperature:       "Temperature",
	DimensionSubstanceAmount:   "SubstanceAmount",
	DimensionLuminousIntensity: "LuminousIntensity",
}

// Dimensions returns every known dimension in declaration order.
func Dimensions() []Dimension {
	dims := make([]Dimension, 0, len(dimensionNames)-1)
	for d := DimensionLength; int(d) < len(dimensionNames); d++ {
		dims = append(dims, d)
	}

	return dims
}

func (d Dimension) String() string {
	if int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}

	return "Unknown"
}

// Valid reports whether d names a known dimension.
func (d Dimension) Valid() bool {
	return d != DimensionUnknown && int(d) < len(dimensionNames)
}

// ParseDimension resolves a dimension by name, ignoring case.
func ParseDimension(name string) (Dimension, error) {
	for _, d := range Dimensions() {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}

	return DimensionUnknown, fmt.Errorf("%w: %q", errs.ErrUnknownQuantity, name)
}

func (s System) String() string {
	switch s {
	case SystemMetric:
		return "Metric"
	case SystemImperial:
		return "Imperial"
	case SystemCustomary:
		return "Customary"
	case SystemAstronomical:
		return "Astronomical"
	case SystemNautical:
		return "Nautical"
	default:
		return "Unknown"
	}
}

// ParseSystem resolves a measurement system by name, ignoring case.
func ParseSystem(name string) (System, error) {
	for s := SystemMetric; s <= SystemNautical; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}

	return SystemUnknown, fmt.Errorf("%w: %q", errs.ErrUnknownSystem, name)
}
