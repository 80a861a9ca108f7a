// Package errs defines the sentinel errors returned by the measure packages.
//
// Errors are wrapped with fmt.Errorf("%w: ...") at the point of failure, so
// callers should match them with errors.Is rather than by comparing strings.
package errs

import "errors"

// Conversion and lookup errors.
var (
	// ErrQuantityMismatch is returned when two units of different physical
	// quantities are combined, e.g. converting Meter to Kelvin.
	ErrQuantityMismatch = errors.New("quantity mismatch")
	// ErrUnknownUnit is returned when a unit token cannot be resolved.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownQuantity is returned when a quantity name cannot be resolved.
	ErrUnknownQuantity = errors.New("unknown quantity")
	// ErrUnknownSystem is returned when a measurement system name cannot be resolved.
	ErrUnknownSystem = errors.New("unknown measurement system")
	// ErrInvalidDescriptor is returned when a unit descriptor has a zero or
	// non-finite factor or a non-finite offset.
	ErrInvalidDescriptor = errors.New("invalid unit descriptor")
	// ErrDuplicateUnit is returned when two units or aliases share a token.
	ErrDuplicateUnit = errors.New("duplicate unit token")
	// ErrInvalidCatalog is returned when a declarative unit catalog is malformed.
	ErrInvalidCatalog = errors.New("invalid unit catalog")
	// ErrInvalidJSON is returned when a quantity document cannot be decoded.
	ErrInvalidJSON = errors.New("invalid quantity document")
)

// Unit identifier errors.
var (
	// ErrHashCollision is returned when two distinct unit names hash to the same ID.
	ErrHashCollision = errors.New("unit id hash collision")
	// ErrHashMismatch is returned when a stored unit name does not hash to its stored ID.
	ErrHashMismatch = errors.New("unit id hash mismatch")
	// ErrInvalidUnitName is returned for empty or oversized unit names.
	ErrInvalidUnitName = errors.New("invalid unit name")
	// ErrUnitAlreadyAdded is returned when the same unit is tracked twice.
	ErrUnitAlreadyAdded = errors.New("unit already added")
)

// Series codec errors.
var (
	ErrInvalidHeaderSize         = errors.New("invalid header size")
	ErrInvalidHeaderFlags        = errors.New("invalid header flags")
	ErrInvalidIndexEntrySize     = errors.New("invalid index entry size")
	ErrInvalidPayload            = errors.New("invalid payload")
	ErrChecksumMismatch          = errors.New("payload checksum mismatch")
	ErrEncoderFinished           = errors.New("encoder already finished")
	ErrNoValuesAdded             = errors.New("no values added")
	ErrTooManyUnits              = errors.New("too many units")
	ErrTooManyValues             = errors.New("too many values")
	ErrInvalidUnitNamesCount     = errors.New("invalid unit names count")
	ErrInvalidUnitNamesPayload   = errors.New("invalid unit names payload")
	ErrUnsupportedCompression    = errors.New("unsupported compression type")
	ErrUnsupportedEncoding       = errors.New("unsupported value encoding")
	ErrInvalidNumericValuesCount = errors.New("invalid numeric values count")
)
