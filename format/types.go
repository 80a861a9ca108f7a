// Package format defines the identifiers written into encoded measurement
// series.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/measure/errs"
)

// CompressionType identifies the codec applied to a series value payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType resolves a case-insensitive compression name such as
// "zstd" or "none".
func ParseCompressionType(name string) (CompressionType, error) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
}

// EncodingType identifies how series values are laid out before compression.
type EncodingType uint8

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores each value as its 8 IEEE-754 bytes.
	TypeGorilla EncodingType = 0x3 // TypeGorilla XORs each value with its predecessor.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a value encoding a series can carry.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

// ParseEncodingType resolves a case-insensitive encoding name such as "raw"
// or "gorilla".
func ParseEncodingType(name string) (EncodingType, error) {
	for _, e := range []EncodingType{TypeRaw, TypeGorilla} {
		if strings.EqualFold(name, e.String()) {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedEncoding, name)
}
