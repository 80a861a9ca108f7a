package series

import (
	"fmt"
	"hash/crc32"
	"iter"

	"github.com/arloliu/measure/compress"
	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
	"github.com/arloliu/measure/internal/encoding"
	"github.com/arloliu/measure/internal/hash"
	"github.com/arloliu/measure/internal/options"
	"github.com/arloliu/measure/section"
)

// Decoder is a decoded series. It is immutable and safe for concurrent use.
type Decoder struct {
	registry *dynamic.Registry
	header   section.Header
	entries  []section.IndexEntry
	units    []dynamic.Quantity // units[i] describes entries[i]
	index    map[uint64]int     // unit ID to entry position
	values   []float64
}

// NewDecoder validates and decodes a series produced by Encoder.Finish.
//
// Returns:
//   - *Decoder: the decoded series
//   - error: errs.ErrInvalidHeaderSize or errs.ErrInvalidHeaderFlags for a
//     damaged header, errs.ErrChecksumMismatch when the body was altered,
//     errs.ErrInvalidIndexEntrySize or errs.ErrInvalidPayload for a damaged
//     body, errs.ErrHashMismatch when stored names disagree with their IDs,
//     errs.ErrUnknownUnit when a unit is not in the registry
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg := &DecoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.registry == nil {
		r, err := dynamic.Default()
		if err != nil {
			return nil, err
		}
		cfg.registry = r
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[section.HeaderSize:]
	if sum := crc32.ChecksumIEEE(body); sum != header.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	if header.UnitCount > section.MaxUnits {
		return nil, fmt.Errorf("%w: header declares %d units", errs.ErrTooManyUnits, header.UnitCount)
	}

	engine := header.Flag.EndianEngine()
	unitCount := int(header.UnitCount)

	entries, err := section.ParseIndex(body, unitCount, header.ValueCount, engine)
	if err != nil {
		return nil, err
	}
	body = body[unitCount*section.IndexEntrySize:]

	var names []string
	if header.Flag.HasUnitNames() {
		var n int
		names, n, err = encoding.DecodeUnitNames(body, engine)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		ids := make([]uint64, len(entries))
		for i, e := range entries {
			ids[i] = e.UnitID
		}
		if err := encoding.VerifyUnitNames(names, ids, hash.ID); err != nil {
			return nil, err
		}
	}

	d := &Decoder{
		registry: cfg.registry,
		header:   header,
		entries:  entries,
		units:    make([]dynamic.Quantity, len(entries)),
		index:    make(map[uint64]int, len(entries)),
	}

	for i, e := range entries {
		q, ok := cfg.registry.ByID(e.UnitID)
		if !ok {
			if names != nil {
				return nil, fmt.Errorf("%w: series unit %q", errs.ErrUnknownUnit, names[i])
			}

			return nil, fmt.Errorf("%w: series unit id 0x%016x", errs.ErrUnknownUnit, e.UnitID)
		}
		if _, dup := d.index[e.UnitID]; dup {
			return nil, fmt.Errorf("%w: unit %s indexed twice", errs.ErrInvalidPayload, q.Unit().Descriptor().Name)
		}
		d.units[i] = q
		d.index[e.UnitID] = i
	}

	d.values, err = decodeValues(body, header.ValueCount, header.Flag, engine)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func decodeValues(payload []byte, count uint32, flag section.Flag, engine endian.EndianEngine) ([]float64, error) {
	codec, err := compress.GetCodec(flag.Compression())
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress values: %w", errs.ErrInvalidPayload, err)
	}

	enc := flag.ValueEncoding()
	if enc == format.TypeRaw && uint64(len(raw)) != uint64(count)*8 {
		return nil, fmt.Errorf("%w: value payload holds %d bytes, want %d", errs.ErrInvalidPayload, len(raw), uint64(count)*8)
	}

	dec, err := encoding.NewNumericDecoder(enc, engine)
	if err != nil {
		return nil, err
	}

	values, err := dec.Decode(raw, int(count))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return values, nil
}

// Len returns the number of values in the series.
func (d *Decoder) Len() int {
	return len(d.values)
}

// Compression returns the codec the value payload was written with.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Flag.Compression()
}

// ValueEncoding returns how values were laid out before compression.
func (d *Decoder) ValueEncoding() format.EncodingType {
	return d.header.Flag.ValueEncoding()
}

// IsBigEndian reports whether values were written big-endian.
func (d *Decoder) IsBigEndian() bool {
	return d.header.Flag.IsBigEndian()
}

// HasUnitNames reports whether the series stores unit names.
func (d *Decoder) HasUnitNames() bool {
	return d.header.Flag.HasUnitNames()
}

// Units returns a zero-valued variant of every unit in the series, in the
// order they were first appended.
func (d *Decoder) Units() []dynamic.Quantity {
	out := make([]dynamic.Quantity, len(d.units))
	copy(out, d.units)

	return out
}

// Values returns the values stored in the unit named by token, resolved
// through the decoder registry. A unit that does not occur in the series
// yields no values.
//
// Returns:
//   - []float64: a copy of the values, in append order
//   - error: errs.ErrUnknownUnit for an unknown token
func (d *Decoder) Values(token string) ([]float64, error) {
	q, err := d.registry.Lookup(token)
	if err != nil {
		return nil, err
	}

	return d.valuesOf(q), nil
}

func (d *Decoder) valuesOf(q dynamic.Quantity) []float64 {
	i, ok := d.index[dynamic.ID(q)]
	if !ok {
		return nil
	}

	e := d.entries[i]
	out := make([]float64, e.Count)
	copy(out, d.values[e.Offset:e.Offset+e.Count])

	return out
}

// All yields every value as a quantity in its stored unit, grouped by unit.
func (d *Decoder) All() iter.Seq[dynamic.Quantity] {
	return func(yield func(dynamic.Quantity) bool) {
		for i, e := range d.entries {
			q := d.units[i]
			for _, v := range d.values[e.Offset : e.Offset+e.Count] {
				if !yield(q.WithValue(v)) {
					return
				}
			}
		}
	}
}

// ValuesIn returns the values stored in unit from, expressed in unit to.
//
// Returns:
//   - []float64: the converted values, empty if from does not occur
//   - error: errs.ErrQuantityMismatch when from and to measure different
//     quantities
func (d *Decoder) ValuesIn(from, to dynamic.Quantity) ([]float64, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: nil quantity", errs.ErrUnknownUnit)
	}
	if from.Dimension() != to.Dimension() {
		_, err := dynamic.Convert(0, from, to)
		return nil, err
	}

	values := d.valuesOf(from)
	for i, v := range values {
		converted, err := dynamic.Convert(v, from, to)
		if err != nil {
			return nil, err
		}
		values[i] = converted
	}

	return values, nil
}

// ConvertAll returns every value measuring the same quantity as target,
// expressed in the unit of target, in series order. Values of other
// quantities are skipped.
func (d *Decoder) ConvertAll(target dynamic.Quantity) []float64 {
	if target == nil {
		return nil
	}

	var out []float64
	for i, e := range d.entries {
		from := d.units[i]
		if from.Dimension() != target.Dimension() {
			continue
		}

		for _, v := range d.values[e.Offset : e.Offset+e.Count] {
			converted, _ := dynamic.Convert(v, from, target)
			out = append(out, converted)
		}
	}

	return out
}
