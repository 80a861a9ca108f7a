// Package series encodes batches of unit-tagged magnitudes into a compact
// binary form and decodes them back into dynamic quantities.
//
// Values are grouped by unit in first-appended order:
//
//	enc, _ := series.NewEncoder(series.WithCompression(format.CompressionS2))
//	_ = enc.Append(dynamic.MustFrom(measure.Celsius(21.5)))
//	_ = enc.AppendValues(dynamic.MustLookup("Fahrenheit"), 70.1, 71.3)
//	data, _ := enc.Finish()
//
//	dec, _ := series.NewDecoder(data)
//	celsius := dec.ConvertAll(dynamic.MustLookup("Celsius"))
package series

import (
	"fmt"
	"hash/crc32"

	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/collision"
	"github.com/arloliu/measure/internal/encoding"
	"github.com/arloliu/measure/internal/hash"
	"github.com/arloliu/measure/internal/options"
	"github.com/arloliu/measure/internal/pool"
	"github.com/arloliu/measure/section"
)

// Encoder accumulates values and produces a series. It is not safe for
// concurrent use.
type Encoder struct {
	*EncoderConfig
	tracker    *collision.Tracker
	values     [][]float64 // values[i] belongs to the i-th tracked unit
	valueCount uint64
	finished   bool
}

// NewEncoder creates an encoder.
//
// Returns:
//   - *Encoder: the encoder
//   - error: the first option error, such as errs.ErrUnsupportedCompression
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.setCodec(); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: cfg,
		tracker:       collision.NewTracker(),
	}, nil
}

// Append adds the value held by q.
func (e *Encoder) Append(q dynamic.Quantity) error {
	if q == nil {
		return fmt.Errorf("%w: nil quantity", errs.ErrUnknownUnit)
	}

	return e.AppendValues(q, q.Value())
}

// AppendValues adds values measured in the unit of q. The magnitude held by
// q itself is ignored.
//
// Returns:
//   - error: errs.ErrEncoderFinished after Finish, errs.ErrTooManyUnits or
//     errs.ErrTooManyValues when the series would exceed its limits,
//     errs.ErrHashCollision when two unit names share an ID
func (e *Encoder) AppendValues(q dynamic.Quantity, values ...float64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if q == nil {
		return fmt.Errorf("%w: nil quantity", errs.ErrUnknownUnit)
	}
	if len(values) == 0 {
		return nil
	}

	if e.valueCount+uint64(len(values)) > section.MaxValues {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyValues, uint64(section.MaxValues))
	}

	name := q.Unit().Descriptor().Name
	id := hash.ID(name)
	if _, ok := e.tracker.Index(id); !ok && e.tracker.Count() >= section.MaxUnits {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyUnits, section.MaxUnits)
	}

	idx, added, err := e.tracker.Track(name, id)
	if err != nil {
		return err
	}
	if added {
		e.values = append(e.values, nil)
	}

	e.values[idx] = append(e.values[idx], values...)
	e.valueCount += uint64(len(values))

	return nil
}

// UnitCount returns the number of distinct units appended so far.
func (e *Encoder) UnitCount() int {
	return e.tracker.Count()
}

// Len returns the number of values appended so far.
func (e *Encoder) Len() int {
	return int(e.valueCount) //nolint:gosec // bounded by section.MaxValues
}

// Finish encodes the series. The encoder cannot be used afterwards.
//
// Returns:
//   - []byte: the encoded series
//   - error: errs.ErrNoValuesAdded when nothing was appended,
//     errs.ErrEncoderFinished when called twice, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	if e.valueCount == 0 {
		return nil, errs.ErrNoValuesAdded
	}

	header := *e.header
	header.UnitCount = uint32(e.tracker.Count()) //nolint:gosec // bounded by section.MaxUnits
	header.ValueCount = uint32(e.valueCount)     //nolint:gosec // bounded by section.MaxValues

	valEncoder, err := encoding.NewNumericEncoder(header.Flag.ValueEncoding(), e.engine)
	if err != nil {
		return nil, err
	}
	defer valEncoder.Finish()
	for _, values := range e.values {
		valEncoder.WriteSlice(values)
	}

	valPayload, err := e.codec.Compress(valEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress value payload: %w", err)
	}

	var namesPayload []byte
	if header.Flag.HasUnitNames() {
		namesPayload, err = encoding.EncodeUnitNames(e.tracker.Names(), e.engine)
		if err != nil {
			return nil, fmt.Errorf("failed to encode unit names: %w", err)
		}
	}

	buf := pool.GetSeriesBuffer()
	defer pool.PutSeriesBuffer(buf)

	buf.ExtendOrGrow(section.HeaderSize)

	var offset uint32
	for i, id := range e.tracker.IDs() {
		count := uint32(len(e.values[i])) //nolint:gosec // bounded by section.MaxValues
		entry := section.IndexEntry{UnitID: id, Count: count, Offset: offset}
		entry.PutBytes(e.engine, buf.ExtendOrGrow(section.IndexEntrySize))
		offset += count
	}

	_, _ = buf.Write(namesPayload)
	_, _ = buf.Write(valPayload)

	data := buf.Bytes()
	header.Checksum = crc32.ChecksumIEEE(data[section.HeaderSize:])
	header.PutBytes(data[:section.HeaderSize])

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
