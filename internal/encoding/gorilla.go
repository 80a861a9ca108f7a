package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/internal/pool"
)

// GorillaEncoder compresses float64 values with the Gorilla XOR scheme.
//
// The first value is stored as its 64 raw bits. Every following value is
// XORed with its predecessor:
//   - an unchanged value costs one 0 bit
//   - a changed value writes a 1 bit, then either a 0 bit and the meaningful
//     bits inside the previous block, or a 1 bit, 5 bits of leading zeros,
//     6 bits of block size minus one and the meaningful bits
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf.
type GorillaEncoder struct {
	bitBuf        uint64 // pending bits, right-aligned
	prevValue     uint64
	bitCount      int // valid bits in bitBuf
	count         int
	prevLeading   int
	prevTrailing  int
	prevBlockSize int // 0 until the first block is written
	first         bool

	buf *pool.ByteBuffer
}

// NewGorillaEncoder creates an encoder backed by a pooled buffer.
func NewGorillaEncoder() *GorillaEncoder {
	return &GorillaEncoder{
		buf:   pool.GetSeriesBuffer(),
		first: true,
	}
}

// WriteSlice encodes values after any previously written ones, so
// consecutive slices form a single stream.
//
// Panics if Finish has been called.
func (e *GorillaEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("gorilla encoder already finished")
	}

	for _, v := range values {
		e.write(math.Float64bits(v))
	}
}

// Bytes flushes pending bits and returns the encoded stream. The last byte
// is zero-padded. The slice is only valid until the next write or Finish.
func (e *GorillaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("gorilla encoder already finished")
	}
	e.flushBits()

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *GorillaEncoder) Len() int {
	return e.count
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *GorillaEncoder) Finish() {
	if e.buf != nil {
		pool.PutSeriesBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *GorillaEncoder) write(valBits uint64) {
	e.count++

	if e.first {
		e.first = false
		e.prevValue = valBits
		e.writeBits(valBits, 64)

		return
	}

	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	e.writeBits(1, 1)

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)

	// The leading zero count has only 5 bits, so widen the block instead.
	if leading > 31 {
		trailing = max(trailing-(leading-31), 0)
		leading = 31
	}

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBits(0, 1)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.writeBits(1, 1)
	e.writeBits(uint64(leading), 5)     //nolint:gosec // leading is in [0, 31]
	e.writeBits(uint64(blockSize-1), 6) //nolint:gosec // blockSize is in [1, 64]
	e.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// writeBits appends the low numBits bits of value, 1 <= numBits <= 64.
func (e *GorillaEncoder) writeBits(value uint64, numBits int) {
	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - e.bitCount
	if numBits <= available {
		e.bitBuf = (e.bitBuf << numBits) | value
		e.bitCount += numBits
		if e.bitCount == 64 {
			e.flushBits()
		}

		return
	}

	// Split across the word boundary.
	rest := numBits - available
	e.bitBuf = (e.bitBuf << available) | (value >> rest)
	e.bitCount = 64
	e.flushBits()

	e.bitBuf = value & ((1 << rest) - 1)
	e.bitCount = rest
}

// flushBits moves the pending bits into the byte buffer, most significant
// bit first.
func (e *GorillaEncoder) flushBits() {
	if e.bitCount == 0 {
		return
	}

	numBytes := (e.bitCount + 7) / 8
	aligned := e.bitBuf << (64 - e.bitCount)
	dst := e.buf.ExtendOrGrow(numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(dst, aligned)
	} else {
		for i := range numBytes {
			dst[i] = byte(aligned >> (56 - i*8))
		}
	}

	e.bitBuf = 0
	e.bitCount = 0
}

// GorillaDecoder reads streams written by GorillaEncoder. It is stateless.
type GorillaDecoder struct{}

// NewGorillaDecoder creates a Gorilla decoder.
func NewGorillaDecoder() GorillaDecoder {
	return GorillaDecoder{}
}

// Decode returns the first count values of the stream in data.
//
// Returns:
//   - []float64: the decoded values
//   - error: errs.ErrInvalidNumericValuesCount when the stream ends or is
//     malformed before count values were read
func (d GorillaDecoder) Decode(data []byte, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", errs.ErrInvalidNumericValuesCount, count)
	}

	values := make([]float64, 0, count)
	for v := range d.All(data, count) {
		values = append(values, v)
	}

	if len(values) != count {
		return nil, fmt.Errorf("%w: gorilla stream of %d bytes holds %d of %d values",
			errs.ErrInvalidNumericValuesCount, len(data), len(values), count)
	}

	return values, nil
}

// All yields up to count values from data. It stops early when the stream
// is truncated or malformed.
func (GorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) == 0 || count <= 0 {
			return
		}

		br := &bitReader{data: data}

		prev, ok := br.readBits(64)
		if !ok || !yield(math.Float64frombits(prev)) {
			return
		}

		var block gorillaBlockState
		for range count - 1 {
			changed, ok := br.readBit()
			if !ok {
				return
			}

			if changed == 1 {
				trailing, blockSize, ok := block.next(br)
				if !ok {
					return
				}

				meaningful, ok := br.readBits(blockSize)
				if !ok {
					return
				}
				prev ^= meaningful << uint(trailing) //nolint:gosec // trailing is in [0, 63]
			}

			if !yield(math.Float64frombits(prev)) {
				return
			}
		}
	}
}

// gorillaBlockState remembers the last block definition so a reused block
// can be decoded without its header.
type gorillaBlockState struct {
	trailing  int
	blockSize int
	valid     bool
}

// next reads the block header of a changed value.
func (s *gorillaBlockState) next(br *bitReader) (trailing int, blockSize int, ok bool) {
	fresh, ok := br.readBit()
	if !ok {
		return 0, 0, false
	}

	if fresh == 0 {
		return s.trailing, s.blockSize, s.valid
	}

	leading, ok := br.readBits(5)
	if !ok {
		return 0, 0, false
	}
	size, ok := br.readBits(6)
	if !ok {
		return 0, 0, false
	}

	blockSize = int(size) + 1                //nolint:gosec // size is in [0, 63]
	trailing = 64 - int(leading) - blockSize //nolint:gosec // leading is in [0, 31]
	if trailing < 0 {
		return 0, 0, false
	}

	s.trailing = trailing
	s.blockSize = blockSize
	s.valid = true

	return trailing, blockSize, true
}

// bitReader reads a byte slice most significant bit first.
type bitReader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64 // left-aligned
	bitCount int
}

func (br *bitReader) readBit() (uint64, bool) {
	if br.bitCount == 0 && !br.fillBuffer() {
		return 0, false
	}

	bit := br.bitBuf >> 63
	br.bitBuf <<= 1
	br.bitCount--

	return bit, true
}

// readBits reads numBits bits, 1 <= numBits <= 64, right-aligned.
func (br *bitReader) readBits(numBits int) (uint64, bool) {
	if numBits <= br.bitCount {
		result := br.bitBuf >> (64 - numBits)
		br.bitBuf <<= numBits
		br.bitCount -= numBits

		return result, true
	}

	var result uint64
	for numBits > 0 {
		if br.bitCount == 0 && !br.fillBuffer() {
			return 0, false
		}

		n := min(numBits, br.bitCount)
		result = (result << n) | (br.bitBuf >> (64 - n))
		br.bitBuf <<= n
		br.bitCount -= n
		numBits -= n
	}

	return result, true
}

// fillBuffer loads up to 8 more bytes. It reports false at the end of data.
func (br *bitReader) fillBuffer() bool {
	remaining := len(br.data) - br.bytePos
	if remaining <= 0 {
		return false
	}

	if remaining >= 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos:])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	br.bitBuf = 0
	for _, b := range br.data[br.bytePos:] {
		br.bitBuf = (br.bitBuf << 8) | uint64(b)
	}
	br.bitBuf <<= (8 - remaining) * 8
	br.bytePos = len(br.data)
	br.bitCount = remaining * 8

	return true
}
