// Package pool provides reusable byte buffers for the series codec.
package pool

import "sync"

const (
	SeriesBufferDefaultSize  = 1024 * 4   // 4KiB
	SeriesBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is an append-only byte slice that grows in large steps.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates an empty buffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures room for requiredBytes more bytes.
//
// Small buffers grow by SeriesBufferDefaultSize, larger ones by a quarter of
// their capacity, and always by at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := SeriesBufferDefaultSize
	if cap(bb.B) > 4*SeriesBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, requiredBytes)

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow lengthens the buffer by n bytes, growing it if necessary, and
// returns the new tail for the caller to fill.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start:]
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool recycles buffers, dropping those that grew beyond
// maxThreshold bytes.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var seriesPool = NewByteBufferPool(SeriesBufferDefaultSize, SeriesBufferMaxThreshold)

// GetSeriesBuffer retrieves a buffer from the shared series pool.
func GetSeriesBuffer() *ByteBuffer {
	return seriesPool.Get()
}

// PutSeriesBuffer returns a buffer to the shared series pool.
func PutSeriesBuffer(bb *ByteBuffer) {
	seriesPool.Put(bb)
}
