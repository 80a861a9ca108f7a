package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("kelvin"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("kelvin"), bb.Bytes())

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 8, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.B = append(bb.B, make([]byte, 16)...)
		bb.Grow(1)
		assert.Equal(t, 16+SeriesBufferDefaultSize, cap(bb.B))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * SeriesBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})

	t.Run("grows at least by request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * SeriesBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B), 3*SeriesBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte("mole"))
		bb.Grow(100)
		assert.Equal(t, []byte("mole"), bb.Bytes())
	})
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte{1, 2})

	tail := bb.ExtendOrGrow(8)
	require.Len(t, tail, 8)
	tail[0] = 9

	assert.Equal(t, 10, bb.Len())
	assert.Equal(t, byte(9), bb.B[2])
	assert.Equal(t, []byte{1, 2}, bb.B[:2])
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffers are reset")

	p.Put(nil)

	big := NewByteBuffer(128)
	p.Put(big) // dropped, above threshold
}

func TestSeriesBuffer_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bb := GetSeriesBuffer()
			defer PutSeriesBuffer(bb)

			_, _ = bb.Write([]byte{byte(i)})
			assert.Equal(t, 1, bb.Len())
		}(i)
	}
	wg.Wait()
}
