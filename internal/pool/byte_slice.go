// Package pool holds reusable scratch buffers.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			return make([]byte, 0, defaultCapacity)
		},
	},
}

func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

func (p *ByteSlicePool) Get() []byte {
	//nolint:forcetypeassert
	return p.pool.Get().([]byte)[:0]
}

func (p *ByteSlicePool) Put(b []byte) {
	p.pool.Put(b[:0]) //nolint:staticcheck
}
