package memory

import (
	"sync"
	"unsafe"
)

func init() {
	Register("pool", func() Allocator { return new(PoolAllocator) })
}

const poolSize = 16 * 1024

var buffer = &sync.Pool{
	New: func() interface{} {
		b := make([]byte, poolSize)
		return &b[0]
	},
}

// PoolAllocator serves requests up to 16 KiB from a shared sync.Pool and
// falls back to the Go heap for anything larger.
type PoolAllocator struct{}

// Malloc is ...
func (PoolAllocator) Malloc(size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	if size > poolSize {
		return make([]byte, size), nil
	}
	ptr := buffer.Get().(*byte)
	b := unsafe.Slice(ptr, poolSize)[:size]
	clear(b)
	return b, nil
}

// Realloc grows in place while the request still fits the pooled buffer.
func (p PoolAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return b, err
	}
	if cap(b) == poolSize && size <= poolSize && size > 0 {
		nb := b[:size]
		if size > len(b) {
			clear(nb[len(b):])
		}
		return nb, nil
	}
	nb, err := p.Malloc(size)
	if err != nil {
		return b, err
	}
	copy(nb, b)
	p.Free(b)
	return nb, nil
}

// Free is ...
func (PoolAllocator) Free(b []byte) error {
	if cap(b) == poolSize {
		buffer.Put(&b[:1][0])
	}
	return nil
}

// Close is ...
func (PoolAllocator) Close() error {
	return nil
}

var _ Allocator = PoolAllocator{}
