package memory

import (
	"fmt"

	mm "modernc.org/memory"
)

func init() {
	Register("manual", func() Allocator { return new(ManualAllocator) })
}

// ManualAllocator hands out mmap-backed regions that live outside the Go
// heap. Every region must be released with Free, and Close unmaps whatever
// is left. It is not safe for concurrent use.
type ManualAllocator struct {
	a mm.Allocator
}

// Malloc is ...
func (m *ManualAllocator) Malloc(size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	b, err := m.a.Malloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	return b[:size:size], nil
}

// Realloc is ...
func (m *ManualAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return b, err
	}
	if size == 0 {
		return nil, m.Free(b)
	}
	nb, err := m.a.Realloc(b, size)
	if err != nil {
		return b, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	return nb[:size:size], nil
}

// Free is ...
func (m *ManualAllocator) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	return m.a.Free(b)
}

// Close is ...
func (m *ManualAllocator) Close() error {
	return m.a.Close()
}

var _ Allocator = (*ManualAllocator)(nil)
