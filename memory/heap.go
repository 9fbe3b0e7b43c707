package memory

func init() {
	Register("heap", func() Allocator { return new(HeapAllocator) })
}

// HeapAllocator allocates from the Go heap. Free is a no-op and the
// garbage collector reclaims released regions.
type HeapAllocator struct{}

// Malloc is ...
func (HeapAllocator) Malloc(size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return make([]byte, size), nil
}

// Realloc is ...
func (h HeapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if err := CheckSize(size, 1); err != nil {
		return b, err
	}
	if size <= len(b) {
		return b[:size:size], nil
	}
	nb, err := h.Malloc(size)
	if err != nil {
		return b, err
	}
	copy(nb, b)
	return nb, nil
}

// Free is ...
func (HeapAllocator) Free(b []byte) error {
	return nil
}

// Close is ...
func (HeapAllocator) Close() error {
	return nil
}

var _ Allocator = HeapAllocator{}
