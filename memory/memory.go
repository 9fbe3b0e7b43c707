package memory

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/slices"
)

var (
	// ErrOutOfMemory is returned when an allocation request cannot be satisfied.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrInvalidSize is returned for negative allocation sizes.
	ErrInvalidSize = errors.New("invalid allocation size")
)

// Allocator manages raw byte regions with explicit ownership.
// A region returned by Malloc or Realloc belongs to the caller until it is
// handed back to Free or Realloc on the same Allocator.
type Allocator interface {
	// Malloc returns a region of exactly size bytes.
	Malloc(size int) ([]byte, error)
	// Realloc resizes b to size bytes, keeping min(len(b), size) leading bytes.
	// On error b is still valid and still owned by the caller.
	Realloc(b []byte, size int) ([]byte, error)
	// Free releases b.
	Free(b []byte) error
	// Close releases everything the Allocator still holds.
	Close() error
}

// maxBytes caps a single request; anything larger cannot be addressed.
const maxBytes = math.MaxInt

// CheckSize reports whether n elements of size bytes can be allocated.
func CheckSize(n int, size uintptr) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if size != 0 && uintptr(n) > uintptr(maxBytes)/size {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, size)
	}
	return nil
}

func sizeOf[T any]() uintptr {
	var t T
	return unsafe.Sizeof(t)
}

// Factory creates a fresh Allocator.
type Factory func() Allocator

var factories = make(map[string]Factory)

// Register makes an Allocator available by name.
func Register(name string, f Factory) {
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("allocator already registered: %s", name))
	}
	factories[name] = f
}

// Get returns a new Allocator registered under name.
func Get(name string) (Allocator, bool) {
	f, ok := factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the registered allocator names in order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
