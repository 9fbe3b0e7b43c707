//go:build malloc_cgo
// +build malloc_cgo

package memory

import (
	"fmt"

	memorygo "github.com/imgk/memory-go"
)

// Alloc returns a Block of n elements outside the Go heap. T must not
// contain Go pointers.
func Alloc[T any](n int) (Block[T], error) {
	if err := CheckSize(n, sizeOf[T]()); err != nil {
		return Block[T]{}, err
	}
	if n == 0 {
		return Block[T]{}, nil
	}
	ptr, b, err := memorygo.Alloc[T](n)
	if err != nil {
		return Block[T]{}, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	clear(b[:n])
	return Block[T]{
		data: b[:n:n],
		free: func() { memorygo.Free(ptr) },
	}, nil
}

// Free is ...
func Free[T any](b Block[T]) {
	if b.free != nil {
		b.free()
	}
}
