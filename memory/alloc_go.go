//go:build !malloc_cgo
// +build !malloc_cgo

package memory

// Alloc returns a zeroed Block of n elements on the Go heap.
func Alloc[T any](n int) (Block[T], error) {
	if err := CheckSize(n, sizeOf[T]()); err != nil {
		return Block[T]{}, err
	}
	if n == 0 {
		return Block[T]{}, nil
	}
	return Block[T]{data: make([]T, n)}, nil
}

// Free is ...
func Free[T any](_ Block[T]) {
	return
}
