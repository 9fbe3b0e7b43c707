package memory

// Block is a typed region of n elements obtained from Alloc.
// Its length is its capacity; callers track how much of it is in use.
type Block[T any] struct {
	data []T
	free func()
}

// Slice returns the elements of b. The slice aliases b and must not be
// used after Free.
func (b Block[T]) Slice() []T {
	return b.data
}

// Len is ...
func (b Block[T]) Len() int {
	return len(b.data)
}
