package array

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfBounds is matched by every *IndexError.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrElementSize is returned when an element does not match the array's element size.
	ErrElementSize = errors.New("element size mismatch")
	// ErrInvalidElementSize is returned for a non-positive element size.
	ErrInvalidElementSize = errors.New("invalid element size")
	// ErrNegativeCapacity is returned for a negative initial capacity.
	ErrNegativeCapacity = errors.New("negative capacity")
	// ErrDestroyed is returned by any operation on a destroyed array.
	ErrDestroyed = errors.New("array destroyed")
)

// IndexError records an access outside [0, Length).
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return e.Op + ": index " + strconv.Itoa(e.Index) + " out of bounds for length " + strconv.Itoa(e.Length)
}

// Is is ...
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfBounds
}
