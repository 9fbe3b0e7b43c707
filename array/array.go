// Package array implements growable contiguous arrays.
//
// Array[T] is the typed container. RawArray is its type-erased counterpart:
// it stores elements of a fixed byte size in a manually managed region and
// copies them in and out byte by byte.
//
// Neither type is safe for concurrent use. Growth moves storage, so slices
// obtained from an array before a Push must not be reused after it.
package array

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/imgk/rawarray/memory"
)

// Array is a growable array of T.
type Array[T any] struct {
	buf       memory.Block[T]
	n         int
	destroyed bool

	lg *zap.Logger
}

// New returns an Array with room for capacity elements.
func New[T any](capacity int, opts ...Option) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("new array: %w: %d", ErrNegativeCapacity, capacity)
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	buf, err := memory.Alloc[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("new array: %w", err)
	}
	return &Array[T]{buf: buf, lg: o.logger}, nil
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int {
	return a.n
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.buf.Len()
}

// Push appends v, growing the storage when it is full.
func (a *Array[T]) Push(v T) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if a.n == a.buf.Len() {
		if err := a.grow(); err != nil {
			return err
		}
	}
	a.buf.Slice()[a.n] = v
	a.n++
	return nil
}

// Get returns the element at i.
func (a *Array[T]) Get(i int) (T, error) {
	var t T
	if err := a.check("get", i); err != nil {
		return t, err
	}
	return a.buf.Slice()[i], nil
}

// Set overwrites the element at i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check("set", i); err != nil {
		return err
	}
	a.buf.Slice()[i] = v
	return nil
}

// RemoveAt deletes the element at i and shifts the following elements
// down by one.
func (a *Array[T]) RemoveAt(i int) error {
	if err := a.check("remove", i); err != nil {
		return err
	}
	s := a.buf.Slice()
	copy(s[i:a.n-1], s[i+1:a.n])
	var zero T
	s[a.n-1] = zero
	a.n--
	return nil
}

// Values returns a copy of the stored elements.
func (a *Array[T]) Values() []T {
	if a.n == 0 {
		return []T{}
	}
	return slices.Clone(a.buf.Slice()[:a.n])
}

// Destroy releases the storage. The array must not be used afterwards.
func (a *Array[T]) Destroy() error {
	if a.destroyed {
		return ErrDestroyed
	}
	memory.Free(a.buf)
	a.buf = memory.Block[T]{}
	a.n = 0
	a.destroyed = true
	return nil
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("Array(size=%d, capacity=%d, data=%v)", a.n, a.Cap(), a.Values())
}

func (a *Array[T]) check(op string, i int) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= a.n {
		a.lg.Warn("index out of bounds", zap.String("op", op), zap.Int("index", i), zap.Int("length", a.n))
		return &IndexError{Op: op, Index: i, Length: a.n}
	}
	return nil
}

func (a *Array[T]) grow() error {
	old := a.buf.Len()
	c, err := nextCapacity(old)
	if err != nil {
		return err
	}
	buf, err := memory.Alloc[T](c)
	if err != nil {
		a.lg.Error("grow array", zap.Int("capacity", c), zap.Error(err))
		return fmt.Errorf("grow array: %w", err)
	}
	copy(buf.Slice(), a.buf.Slice()[:a.n])
	memory.Free(a.buf)
	a.buf = buf
	a.lg.Debug("array resized", zap.Int("from", old), zap.Int("to", c))
	return nil
}
