package array

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/imgk/rawarray/memory"
	"github.com/imgk/rawarray/x"
)

// RawArray stores elements of a fixed byte size in a region obtained from
// a memory.Allocator. len(data) is always capacity*size.
type RawArray struct {
	data      []byte
	n         int
	capacity  int
	size      int
	alloc     memory.Allocator
	destroyed bool

	lg *zap.Logger
}

// NewRaw returns a RawArray with room for capacity elements of size bytes.
// The storage comes from the heap allocator unless WithAllocator or
// WithAllocatorName says otherwise.
func NewRaw(capacity, size int, opts ...Option) (*RawArray, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new raw array: %w: %d", ErrInvalidElementSize, size)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("new raw array: %w: %d", ErrNegativeCapacity, capacity)
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := memory.CheckSize(capacity, uintptr(size)); err != nil {
		o.allocator.Close()
		return nil, fmt.Errorf("new raw array: %w", err)
	}
	data, err := o.allocator.Malloc(capacity * size)
	if err != nil {
		o.allocator.Close()
		return nil, fmt.Errorf("new raw array: %w", err)
	}
	return &RawArray{
		data:     data,
		capacity: capacity,
		size:     size,
		alloc:    o.allocator,
		lg:       o.logger,
	}, nil
}

// Len returns the number of stored elements.
func (r *RawArray) Len() int {
	return r.n
}

// Cap returns the number of allocated slots.
func (r *RawArray) Cap() int {
	return r.capacity
}

// ElementSize returns the byte size of one element.
func (r *RawArray) ElementSize() int {
	return r.size
}

// Push appends a copy of elem, which must be exactly ElementSize bytes.
func (r *RawArray) Push(elem []byte) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if len(elem) != r.size {
		return fmt.Errorf("push: %w: got %d bytes, want %d", ErrElementSize, len(elem), r.size)
	}
	if r.n == r.capacity {
		if err := r.grow(); err != nil {
			return err
		}
	}
	copy(r.slot(r.n), elem)
	r.n++
	return nil
}

// Get copies the element at i into out, which must hold at least
// ElementSize bytes.
func (r *RawArray) Get(i int, out []byte) error {
	if err := r.check("get", i); err != nil {
		return err
	}
	if len(out) < r.size {
		return fmt.Errorf("get: %w: got %d bytes, want %d", ErrElementSize, len(out), r.size)
	}
	copy(out, r.slot(i))
	return nil
}

// Set overwrites the element at i with elem.
func (r *RawArray) Set(i int, elem []byte) error {
	if err := r.check("set", i); err != nil {
		return err
	}
	if len(elem) != r.size {
		return fmt.Errorf("set: %w: got %d bytes, want %d", ErrElementSize, len(elem), r.size)
	}
	copy(r.slot(i), elem)
	return nil
}

// RemoveAt deletes the element at i and shifts the following elements
// down by one slot. The vacated slot is zeroed.
func (r *RawArray) RemoveAt(i int) error {
	if err := r.check("remove", i); err != nil {
		return err
	}
	copy(r.data[i*r.size:(r.n-1)*r.size], r.data[(i+1)*r.size:r.n*r.size])
	clear(r.slot(r.n - 1))
	r.n--
	return nil
}

// Bytes returns a copy of the occupied slots.
func (r *RawArray) Bytes() []byte {
	if r.n == 0 {
		return []byte{}
	}
	return slices.Clone(r.data[:r.n*r.size])
}

// Destroy frees the storage and closes the allocator.
func (r *RawArray) Destroy() error {
	if r.destroyed {
		return ErrDestroyed
	}
	err := r.alloc.Free(r.data)
	if er := r.alloc.Close(); er != nil {
		err = errors.Join(err, er)
	}
	r.data = nil
	r.n = 0
	r.capacity = 0
	r.destroyed = true
	if err != nil {
		return fmt.Errorf("destroy raw array: %w", err)
	}
	return nil
}

func (r *RawArray) String() string {
	b := make([]byte, 0, 64+r.n*(2*r.size+1))
	b = append(b, "RawArray(size="...)
	b = strconv.AppendInt(b, int64(r.n), 10)
	b = append(b, ", capacity="...)
	b = strconv.AppendInt(b, int64(r.capacity), 10)
	b = append(b, ", element_size="...)
	b = strconv.AppendInt(b, int64(r.size), 10)
	b = append(b, ", data=["...)
	for i := 0; i < r.n; i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = hex.AppendEncode(b, r.slot(i))
	}
	b = append(b, "])"...)
	return x.ByteSliceToString(b)
}

func (r *RawArray) slot(i int) []byte {
	return r.data[i*r.size : (i+1)*r.size : (i+1)*r.size]
}

func (r *RawArray) check(op string, i int) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= r.n {
		r.lg.Warn("index out of bounds", zap.String("op", op), zap.Int("index", i), zap.Int("length", r.n))
		return &IndexError{Op: op, Index: i, Length: r.n}
	}
	return nil
}

func (r *RawArray) grow() error {
	c, err := nextCapacity(r.capacity)
	if err != nil {
		return err
	}
	if err := memory.CheckSize(c, uintptr(r.size)); err != nil {
		return fmt.Errorf("grow raw array: %w", err)
	}
	data, err := r.alloc.Realloc(r.data, c*r.size)
	if err != nil {
		r.lg.Error("grow raw array", zap.Int("capacity", c), zap.Error(err))
		return fmt.Errorf("grow raw array: %w", err)
	}
	r.lg.Debug("array resized", zap.Int("from", r.capacity), zap.Int("to", c))
	r.data, r.capacity = data, c
	return nil
}
