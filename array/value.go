package array

import (
	"fmt"
	"unsafe"

	"github.com/imgk/rawarray/x"
)

// NewRawOf returns a RawArray whose element size is the size of T.
func NewRawOf[T any](capacity int, opts ...Option) (*RawArray, error) {
	var t T
	return NewRaw(capacity, int(unsafe.Sizeof(t)), opts...)
}

// PushValue appends the bytes of v to r.
func PushValue[T any](r *RawArray, v T) error {
	if err := checkValue[T](r); err != nil {
		return err
	}
	return r.Push(x.BytesOf(&v))
}

// GetValue reads the element at i as a T.
func GetValue[T any](r *RawArray, i int) (T, error) {
	var t T
	if err := checkValue[T](r); err != nil {
		return t, err
	}
	err := r.Get(i, x.BytesOf(&t))
	return t, err
}

// SetValue overwrites the element at i with the bytes of v.
func SetValue[T any](r *RawArray, i int, v T) error {
	if err := checkValue[T](r); err != nil {
		return err
	}
	return r.Set(i, x.BytesOf(&v))
}

func checkValue[T any](r *RawArray) error {
	var t T
	if n := int(unsafe.Sizeof(t)); n != r.size {
		return fmt.Errorf("%w: %T is %d bytes, want %d", ErrElementSize, t, n, r.size)
	}
	return nil
}
