package array

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/imgk/rawarray/memory"
)

type options struct {
	logger    *zap.Logger
	allocator memory.Allocator
}

// Option configures an Array or RawArray.
type Option func(*options) error

// WithLogger sets the logger used for growth and bounds diagnostics.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) error {
		if lg != nil {
			o.logger = lg
		}
		return nil
	}
}

// WithAllocator sets the allocator backing a RawArray. The RawArray takes
// ownership and closes it on Destroy. Array[T] ignores it.
func WithAllocator(a memory.Allocator) Option {
	return func(o *options) error {
		if a != nil {
			o.allocator = a
		}
		return nil
	}
}

// WithAllocatorName selects a registered allocator by name.
func WithAllocatorName(name string) Option {
	return func(o *options) error {
		a, ok := memory.Get(name)
		if !ok {
			return fmt.Errorf("unknown allocator: %s", name)
		}
		o.allocator = a
		return nil
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			if o.allocator != nil {
				o.allocator.Close()
			}
			return o, err
		}
	}
	if o.allocator == nil {
		o.allocator = memory.HeapAllocator{}
	}
	return o, nil
}
