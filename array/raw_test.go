package array

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgk/rawarray/memory"
)

func forEachAllocator(t *testing.T, fn func(t *testing.T, name string)) {
	for _, name := range memory.Names() {
		t.Run(name, func(t *testing.T) {
			fn(t, name)
		})
	}
}

func TestRawArrayInts(t *testing.T) {
	forEachAllocator(t, func(t *testing.T, name string) {
		r, err := NewRawOf[int32](2, WithAllocatorName(name))
		require.NoError(t, err)
		defer r.Destroy()

		assert.Equal(t, 4, r.ElementSize())
		for _, v := range []int32{10, 20, 30} {
			require.NoError(t, PushValue(r, v))
		}
		assert.Equal(t, 3, r.Len())
		assert.Equal(t, 4, r.Cap())
		for i, want := range []int32{10, 20, 30} {
			got, err := GetValue[int32](r, i)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		require.NoError(t, r.RemoveAt(1))
		assert.Equal(t, 2, r.Len())
		for i, want := range []int32{10, 30} {
			got, err := GetValue[int32](r, i)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})
}

func TestRawArrayFloats(t *testing.T) {
	forEachAllocator(t, func(t *testing.T, name string) {
		r, err := NewRawOf[float32](2, WithAllocatorName(name))
		require.NoError(t, err)
		defer r.Destroy()

		want := []float32{1.5, 2.5, 3.5}
		for _, v := range want {
			require.NoError(t, PushValue(r, v))
		}
		for i, v := range want {
			got, err := GetValue[float32](r, i)
			require.NoError(t, err)
			assert.Equal(t, math.Float32bits(v), math.Float32bits(got))
		}
	})
}

func TestRawArrayZeroCapacity(t *testing.T) {
	forEachAllocator(t, func(t *testing.T, name string) {
		r, err := NewRaw(0, 8, WithAllocatorName(name))
		require.NoError(t, err)
		defer r.Destroy()

		require.NoError(t, PushValue(r, int64(-42)))
		assert.Equal(t, 1, r.Cap())
		got, err := GetValue[int64](r, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), got)
	})
}

func TestRawArrayOutOfBounds(t *testing.T) {
	r, err := NewRawOf[int32](3)
	require.NoError(t, err)
	defer r.Destroy()

	out := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	require.ErrorIs(t, r.Get(5, out), ErrOutOfBounds)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, out)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 3, r.Cap())

	v, err := GetValue[int32](r, 5)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, v)

	require.NoError(t, PushValue(r, int32(1)))
	assert.ErrorIs(t, SetValue(r, 1, int32(2)), ErrOutOfBounds)
	assert.ErrorIs(t, r.RemoveAt(-1), ErrOutOfBounds)
	assert.Equal(t, []byte{1, 0, 0, 0}, leBytes(r))
}

func TestRawArrayElementSize(t *testing.T) {
	r, err := NewRaw(1, 4)
	require.NoError(t, err)
	defer r.Destroy()

	assert.ErrorIs(t, r.Push([]byte{1, 2}), ErrElementSize)
	assert.ErrorIs(t, PushValue(r, int64(1)), ErrElementSize)
	require.NoError(t, r.Push([]byte{1, 2, 3, 4}))
	assert.ErrorIs(t, r.Get(0, make([]byte, 3)), ErrElementSize)
	assert.ErrorIs(t, r.Set(0, make([]byte, 5)), ErrElementSize)
	_, err = GetValue[uint16](r, 0)
	assert.ErrorIs(t, err, ErrElementSize)
	assert.Equal(t, 1, r.Len())

	out := make([]byte, 8)
	require.NoError(t, r.Get(0, out))
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, out)
}

func TestRawArrayNewInvalid(t *testing.T) {
	_, err := NewRaw(1, 0)
	assert.ErrorIs(t, err, ErrInvalidElementSize)
	_, err = NewRaw(-1, 4)
	assert.ErrorIs(t, err, ErrNegativeCapacity)
	_, err = NewRaw(math.MaxInt/2, 8)
	assert.ErrorIs(t, err, memory.ErrOutOfMemory)
	_, err = NewRaw(1, 4, WithAllocatorName("no-such-allocator"))
	assert.Error(t, err)
}

func TestRawArrayDestroy(t *testing.T) {
	forEachAllocator(t, func(t *testing.T, name string) {
		r, err := NewRaw(2, 2, WithAllocatorName(name))
		require.NoError(t, err)
		require.NoError(t, r.Push([]byte{1, 2}))
		require.NoError(t, r.Destroy())

		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 0, r.Cap())
		assert.ErrorIs(t, r.Push([]byte{1, 2}), ErrDestroyed)
		assert.ErrorIs(t, r.Get(0, make([]byte, 2)), ErrDestroyed)
		assert.ErrorIs(t, r.Destroy(), ErrDestroyed)
	})
}

func TestRawArrayString(t *testing.T) {
	r, err := NewRaw(2, 2)
	require.NoError(t, err)
	defer r.Destroy()

	require.NoError(t, r.Push([]byte{0x01, 0x02}))
	require.NoError(t, r.Push([]byte{0xab, 0xcd}))
	require.NoError(t, r.Push([]byte{0x00, 0xff}))
	assert.Equal(t, "RawArray(size=3, capacity=4, element_size=2, data=[0102 abcd 00ff])", r.String())
}

func TestRawArrayRemoveClearsTail(t *testing.T) {
	r, err := NewRaw(3, 1)
	require.NoError(t, err)
	defer r.Destroy()

	for _, b := range []byte{1, 2, 3} {
		require.NoError(t, r.Push([]byte{b}))
	}
	require.NoError(t, r.RemoveAt(0))
	assert.Equal(t, []byte{2, 3, 0}, r.data)
	assert.Equal(t, []byte{2, 3}, r.Bytes())
}

func TestRawArrayRandomOps(t *testing.T) {
	forEachAllocator(t, func(t *testing.T, name string) {
		for seed := int64(1); seed <= 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			initial := rng.Intn(4)
			r, err := NewRawOf[uint64](initial, WithAllocatorName(name))
			require.NoError(t, err)

			var model []uint64
			for op := 0; op < 400; op++ {
				switch k := rng.Intn(10); {
				case k < 5:
					v := rng.Uint64()
					require.NoError(t, PushValue(r, v))
					model = append(model, v)
				case k < 7 && len(model) > 0:
					i := rng.Intn(len(model))
					require.NoError(t, r.RemoveAt(i))
					model = append(model[:i], model[i+1:]...)
				case k < 9 && len(model) > 0:
					i := rng.Intn(len(model))
					v := rng.Uint64()
					require.NoError(t, SetValue(r, i, v))
					model[i] = v
				default:
					_, err := GetValue[uint64](r, len(model)+rng.Intn(3))
					require.ErrorIs(t, err, ErrOutOfBounds)
				}
				require.LessOrEqual(t, r.Len(), r.Cap())
				require.Equal(t, r.Cap()*r.ElementSize(), len(r.data))
				require.True(t, validCapacity(initial, r.Cap()))
			}
			require.Equal(t, len(model), r.Len())
			for i, v := range model {
				got, err := GetValue[uint64](r, i)
				require.NoError(t, err)
				require.Equal(t, v, got)
			}
			require.NoError(t, r.Destroy())
		}
	})
}

func TestGrowOverflow(t *testing.T) {
	_, err := nextCapacity(math.MaxInt/2 + 1)
	assert.ErrorIs(t, err, memory.ErrOutOfMemory)
}

func leBytes(r *RawArray) []byte {
	b := make([]byte, 0, r.Len()*4)
	for i := 0; i < r.Len(); i++ {
		v, _ := GetValue[int32](r, i)
		b = binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	return b
}
