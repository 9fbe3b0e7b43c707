package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/imgk/rawarray/array"
)

const config = `{"initial_capacity":2,"allocator":"manual"}`

func main() {
	lg, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lg.Sync()

	if err := run(lg); err != nil {
		lg.Error("run scenario", zap.Error(err))
		lg.Sync()
		os.Exit(1)
	}
}

func run(lg *zap.Logger) error {
	c, err := array.LoadConfig([]byte(config))
	if err != nil {
		return err
	}
	opts := append(c.Options(), array.WithLogger(lg))

	ints, err := array.NewRawOf[int32](c.InitialCapacity, opts...)
	if err != nil {
		return err
	}
	defer ints.Destroy()
	for _, v := range []int32{10, 20, 30} {
		if err := array.PushValue(ints, v); err != nil {
			return err
		}
	}
	printInts(ints)

	floats, err := array.New[float32](c.InitialCapacity, array.WithLogger(lg))
	if err != nil {
		return err
	}
	defer floats.Destroy()
	for _, v := range []float32{1.5, 2.5, 3.5} {
		if err := floats.Push(v); err != nil {
			return err
		}
	}
	for i, v := range floats.Values() {
		fmt.Printf("floatArray[%d] = %.2f\n", i, v)
	}

	fmt.Println("Removing intArray[1]...")
	if err := ints.RemoveAt(1); err != nil {
		return err
	}
	printInts(ints)

	arr, err := array.New[int](c.InitialCapacity, array.WithLogger(lg))
	if err != nil {
		return err
	}
	defer arr.Destroy()
	for _, v := range []int{10, 20, 30} {
		arr.Push(v)
	}
	fmt.Println(arr)
	if v, err := arr.Get(1); err == nil {
		fmt.Println("Element at 1:", v)
	}
	arr.Set(1, 99)
	fmt.Println("After set at 1:", arr)
	arr.RemoveAt(0)
	fmt.Println("After remove at 0:", arr)
	arr.Push(40)
	arr.Push(50)
	fmt.Println("Final:", arr)

	if _, err := arr.Get(5); err != nil {
		fmt.Println("Get(5):", err)
	}
	return nil
}

func printInts(r *array.RawArray) {
	for i := 0; i < r.Len(); i++ {
		v, err := array.GetValue[int32](r, i)
		if err != nil {
			return
		}
		fmt.Printf("intArray[%d] = %d\n", i, v)
	}
}
