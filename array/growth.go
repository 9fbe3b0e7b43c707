package array

import (
	"fmt"
	"math"

	"github.com/imgk/rawarray/memory"
)

// nextCapacity doubles c, with a floor of one slot so that an empty
// array can grow.
func nextCapacity(c int) (int, error) {
	if c == 0 {
		return 1, nil
	}
	if c > math.MaxInt/2 {
		return c, fmt.Errorf("%w: cannot grow capacity %d", memory.ErrOutOfMemory, c)
	}
	return 2 * c, nil
}
