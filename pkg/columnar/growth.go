package columnar

import (
	"math/bits"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// MaxCapacity is the largest row capacity a table will ever request.
// It is the largest power of two that leaves headroom in an int.
const MaxCapacity = 1 << (bits.UintSize - 2)

// NextCapacity is the growth policy shared by every column of a table.
// It returns the smallest power of two that is >= required, or current when
// current already holds required rows. Capacity never shrinks.
func NextCapacity(current, required int) (int, error) {
	if required <= current || required <= 0 {
		return current, nil
	}
	if required > MaxCapacity {
		return current, capacityExceeded(required)
	}
	return 1 << bits.Len(uint(required-1)), nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func capacityExceeded(requested int) error {
	return errors.Newf(errors.ErrorTypeResource, "capacity %d exceeds limit %d", requested, MaxCapacity).
		WithDetail("requested", requested).
		WithDetail("max", MaxCapacity)
}
