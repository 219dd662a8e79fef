package conv

import (
	"fmt"
	"math"
)

// UintptrToInt64 converts uintptr to int64 safely.
func UintptrToInt64(v uintptr) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// MulInt64 multiplies two non-negative int64 values, failing on overflow.
func MulInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d has a negative operand", a, b)
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds int64", a, b)
	}
	return a * b, nil
}

// ByteSize returns count * width as a byte count.
func ByteSize(count int, width uintptr) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("integer overflow: negative count %d", count)
	}
	w, err := UintptrToInt64(width)
	if err != nil {
		return 0, err
	}
	return MulInt64(int64(count), w)
}
