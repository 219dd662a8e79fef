//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintptrToInt64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := UintptrToInt64(0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := UintptrToInt64(123)
		assert.NoError(t, err)
		assert.Equal(t, int64(123), got)
	})
}

func TestMulInt64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := MulInt64(32, 8)
		assert.NoError(t, err)
		assert.Equal(t, int64(256), got)
	})

	t.Run("zero operand", func(t *testing.T) {
		got, err := MulInt64(0, math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := MulInt64(1, math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := MulInt64(2, math.MaxInt64/2+1)
		assert.Error(t, err)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := MulInt64(-1, 2)
		assert.Error(t, err)
	})
}

func TestByteSize(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ByteSize(4, 8)
		assert.NoError(t, err)
		assert.Equal(t, int64(32), got)
	})

	t.Run("zero width", func(t *testing.T) {
		got, err := ByteSize(1024, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("invalid negative count", func(t *testing.T) {
		_, err := ByteSize(-1, 8)
		assert.Error(t, err)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := ByteSize(math.MaxInt, 16)
		assert.Error(t, err)
	})
}
