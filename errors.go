package segkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlockCapacity is returned when a container is constructed with
	// a block capacity that is not positive.
	ErrInvalidBlockCapacity = errors.New("segkit: block capacity must be positive")

	// ErrBlockTooLarge is returned when a block's byte size overflows int64.
	ErrBlockTooLarge = errors.New("segkit: block size overflows")
)

// ErrBlockCapacity reports the rejected block capacity.
//
// errors.Is(err, ErrInvalidBlockCapacity) holds for every ErrBlockCapacity.
type ErrBlockCapacity struct {
	Capacity int
}

func (e *ErrBlockCapacity) Error() string {
	return fmt.Sprintf("segkit: invalid block capacity: %d", e.Capacity)
}

func (e *ErrBlockCapacity) Unwrap() error { return ErrInvalidBlockCapacity }

// AllocationError is the panic value raised when a block cannot be reserved
// against the configured resource controller.
//
// The underlying error (typically resource.ErrMemoryLimitExceeded) can be
// accessed via errors.Unwrap.
type AllocationError struct {
	BlockIndex int
	Bytes      int64
	cause      error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("segkit: allocate block %d (%d bytes): %v", e.BlockIndex, e.Bytes, e.cause)
}

func (e *AllocationError) Unwrap() error { return e.cause }
