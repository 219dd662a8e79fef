package block

import "fmt"

// Block is a fixed-size array of items.
type Block[T any] struct {
	items []T
}

// New allocates a block holding capacity zero-valued items.
func New[T any](capacity int) *Block[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("block: invalid capacity %d", capacity))
	}
	return &Block[T]{items: make([]T, capacity)}
}

// Cap returns the fixed capacity of the block.
func (b *Block[T]) Cap() int {
	return len(b.items)
}

// At returns the address of the slot at offset.
// Panics if offset is outside [0, Cap()).
func (b *Block[T]) At(offset int) *T {
	return &b.items[offset]
}

// Clear resets the slot at offset to the zero value.
func (b *Block[T]) Clear(offset int) {
	var zero T
	b.items[offset] = zero
}

// ClearRange resets the slots in [from, to) to the zero value.
func (b *Block[T]) ClearRange(from, to int) {
	clear(b.items[from:to])
}

// Reset zeroes every slot.
func (b *Block[T]) Reset() {
	clear(b.items)
}
