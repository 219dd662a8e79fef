package block

import "fmt"

// Directory is an append-only, ordered collection of blocks of equal capacity.
type Directory[T any] struct {
	blockCap int
	blocks   []*Block[T]
}

// NewDirectory creates an empty directory whose blocks hold blockCap items.
// hint pre-sizes the handle slice; it does not allocate blocks.
func NewDirectory[T any](blockCap, hint int) *Directory[T] {
	if blockCap <= 0 {
		panic(fmt.Sprintf("block: invalid block capacity %d", blockCap))
	}
	if hint < 0 {
		hint = 0
	}
	return &Directory[T]{
		blockCap: blockCap,
		blocks:   make([]*Block[T], 0, hint),
	}
}

// BlockCapacity returns the capacity of every block in the directory.
func (d *Directory[T]) BlockCapacity() int {
	return d.blockCap
}

// Len returns the number of allocated blocks.
func (d *Directory[T]) Len() int {
	return len(d.blocks)
}

// EnsureBlock guarantees that block n exists and returns it.
// The second result reports whether the block was allocated by this call.
//
// Blocks are appended one at a time, so n must be at most Len().
func (d *Directory[T]) EnsureBlock(n int) (*Block[T], bool) {
	if n < len(d.blocks) {
		return d.blocks[n], false
	}
	if n != len(d.blocks) {
		panic(fmt.Sprintf("block: ensure block %d with only %d blocks allocated", n, len(d.blocks)))
	}

	b := New[T](d.blockCap)
	d.blocks = append(d.blocks, b)
	return b, true
}

// BlockAt returns block n. Panics if n >= Len().
func (d *Directory[T]) BlockAt(n int) *Block[T] {
	return d.blocks[n]
}

// Release zeroes and drops every block and the handle slice, returning how
// many blocks were released. The directory is empty and reusable afterwards.
// Block handles obtained earlier read zero values once released.
func (d *Directory[T]) Release() int {
	n := len(d.blocks)
	for _, b := range d.blocks {
		b.Reset()
	}
	clear(d.blocks)
	d.blocks = nil
	return n
}
