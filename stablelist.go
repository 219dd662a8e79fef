package segkit

import (
	"context"
	"fmt"
	"iter"
	"unsafe"

	"github.com/hupe1980/segkit/internal/block"
	"github.com/hupe1980/segkit/internal/conv"
	"github.com/hupe1980/segkit/internal/pagesize"
	"github.com/hupe1980/segkit/resource"
)

// StableList is an append-only sequence whose elements never move.
//
// Elements live in fixed-capacity blocks. Element i is stored in block
// i / BlockCapacity() at offset i % BlockCapacity(); growing the list appends
// a new block instead of reallocating, so a pointer returned by PushBackRef,
// GetRef or SetRef stays valid until the element is popped or the list is
// cleared or closed.
//
// Checked accessors report out-of-range indexes with a false result and leave
// the list unchanged. The Unchecked variants skip the logical-size check; they
// must only be called with an index in [0, Len()).
//
// StableList is not safe for concurrent use.
type StableList[T any] struct {
	size       int
	blockCap   int
	blockBytes int64
	reserved   int64
	dir        *block.Directory[T]

	logger    *Logger
	metrics   MetricsCollector
	resources *resource.Controller
}

// NewStableList creates an empty list whose blocks hold blockCapacity elements.
// No block is allocated until the first push.
func NewStableList[T any](blockCapacity int, opts ...Option) (*StableList[T], error) {
	return newStableList[T](blockCapacity, "stable_list", applyOptions(opts))
}

func newStableList[T any](blockCapacity int, name string, o options) (*StableList[T], error) {
	if blockCapacity <= 0 {
		return nil, &ErrBlockCapacity{Capacity: blockCapacity}
	}

	var zero T
	blockBytes, err := conv.ByteSize(blockCapacity, unsafe.Sizeof(zero))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlockTooLarge, err)
	}

	return &StableList[T]{
		blockCap:   blockCapacity,
		blockBytes: blockBytes,
		dir:        block.NewDirectory[T](blockCapacity, o.directoryHint),
		logger:     o.logger.WithContainer(name).WithBlockCapacity(blockCapacity),
		metrics:    o.metricsCollector,
		resources:  o.resources,
	}, nil
}

// PageBlockCapacity returns how many elements of T fit in one memory page.
// It is always at least 1 and is a reasonable block capacity for large lists.
func PageBlockCapacity[T any]() int {
	var zero T
	return pagesize.Elements(unsafe.Sizeof(zero))
}

func (l *StableList[T]) ensureBlock(n int) *block.Block[T] {
	if n < l.dir.Len() {
		return l.dir.BlockAt(n)
	}

	if err := l.resources.AcquireMemory(l.blockBytes); err != nil {
		panic(&AllocationError{BlockIndex: n, Bytes: l.blockBytes, cause: err})
	}

	b, _ := l.dir.EnsureBlock(n)
	l.reserved += l.blockBytes

	l.logger.LogBlockAllocated(context.Background(), n, l.blockCap, l.blockBytes)
	l.metrics.RecordBlockAllocated(l.blockCap, l.blockBytes)

	return b
}

func (l *StableList[T]) ref(index int) *T {
	return l.dir.BlockAt(index / l.blockCap).At(index % l.blockCap)
}

func (l *StableList[T]) inRange(index int) bool {
	return index >= 0 && index < l.size
}

// PushBack appends v and returns the address of the stored element.
func (l *StableList[T]) PushBack(v T) *T {
	p := l.PushBackRef()
	*p = v
	return p
}

// PushBackRef appends a zero-valued element and returns its address.
func (l *StableList[T]) PushBackRef() *T {
	b := l.ensureBlock(l.size / l.blockCap)
	p := b.At(l.size % l.blockCap)
	l.size++
	return p
}

// PopBack removes and returns the last element.
// It returns false if the list is empty.
func (l *StableList[T]) PopBack() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.PopBackUnchecked(), true
}

// PopBackUnchecked removes and returns the last element of a non-empty list.
func (l *StableList[T]) PopBackUnchecked() T {
	last := l.size - 1
	b := l.dir.BlockAt(last / l.blockCap)
	off := last % l.blockCap

	v := *b.At(off)
	// Vacated slots are kept zeroed so PushBackRef hands out zero values.
	b.Clear(off)
	l.size--
	return v
}

// Get returns the element at index.
func (l *StableList[T]) Get(index int) (T, bool) {
	if !l.inRange(index) {
		var zero T
		return zero, false
	}
	return *l.ref(index), true
}

// GetUnchecked returns the element at index without a range check.
func (l *StableList[T]) GetUnchecked(index int) T {
	return *l.ref(index)
}

// GetRef returns the address of the element at index.
func (l *StableList[T]) GetRef(index int) (*T, bool) {
	if !l.inRange(index) {
		return nil, false
	}
	return l.ref(index), true
}

// GetRefUnchecked returns the address of the element at index without a
// range check.
func (l *StableList[T]) GetRefUnchecked(index int) *T {
	return l.ref(index)
}

// Set overwrites the element at index.
// Unlike a growable slice, Set never extends the list: an index outside
// [0, Len()) is rejected. Use PushBack to grow.
func (l *StableList[T]) Set(index int, v T) bool {
	if !l.inRange(index) {
		return false
	}
	*l.ref(index) = v
	return true
}

// SetRef returns the address of the existing element at index for writing.
func (l *StableList[T]) SetRef(index int) (*T, bool) {
	return l.GetRef(index)
}

// SetRefUnchecked is SetRef without a range check.
func (l *StableList[T]) SetRefUnchecked(index int) *T {
	return l.ref(index)
}

// Last returns the last element.
func (l *StableList[T]) Last() (T, bool) {
	return l.Get(l.size - 1)
}

// LastUnchecked returns the last element of a non-empty list.
func (l *StableList[T]) LastUnchecked() T {
	return l.GetUnchecked(l.size - 1)
}

// LastRef returns the address of the last element.
func (l *StableList[T]) LastRef() (*T, bool) {
	return l.GetRef(l.size - 1)
}

// LastRefUnchecked returns the address of the last element of a non-empty list.
func (l *StableList[T]) LastRefUnchecked() *T {
	return l.ref(l.size - 1)
}

// Len returns the number of elements.
func (l *StableList[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *StableList[T]) IsEmpty() bool {
	return l.size == 0
}

// BlockCapacity returns the fixed number of elements per block.
func (l *StableList[T]) BlockCapacity() int {
	return l.dir.BlockCapacity()
}

// NumBlocks returns the number of allocated blocks.
func (l *StableList[T]) NumBlocks() int {
	return l.dir.Len()
}

// Clear removes every element but keeps the allocated blocks for reuse.
// Addresses obtained before Clear must not be used afterwards.
func (l *StableList[T]) Clear() {
	for bi := 0; bi*l.blockCap < l.size; bi++ {
		end := min(l.size-bi*l.blockCap, l.blockCap)
		l.dir.BlockAt(bi).ClearRange(0, end)
	}
	l.size = 0
}

// Close releases every block and returns the reserved memory to the
// resource controller. The list is empty afterwards and can be reused.
func (l *StableList[T]) Close() {
	blocks := l.dir.Release()
	bytes := l.reserved

	l.resources.ReleaseMemory(bytes)
	l.reserved = 0
	l.size = 0

	if blocks > 0 {
		l.logger.LogRelease(context.Background(), blocks, bytes)
		l.metrics.RecordRelease(blocks, bytes)
	}
}

// All returns an iterator over index/address pairs, front to back.
func (l *StableList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.ref(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the elements, front to back.
func (l *StableList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(*l.ref(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/address pairs, back to front.
func (l *StableList[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := l.size - 1; i >= 0; i-- {
			if !yield(i, l.ref(i)) {
				return
			}
		}
	}
}
