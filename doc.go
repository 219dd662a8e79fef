// Package segkit provides pointer-stable segmented containers for Go.
//
// A StableList stores its elements in fixed-capacity blocks that are never
// reallocated. Appending is amortized O(1), random access is O(1), and the
// address of an element does not change while the element is in the list.
// This makes it suitable for building blocks of a larger runtime that hand
// out long-lived pointers into a growing collection.
//
// # Quick Start
//
//	list, _ := segkit.NewStableList[int](segkit.DefaultBlockCapacity)
//	p := list.PushBack(42)   // p stays valid while the list grows
//	for i := 0; i < 1000; i++ {
//	    list.PushBack(i)
//	}
//	fmt.Println(*p)          // 42
//
// A KeyedList pairs a key index with a StableList of entries:
//
//	symbols, _ := segkit.NewKeyedList[string, Symbol](64)
//	sym, created := symbols.InsertOrGet("main")
//	if created {
//	    sym.Kind = KindFunc
//	}
//
// # Layout
//
// Element i lives in block i / BlockCapacity() at offset i % BlockCapacity().
// Blocks are allocated lazily, one at a time, when the list grows past the
// last allocated block. The block directory is an ordinary slice of block
// pointers; it may be reallocated as it grows, but the blocks never move.
//
// # Checked and Unchecked Access
//
// Checked accessors (Get, GetRef, Set, PopBack, Last, ...) return a boolean
// and leave the container unchanged when the index is outside [0, Len()).
// Their Unchecked counterparts skip that test and must only be called with a
// valid index.
//
// Precondition violations are fatal: a nil container, advancing an iterator
// past its end, or running out of the memory budget configured with
// WithResourceController all panic.
//
// # Concurrency
//
// Containers are not safe for concurrent use. The resource.Controller and
// BasicMetricsCollector collaborators are, so they can be shared.
package segkit
