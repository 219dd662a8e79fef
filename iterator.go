package segkit

// Iterator is a forward cursor over a StableList.
//
//	for it := list.Iterator(); it.HasNext(); it.Next() {
//	    fmt.Println(it.Index(), it.Value())
//	}
//
// An iterator is an unsynchronized view: it stays valid only while no element
// is popped and the list is not cleared or closed. Pushing is allowed; the new
// elements are visited.
type Iterator[T any] struct {
	list  *StableList[T]
	index int
}

// Iterator returns a cursor positioned at the first element.
func (l *StableList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// HasNext reports whether the cursor points at an element.
func (it *Iterator[T]) HasNext() bool {
	return it.index < it.list.size
}

// Next advances the cursor. Calling Next when HasNext is false panics.
func (it *Iterator[T]) Next() {
	if !it.HasNext() {
		panic("segkit: iterator advanced past end")
	}
	it.index++
}

// Index returns the logical index under the cursor.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Value returns a copy of the element under the cursor.
func (it *Iterator[T]) Value() T {
	return *it.list.ref(it.index)
}

// MutableValue returns the address of the element under the cursor.
func (it *Iterator[T]) MutableValue() *T {
	return it.list.ref(it.index)
}

// ReverseIterator is a cursor over a StableList from the last element to the
// first. It has the same validity rules as Iterator, except that elements
// pushed after its creation are not visited.
type ReverseIterator[T any] struct {
	list  *StableList[T]
	index int
}

// ReverseIterator returns a cursor positioned at the last element.
func (l *StableList[T]) ReverseIterator() *ReverseIterator[T] {
	return &ReverseIterator[T]{list: l, index: l.size - 1}
}

// HasNext reports whether the cursor points at an element.
func (it *ReverseIterator[T]) HasNext() bool {
	return it.index >= 0
}

// Next moves the cursor towards the front. Calling Next when HasNext is
// false panics.
func (it *ReverseIterator[T]) Next() {
	if !it.HasNext() {
		panic("segkit: iterator advanced past end")
	}
	it.index--
}

// Index returns the logical index under the cursor.
func (it *ReverseIterator[T]) Index() int {
	return it.index
}

// Value returns a copy of the element under the cursor.
func (it *ReverseIterator[T]) Value() T {
	return *it.list.ref(it.index)
}

// MutableValue returns the address of the element under the cursor.
func (it *ReverseIterator[T]) MutableValue() *T {
	return it.list.ref(it.index)
}
