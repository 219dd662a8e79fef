package segkit

import (
	"context"
	"iter"
)

type keyedEntry[K comparable, V any] struct {
	key   K
	value V
}

// KeyedList maps keys to entries stored in a StableList.
//
// Entries are appended in the order their keys are first inserted and are
// never relocated, so the *V returned by InsertOrGet or Lookup stays valid
// until the list is closed. Entries cannot be removed individually.
//
// Both iteration orders (Iterator and All) follow insertion order.
//
// KeyedList is not safe for concurrent use.
type KeyedList[K comparable, V any] struct {
	index   map[K]int
	entries *StableList[keyedEntry[K, V]]

	logger  *Logger
	metrics MetricsCollector
}

// NewKeyedList creates an empty keyed list whose entry blocks hold
// blockCapacity entries.
func NewKeyedList[K comparable, V any](blockCapacity int, opts ...Option) (*KeyedList[K, V], error) {
	o := applyOptions(opts)

	entries, err := newStableList[keyedEntry[K, V]](blockCapacity, "keyed_list", o)
	if err != nil {
		return nil, err
	}

	return &KeyedList[K, V]{
		index:   make(map[K]int),
		entries: entries,
		logger:  entries.logger,
		metrics: o.metricsCollector,
	}, nil
}

// InsertOrGet returns the entry for key, appending a zero-valued entry if the
// key is new. created reports whether the entry was appended by this call.
func (kl *KeyedList[K, V]) InsertOrGet(key K) (entry *V, created bool) {
	if i, ok := kl.index[key]; ok {
		kl.metrics.RecordKeyedInsert(false)
		return &kl.entries.ref(i).value, false
	}

	e := kl.entries.PushBackRef()
	e.key = key
	kl.index[key] = kl.entries.Len() - 1

	kl.logger.LogInsert(context.Background(), true, kl.entries.Len())
	kl.metrics.RecordKeyedInsert(true)

	return &e.value, true
}

// Lookup returns the entry for key.
func (kl *KeyedList[K, V]) Lookup(key K) (*V, bool) {
	i, ok := kl.index[key]
	if !ok {
		return nil, false
	}
	return &kl.entries.ref(i).value, true
}

// Contains reports whether key has an entry.
func (kl *KeyedList[K, V]) Contains(key K) bool {
	_, ok := kl.index[key]
	return ok
}

// Len returns the number of entries.
func (kl *KeyedList[K, V]) Len() int {
	return kl.entries.Len()
}

// IsEmpty reports whether the list has no entries.
func (kl *KeyedList[K, V]) IsEmpty() bool {
	return kl.entries.IsEmpty()
}

// Close drops the key index and releases every entry block.
// The list is empty afterwards and can be reused.
func (kl *KeyedList[K, V]) Close() {
	kl.entries.Close()
	kl.index = make(map[K]int)
}

// All returns an iterator over key/entry pairs in insertion order.
func (kl *KeyedList[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for _, e := range kl.entries.All() {
			if !yield(e.key, &e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in insertion order.
func (kl *KeyedList[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range kl.entries.All() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns an iterator over entry addresses in insertion order.
func (kl *KeyedList[K, V]) Values() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for _, e := range kl.entries.All() {
			if !yield(&e.value) {
				return
			}
		}
	}
}

// KeyedIterator is a cursor over a KeyedList in insertion order.
// It follows the validity rules of Iterator.
type KeyedIterator[K comparable, V any] struct {
	it *Iterator[keyedEntry[K, V]]
}

// Iterator returns a cursor positioned at the first inserted entry.
func (kl *KeyedList[K, V]) Iterator() *KeyedIterator[K, V] {
	return &KeyedIterator[K, V]{it: kl.entries.Iterator()}
}

// HasNext reports whether the cursor points at an entry.
func (it *KeyedIterator[K, V]) HasNext() bool {
	return it.it.HasNext()
}

// Next advances the cursor. Calling Next when HasNext is false panics.
func (it *KeyedIterator[K, V]) Next() {
	it.it.Next()
}

// Key returns the key of the entry under the cursor.
func (it *KeyedIterator[K, V]) Key() K {
	return it.it.MutableValue().key
}

// Value returns a copy of the entry under the cursor.
func (it *KeyedIterator[K, V]) Value() V {
	return it.it.MutableValue().value
}

// MutableValue returns the address of the entry under the cursor.
func (it *KeyedIterator[K, V]) MutableValue() *V {
	return &it.it.MutableValue().value
}
