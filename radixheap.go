package radixheap

import (
	"fmt"

	"github.com/radix-go/radixheap/radix"
)

/*
Heap is a monotone priority queue implemented as a radix heap: entries are
grouped into buckets by the position of the highest bit at which their key
differs from the current top key. A key may only be pushed if it does not
exceed the most recently popped key, and in exchange pushes are O(1) and pops
are O(log m) amortized, where m is the distance between the popped key and
the top key in force when it was pushed. This does not depend on the number
of entries, so workloads whose key spread is bounded get O(1) pops.

All comparisons happen on the keys' order-preserving bit representations, so
a heap built on a radix.Reverse mapping is min-oriented with no further
changes.
*/

////////////////////////////////////////////////////////////////////////////////

// Entry is a key/value pair stored in the heap.
type Entry[K, V any] struct {
	Key   K
	Value V
}

type bucket[K, V any] []Entry[K, V]

// Heap is a max-oriented monotone priority queue. It is not safe for
// concurrent use.
type Heap[K, V any, U radix.Unsigned] struct {
	bits radix.Bits[K, U]

	// buckets[i] holds the entries at radix distance i from top. Bucket 0
	// holds exactly the entries whose key equals top.
	buckets []bucket[K, V]

	// topBits bounds pushable keys. It is all ones until the first pop, so a
	// fresh heap accepts any key.
	topBits U
	top     K
	bounded bool
	len     int
}

// New returns an empty heap over the given key mapping, accepting any key
// until the first pop. The value type cannot be inferred, so calls name the
// key and value types and let the mapping supply the rest:
//
//	h := radixheap.New[uint64, string](radix.Uint64)
func New[K, V any, U radix.Unsigned](bits radix.Bits[K, U]) *Heap[K, V, U] {
	return &Heap[K, V, U]{
		bits:    bits,
		buckets: make([]bucket[K, V], radix.Width[U]()+1),
		topBits: ^U(0),
	}
}

// NewAt returns an empty heap already bounded by top. This can be cheaper
// when an upper bound on the keys is known in advance, since entries land
// nearer their final bucket.
func NewAt[K, V any, U radix.Unsigned](bits radix.Bits[K, U], top K) *Heap[K, V, U] {
	h := New[K, V](bits)
	h.top = top
	h.topBits = bits(top)
	h.bounded = true
	return h
}

// From returns a heap populated from entries. A fresh heap has no top
// bound, so every entry is accepted.
func From[K, V any, U radix.Unsigned](bits radix.Bits[K, U], entries []Entry[K, V]) *Heap[K, V, U] {
	h := New[K, V](bits)
	for _, e := range entries {
		// cannot fail before the first pop
		_ = h.Push(e.Key, e.Value)
	}
	return h
}

// Push adds an entry to the heap. It returns an error wrapping
// ErrKeyAboveTop, leaving the heap unchanged, if the key exceeds the current
// top key.
func (h *Heap[K, V, U]) Push(key K, value V) error {
	kb := h.bits(key)
	if kb > h.topBits {
		return fmt.Errorf("key %v exceeds top %v: %w", key, h.top, ErrKeyAboveTop)
	}
	i := radix.Bucket(kb, h.topBits)
	h.buckets[i] = append(h.buckets[i], Entry[K, V]{Key: key, Value: value})
	h.len++
	return nil
}

// Pop removes and returns the greatest entry, or ok=false if the heap is
// empty. Entries with equal keys are popped in reverse insertion order. The
// popped key becomes the new top, so no key greater than it can be pushed
// afterward.
func (h *Heap[K, V, U]) Pop() (key K, value V, ok bool) {
	if h.len == 0 {
		return key, value, false
	}
	if len(h.buckets[0]) == 0 {
		h.rebalance()
	}
	b := h.buckets[0]
	e := b[len(b)-1]
	h.buckets[0] = b[:len(b)-1]
	h.len--
	h.top = e.Key
	h.topBits = h.bits(e.Key)
	h.bounded = true
	return e.Key, e.Value, true
}

// rebalance empties the first non-empty bucket into lower-indexed buckets,
// using its greatest key as the new top. Every entry in the bucket shares
// the same highest differing bit relative to the old top, and the new top is
// the greatest among them, so every recomputed index is strictly lower and
// the new top itself lands in bucket 0.
func (h *Heap[K, V, U]) rebalance() {
	for i := 1; i < len(h.buckets); i++ {
		drained := h.buckets[i]
		if len(drained) == 0 {
			continue
		}
		top := drained[0]
		topBits := h.bits(top.Key)
		for _, e := range drained[1:] {
			if eb := h.bits(e.Key); eb > topBits {
				top, topBits = e, eb
			}
		}
		h.top = top.Key
		h.topBits = topBits
		// Keep the drained bucket's backing array for reuse. Nothing below
		// appends to bucket i: all recomputed indices are strictly lower.
		h.buckets[i] = drained[:0]
		for _, e := range drained {
			j := radix.Bucket(h.bits(e.Key), topBits)
			h.buckets[j] = append(h.buckets[j], e)
		}
		return
	}
	panic("radixheap: non-zero length but no occupied bucket")
}

// Top returns the current top key. It reports ok=false until the first pop,
// since no bound exists before one.
func (h *Heap[K, V, U]) Top() (key K, ok bool) {
	return h.top, h.bounded
}

// Len returns the number of entries in the heap.
func (h *Heap[K, V, U]) Len() int {
	return h.len
}

// IsEmpty returns true if the heap holds no entries.
func (h *Heap[K, V, U]) IsEmpty() bool {
	return h.len == 0
}

// Extend pushes entries in order, each under the same contract as Push. On
// error the entries preceding the offending one remain in the heap.
func (h *Heap[K, V, U]) Extend(entries []Entry[K, V]) error {
	for _, e := range entries {
		if err := h.Push(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops all entries and removes the top bound, returning the heap to
// its freshly constructed state. Bucket storage is retained for reuse.
func (h *Heap[K, V, U]) Clear() {
	var zero K
	h.top = zero
	h.topBits = ^U(0)
	h.bounded = false
	h.len = 0
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
}

// ClearTo drops all entries and bounds the heap at top, as NewAt does.
func (h *Heap[K, V, U]) ClearTo(top K) {
	h.Clear()
	h.top = top
	h.topBits = h.bits(top)
	h.bounded = true
}
