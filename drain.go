package radixheap

import "github.com/radix-go/radixheap/radix"

/*
Drain holds the state of an active drain of a heap: a one-shot iteration
that pops entries in monotone key order until the heap is empty. It reads
through to the heap, so interleaving Next with direct Pop calls is allowed
and both consume the same entries.
*/

////////////////////////////////////////////////////////////////////////////////

// Drain is an iterator over the remaining entries of a heap.
type Drain[K, V any, U radix.Unsigned] struct {
	h *Heap[K, V, U]
}

// Drain returns an iterator that consumes the heap in monotone key order.
func (h *Heap[K, V, U]) Drain() *Drain[K, V, U] {
	return &Drain[K, V, U]{h: h}
}

// More returns true if there are more entries in the iteration.
func (d *Drain[K, V, U]) More() bool {
	return d.h.len > 0
}

// Next pops and returns the next entry, or ok=false once the heap is empty.
func (d *Drain[K, V, U]) Next() (K, V, bool) {
	return d.h.Pop()
}
