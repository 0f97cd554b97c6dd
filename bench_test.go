package radixheap_test

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/radix-go/radixheap"
	"github.com/radix-go/radixheap/radix"
)

// maxHeap is a container/heap baseline.
type maxHeap []int

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func BenchmarkExtendDrain(b *testing.B) {
	data := make([]radixheap.Entry[int, struct{}], 10000)
	for i := range data {
		data[i] = radixheap.Entry[int, struct{}]{Key: rand.Int()}
	}

	b.Run("radix", func(b *testing.B) {
		h := radixheap.New[int, struct{}](radix.Int)
		for i := 0; i < b.N; i++ {
			if err := h.Extend(data); err != nil {
				b.Fatal(err)
			}
			for !h.IsEmpty() {
				h.Pop()
			}
			h.Clear()
		}
	})
	b.Run("binary", func(b *testing.B) {
		h := make(maxHeap, 0, len(data))
		for i := 0; i < b.N; i++ {
			for _, e := range data {
				heap.Push(&h, e.Key)
			}
			for h.Len() > 0 {
				heap.Pop(&h)
			}
			h = h[:0]
		}
	})
}

// BenchmarkPushPop is a Dijkstra-shaped workload: every pushed key sits just
// below the most recently popped one.
func BenchmarkPushPop(b *testing.B) {
	b.Run("radix", func(b *testing.B) {
		h := radixheap.New[int, struct{}](radix.Int)
		for i := 0; i < b.N; i++ {
			if err := h.Push(0, struct{}{}); err != nil {
				b.Fatal(err)
			}
			for j := 0; j < 10000; j++ {
				n, _, _ := h.Pop()
				for k := 0; k < 2; k++ {
					if err := h.Push(n-k, struct{}{}); err != nil {
						b.Fatal(err)
					}
				}
			}
			h.Clear()
		}
	})
	b.Run("binary", func(b *testing.B) {
		h := make(maxHeap, 0, 16384)
		for i := 0; i < b.N; i++ {
			heap.Push(&h, 0)
			for j := 0; j < 10000; j++ {
				n := heap.Pop(&h).(int)
				for k := 0; k < 2; k++ {
					heap.Push(&h, n-k)
				}
			}
			h = h[:0]
		}
	})
}
