package depot

import (
	"container/heap"
	"math"
)

// Entity is a generational handle to one object in a World. Two handles
// refer to the same object only if both index and generation match; a
// handle whose generation lags the allocator's stored generation is stale
// and fails every world operation.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the entity's slot index.
func (e Entity) Index() uint32 { return e.index }

// Generation returns the reuse counter for the entity's index.
func (e Entity) Generation() uint32 { return e.generation }

type allocation struct {
	generation uint32
	inUse      bool
}

// entityAllocator issues entity handles and recycles despawned indices.
// Freed indices are reused lowest-first. The stored generation is bumped
// at despawn time, so a stale handle stops validating the moment its
// entity dies, not when the index is reused.
type entityAllocator struct {
	allocations []allocation
	free        indexHeap
	live        int
}

func (a *entityAllocator) allocate() Entity {
	if a.free.Len() > 0 {
		index := heap.Pop(&a.free).(uint32)
		alloc := &a.allocations[index]
		alloc.inUse = true
		a.live++
		return Entity{index: index, generation: alloc.generation}
	}
	a.allocations = append(a.allocations, allocation{inUse: true})
	a.live++
	return Entity{index: uint32(len(a.allocations) - 1)}
}

func (a *entityAllocator) deallocate(e Entity) error {
	if !a.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	alloc := &a.allocations[e.index]
	alloc.inUse = false
	a.live--
	if alloc.generation == math.MaxUint32 {
		// Bumping would wrap back to a generation that was already
		// issued for this index. Retire the index instead of freeing it.
		return nil
	}
	alloc.generation++
	heap.Push(&a.free, e.index)
	return nil
}

func (a *entityAllocator) isAlive(e Entity) bool {
	if int(e.index) >= len(a.allocations) {
		return false
	}
	alloc := a.allocations[e.index]
	return alloc.inUse && alloc.generation == e.generation
}

// generationAt reports the stored generation for a live index.
func (a *entityAllocator) generationAt(index uint32) uint32 {
	return a.allocations[index].generation
}

// indexHeap is a min-heap of recycled entity indices.
type indexHeap []uint32

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(uint32)) }

func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
