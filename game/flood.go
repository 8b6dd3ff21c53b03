package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

// Visitor handles one cell of the flood and reports whether the flood
// should spread into that cell's neighbours
type Visitor func(Pos) bool
type NeighborGetter func(Pos) []Pos

// flood walks outward from start breadth-first. A worklist keeps the stack
// flat no matter how large the connected region is.
func flood(start Pos, visit Visitor, getNeighbors NeighborGetter) {
	var visitQueue deque.Deque[Pos]
	queued := make(collections.Set[Pos])

	enqueue := func(pos Pos) {
		// Don't visit, if already queued
		if queued.Contains(pos) {
			return
		}
		queued.Add(pos)
		visitQueue.PushBack(pos)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		pos := visitQueue.PopFront()
		if visit(pos) {
			for _, neighbor := range getNeighbors(pos) {
				enqueue(neighbor)
			}
		}
	}
}
