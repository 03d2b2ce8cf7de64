package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// openEntry is a node waiting in the open set.
type openEntry struct {
	node  *Node
	seq   uint64 // insertion sequence, last tie-breaker
	index int    // position in entryHeap, maintained by Swap/Push/Pop
}

// entryHeap is a min-heap of *openEntry ordered by (f, h, seq).
type entryHeap []*openEntry

// Len returns the number of entries in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by smaller f, then smaller h, then earlier insertion.
func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if fa, fb := a.node.F(), b.node.F(); fa != fb {
		return fa < fb
	}
	if a.node.h != b.node.h {
		return a.node.h < b.node.h
	}
	return a.seq < b.seq
}

// Swap swaps two entries and keeps their indices current.
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap) Push(x interface{}) {
	e := x.(*openEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// openSet is the A* frontier: a priority heap plus a position index so that
// each position has at most one live entry.
type openSet struct {
	heap  entryHeap
	byPos map[grid.Position]*openEntry
	seq   uint64
}

func newOpenSet(capacity int) *openSet {
	s := &openSet{
		heap:  make(entryHeap, 0, capacity),
		byPos: make(map[grid.Position]*openEntry, capacity),
	}
	heap.Init(&s.heap)

	return s
}

// Len returns the number of open positions.
func (s *openSet) Len() int { return s.heap.Len() }

// get returns the open node at pos, if any.
func (s *openSet) get(pos grid.Position) (*Node, bool) {
	e, ok := s.byPos[pos]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// push inserts n. The caller guarantees n's position is not already open.
func (s *openSet) push(n *Node) {
	s.seq++
	e := &openEntry{node: n, seq: s.seq}
	heap.Push(&s.heap, e)
	s.byPos[n.pos] = e
}

// replace drops the entry for n's position and inserts n in its place.
func (s *openSet) replace(n *Node) {
	if old, ok := s.byPos[n.pos]; ok {
		heap.Remove(&s.heap, old.index)
		delete(s.byPos, n.pos)
	}
	s.push(n)
}

// pop removes and returns the node with the smallest (f, h, seq).
func (s *openSet) pop() *Node {
	e := heap.Pop(&s.heap).(*openEntry)
	delete(s.byPos, e.node.pos)

	return e.node
}
