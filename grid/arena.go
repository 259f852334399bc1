package grid

import "github.com/adamico/locustron-sub001"

// nodeHandle is an index into a nodeArena's backing slice. It replaces a
// language-level pointer so cell-list membership can be removed in O(1)
// without relying on the garbage collector to reclaim a node — the same
// index-not-pointer discipline fight-club-go/internal/game/spatial/grid.go
// uses for its entity lists ("Uses preallocated slices with integer
// indices (not pointers) to minimize GC pressure").
type nodeHandle uint32

// invalidHandle is the sentinel "none" value: no forward/backward link,
// no free-list successor.
const invalidHandle nodeHandle = ^nodeHandle(0)

// cellNode is one (object, cell) membership record. While live, it is
// reachable from exactly one cell's linked list (via prev/next) and from
// that object's entry in FixedGrid.objects (via its own handle); a node
// never exists outside both.
type cellNode struct {
	object     any
	bbox       locustron.AABB
	prev, next nodeHandle
}

// nodeArena owns every cellNode for a FixedGrid in one growable
// slice. Freed slots are threaded onto a free list through the same next
// field live nodes use for their forward link, so the slice only grows
// and removal never shifts or compacts it.
type nodeArena struct {
	nodes    []cellNode
	freeHead nodeHandle
}

func newNodeArena() nodeArena {
	return nodeArena{freeHead: invalidHandle}
}

// alloc reserves a node for (object, bbox) and returns its handle. The
// returned node's prev/next are both invalidHandle; the caller links it
// into a cell's list.
func (a *nodeArena) alloc(object any, bbox locustron.AABB) nodeHandle {
	if a.freeHead != invalidHandle {
		h := a.freeHead
		n := &a.nodes[h]
		a.freeHead = n.next
		*n = cellNode{object: object, bbox: bbox, prev: invalidHandle, next: invalidHandle}
		return h
	}

	h := nodeHandle(len(a.nodes))
	a.nodes = append(a.nodes, cellNode{object: object, bbox: bbox, prev: invalidHandle, next: invalidHandle})
	return h
}

// release returns h's slot to the free list. After release, h must not be
// dereferenced again; the caller is responsible for having already
// unlinked it from its cell.
func (a *nodeArena) release(h nodeHandle) {
	a.nodes[h] = cellNode{next: a.freeHead, prev: invalidHandle}
	a.freeHead = h
}

// get returns the node at h. The caller guarantees h is currently live.
func (a *nodeArena) get(h nodeHandle) *cellNode {
	return &a.nodes[h]
}

// reset drops every node, returning the arena to its just-constructed
// state. Used by FixedGrid.Clear.
func (a *nodeArena) reset() {
	a.nodes = a.nodes[:0]
	a.freeHead = invalidHandle
}
