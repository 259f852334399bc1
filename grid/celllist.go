package grid

import "github.com/adamico/locustron-sub001"

// cell is one non-empty unit of the sparse grid: the head and tail of its
// doubly linked node list, plus a maintained size. size == 0 iff
// head == tail == invalidHandle; a cell with size == 0 is never kept in
// FixedGrid.cells.
type cell struct {
	head, tail nodeHandle
	size       int
}

func newCell() *cell {
	return &cell{head: invalidHandle, tail: invalidHandle}
}

func (c *cell) isEmpty() bool {
	return c.size == 0
}

// insertAtEnd appends a new node for (object, bbox) to c's list and
// returns its handle. O(1).
func (a *nodeArena) insertAtEnd(c *cell, object any, bbox locustron.AABB) nodeHandle {
	h := a.alloc(object, bbox)
	if c.size == 0 {
		c.head = h
		c.tail = h
	} else {
		a.get(c.tail).next = h
		a.get(h).prev = c.tail
		c.tail = h
	}
	c.size++
	return h
}

// removeNode detaches h from c's list and releases its slot. The caller
// guarantees h still refers to a live node in c. O(1).
func (a *nodeArena) removeNode(c *cell, h nodeHandle) {
	n := a.get(h)

	if n.prev != invalidHandle {
		a.get(n.prev).next = n.next
	} else {
		c.head = n.next
	}
	if n.next != invalidHandle {
		a.get(n.next).prev = n.prev
	} else {
		c.tail = n.prev
	}

	c.size--
	a.release(h)
}

// clear empties c, releasing every node it held. O(size).
func (a *nodeArena) clear(c *cell) {
	for h := c.head; h != invalidHandle; {
		next := a.get(h).next
		a.release(h)
		h = next
	}
	c.head, c.tail, c.size = invalidHandle, invalidHandle, 0
}

// traverseForward visits c's nodes head-to-tail. visit may return false to
// stop early. O(size).
func (a *nodeArena) traverseForward(c *cell, visit func(h nodeHandle, n *cellNode) bool) {
	for h := c.head; h != invalidHandle; {
		n := a.get(h)
		next := n.next
		if !visit(h, n) {
			return
		}
		h = next
	}
}

// traverseBackward visits c's nodes tail-to-head. visit may return false
// to stop early. O(size).
func (a *nodeArena) traverseBackward(c *cell, visit func(h nodeHandle, n *cellNode) bool) {
	for h := c.tail; h != invalidHandle; {
		n := a.get(h)
		prev := n.prev
		if !visit(h, n) {
			return
		}
		h = prev
	}
}

// find returns the handle of the node referencing object in c, if any.
// O(size); used only by rarely-exercised paths, never by Add/Update/Remove.
func (a *nodeArena) find(c *cell, object any) (nodeHandle, bool) {
	found, ok := invalidHandle, false
	a.traverseForward(c, func(h nodeHandle, n *cellNode) bool {
		if n.object == object {
			found, ok = h, true
			return false
		}
		return true
	})
	return found, ok
}
