package locustron

import "math"

// epsilon nudges the upper edge of a non-empty AABB just inside the cell it
// sits on, so an edge that lands exactly on a cell boundary is not counted
// as spilling into the next cell. Applied uniformly by add/update/remove
// and query so a removal always computes the cell rectangle its matching
// add used.
const epsilon = 1e-9

// AABB is an axis-aligned bounding box with top-left corner (X, Y) and
// extent (W, H). W and H must be non-negative; zero is a valid point
// extent. Negative X, Y are permitted.
type AABB struct {
	X, Y float64
	W, H float64
}

// CellCoord identifies one cell of a fixed grid by integer column/row.
type CellCoord struct {
	X, Y int
}

// CellRect is the inclusive range of cell coordinates an AABB overlaps.
type CellRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether c lies within r (inclusive on all sides).
func (r CellRect) Contains(c CellCoord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Intersects reports whether r and other share at least one cell.
func (r CellRect) Intersects(other CellRect) bool {
	return r.MinX <= other.MaxX && other.MinX <= r.MaxX &&
		r.MinY <= other.MaxY && other.MinY <= r.MaxY
}

// floorDiv computes floored (not truncated) integer division of v by size,
// so negative world coordinates map to the correct cell without a
// discontinuity at zero.
func floorDiv(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

// CellRectOf computes the minimal inclusive cell rectangle that covers
// box, for a grid with the given cell size. The right and bottom edges are
// treated as exclusive (see epsilon): an edge that lands exactly on a cell
// boundary does not reach into the next cell. An empty-extent box
// (W == 0 or H == 0) occupies exactly one cell along that axis: the cell
// of its top-left corner.
func CellRectOf(box AABB, cellSize int) CellRect {
	minX := floorDiv(box.X, cellSize)
	minY := floorDiv(box.Y, cellSize)

	maxX := minX
	if box.W > 0 {
		maxX = floorDiv(box.X+box.W-epsilon, cellSize)
	}
	maxY := minY
	if box.H > 0 {
		maxY = floorDiv(box.Y+box.H-epsilon, cellSize)
	}

	return CellRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// IsFinite reports whether every field of box is a finite float (not NaN,
// not +/-Inf). Used by the façade to validate bboxes supplied to Add and
// Update before any strategy mutation happens.
func (box AABB) IsFinite() bool {
	return isFiniteFloat(box.X) && isFiniteFloat(box.Y) &&
		isFiniteFloat(box.W) && isFiniteFloat(box.H)
}

func isFiniteFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
