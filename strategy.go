package locustron

// Strategy is the abstract operation set every partitioning back end must
// implement. The façade owns exactly one Strategy instance and delegates
// each validated operation to it exactly once. Locustron ships a single
// concrete strategy, grid.FixedGrid; the interface is written so an
// out-of-tree strategy (quadtree, spatial hash, ...) could be registered
// without changing this package.
type Strategy interface {
	// Add registers obj at box. The caller (the façade) has already
	// verified obj is non-nil, box is finite, and obj is not already
	// registered.
	Add(obj any, box AABB)
	// Update replaces the bbox of a previously-added obj. The caller has
	// already verified obj is registered.
	Update(obj any, box AABB)
	// Remove unregisters obj. The caller has already verified obj is
	// registered.
	Remove(obj any)
	// Query returns every registered object whose cell rectangle
	// intersects queryBox's cell rectangle, excluding any for which
	// filter (if non-nil) returns false. The caller has already verified
	// queryBox has a positive extent.
	Query(queryBox AABB, filter func(obj any) bool) []any
	// GetBBox returns the current bbox of a previously-added obj. The
	// caller has already verified obj is registered.
	GetBBox(obj any) AABB
	// Has reports whether obj is currently registered.
	Has(obj any) bool
	// Count returns the number of currently registered objects.
	Count() int
	// Clear empties the index.
	Clear()
	// Info returns the strategy's name, description, and statistics.
	Info() StrategyInfo
}

// StrategyInfo describes a strategy instance: its identity, its effective
// configuration, and its current statistics.
type StrategyInfo struct {
	Name        string
	Description string
	ObjectCount int
	Config      any
	Stats       GridStats
}

// GridStats holds the stable statistics field set every strategy exposes:
// object_count, cell_count, cell_size, total_memberships, and
// max_cell_occupancy.
type GridStats struct {
	// ObjectCount is the number of currently registered objects.
	ObjectCount int
	// CellCount is the number of non-empty cells in the sparse grid.
	CellCount int
	// CellSize is the configured cell side length.
	CellSize int
	// TotalMemberships is the aggregate node count across all cells
	// (equal to the sum of cell sizes).
	TotalMemberships int
	// MaxCellOccupancy is the largest number of nodes held by any single
	// cell.
	MaxCellOccupancy int
	// Debug carries the occupied cell-coordinate extent, useful for
	// diagnosing sparse-grid growth.
	Debug DebugInfo
}

// DebugInfo reports the min/max occupied cell coordinates actually
// touched by the grid. Empty (HasCells == false) when no cells are
// currently live.
type DebugInfo struct {
	HasCells bool
	MinX, MinY int
	MaxX, MaxY int
}
