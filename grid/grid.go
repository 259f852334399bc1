package grid

import "github.com/adamico/locustron-sub001"

// FixedGrid is a uniform grid of cells, each owning a doubly linked list
// of object records stored in a shared nodeArena. It satisfies
// locustron.Strategy and registers itself under "fixed_grid" (see
// register.go).
//
// query_region is a conservative superset over exact AABB-AABB overlap:
// it returns every object whose bbox could overlap the query, but may
// also return objects whose precise bboxes do not. It never omits an
// object whose cell rectangle intersects the query's.
type FixedGrid struct {
	cellSize int
	cells    map[locustron.CellCoord]*cell
	objects  map[any]*objectEntry
	arena    nodeArena

	highWater int // non-empty cell count above which a diagnostic log is emitted
}

// objectEntry is the object table's value: the object's current bbox plus
// one node handle per cell it occupies.
type objectEntry struct {
	bbox    locustron.AABB
	handles map[locustron.CellCoord]nodeHandle
}

const initialHighWater = 1024

// New constructs a FixedGrid with the given configuration. Most callers
// go through locustron.New/locustron.NewWithCellSize instead of calling
// this directly; New is exported so a caller who wants the strategy
// without the façade (e.g. to embed it behind a different front end) can
// do so.
func New(cfg Config) *FixedGrid {
	cellSize := cfg.CellSize
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &FixedGrid{
		cellSize:  cellSize,
		cells:     make(map[locustron.CellCoord]*cell),
		objects:   make(map[any]*objectEntry),
		arena:     newNodeArena(),
		highWater: initialHighWater,
	}
}

func (g *FixedGrid) getOrCreateCell(coord locustron.CellCoord) *cell {
	c, ok := g.cells[coord]
	if ok {
		return c
	}
	c = newCell()
	g.cells[coord] = c
	if len(g.cells) > g.highWater {
		g.logDiagnostic("grid: non-empty cell count crossed %d (now %d)", g.highWater, len(g.cells))
		g.highWater *= 2
	}
	return c
}

// Add implements locustron.Strategy.
func (g *FixedGrid) Add(obj any, box locustron.AABB) {
	rect := locustron.CellRectOf(box, g.cellSize)
	handles := make(map[locustron.CellCoord]nodeHandle, cellCount(rect))

	for gx := rect.MinX; gx <= rect.MaxX; gx++ {
		for gy := rect.MinY; gy <= rect.MaxY; gy++ {
			coord := locustron.CellCoord{X: gx, Y: gy}
			c := g.getOrCreateCell(coord)
			handles[coord] = g.arena.insertAtEnd(c, obj, box)
		}
	}

	g.objects[obj] = &objectEntry{bbox: box, handles: handles}
}

// Update implements locustron.Strategy. When the object's cell rectangle
// is unchanged, only the cached bbox is updated in place; otherwise the
// object is fully removed and re-added.
func (g *FixedGrid) Update(obj any, box locustron.AABB) {
	entry := g.objects[obj]
	oldRect := locustron.CellRectOf(entry.bbox, g.cellSize)
	newRect := locustron.CellRectOf(box, g.cellSize)

	if oldRect == newRect {
		entry.bbox = box
		for _, h := range entry.handles {
			g.arena.get(h).bbox = box
		}
		return
	}

	g.removeEntry(obj, entry)
	g.Add(obj, box)
}

// Remove implements locustron.Strategy.
func (g *FixedGrid) Remove(obj any) {
	entry := g.objects[obj]
	g.removeEntry(obj, entry)
}

func (g *FixedGrid) removeEntry(obj any, entry *objectEntry) {
	for coord, h := range entry.handles {
		c := g.cells[coord]
		g.arena.removeNode(c, h)
		if c.isEmpty() {
			delete(g.cells, coord)
		}
	}
	delete(g.objects, obj)
}

// Query implements locustron.Strategy.
func (g *FixedGrid) Query(queryBox locustron.AABB, filter func(obj any) bool) []any {
	rect := locustron.CellRectOf(queryBox, g.cellSize)
	visited := make(map[any]bool)
	var result []any

	for gx := rect.MinX; gx <= rect.MaxX; gx++ {
		for gy := rect.MinY; gy <= rect.MaxY; gy++ {
			c, ok := g.cells[locustron.CellCoord{X: gx, Y: gy}]
			if !ok {
				continue
			}
			g.arena.traverseForward(c, func(_ nodeHandle, n *cellNode) bool {
				if visited[n.object] {
					return true
				}
				visited[n.object] = true
				if filter == nil || filter(n.object) {
					result = append(result, n.object)
				}
				return true
			})
		}
	}

	return result
}

// GetBBox implements locustron.Strategy.
func (g *FixedGrid) GetBBox(obj any) locustron.AABB {
	return g.objects[obj].bbox
}

// Has implements locustron.Strategy.
func (g *FixedGrid) Has(obj any) bool {
	_, ok := g.objects[obj]
	return ok
}

// Count implements locustron.Strategy.
func (g *FixedGrid) Count() int {
	return len(g.objects)
}

// Clear implements locustron.Strategy.
func (g *FixedGrid) Clear() {
	g.cells = make(map[locustron.CellCoord]*cell)
	g.objects = make(map[any]*objectEntry)
	g.arena.reset()
	g.highWater = initialHighWater
}

// Info implements locustron.Strategy.
func (g *FixedGrid) Info() locustron.StrategyInfo {
	return locustron.StrategyInfo{
		Name:        "fixed_grid",
		Description: "uniform grid of fixed-size cells, each a doubly linked list of object records",
		ObjectCount: len(g.objects),
		Config:      Config{CellSize: g.cellSize},
		Stats:       g.stats(),
	}
}

func cellCount(rect locustron.CellRect) int {
	return (rect.MaxX - rect.MinX + 1) * (rect.MaxY - rect.MinY + 1)
}
