package grid

import "github.com/adamico/locustron-sub001"

// stats walks every occupied cell once, computing the fields
// locustron.StrategyInfo.Stats reports. O(cell count).
func (g *FixedGrid) stats() locustron.GridStats {
	s := locustron.GridStats{
		ObjectCount: len(g.objects),
		CellCount:   len(g.cells),
		CellSize:    g.cellSize,
	}

	if len(g.cells) == 0 {
		return s
	}

	debug := locustron.DebugInfo{HasCells: true}
	first := true

	for coord, c := range g.cells {
		s.TotalMemberships += c.size
		if c.size > s.MaxCellOccupancy {
			s.MaxCellOccupancy = c.size
		}
		if first {
			debug.MinX, debug.MaxX = coord.X, coord.X
			debug.MinY, debug.MaxY = coord.Y, coord.Y
			first = false
			continue
		}
		if coord.X < debug.MinX {
			debug.MinX = coord.X
		}
		if coord.X > debug.MaxX {
			debug.MaxX = coord.X
		}
		if coord.Y < debug.MinY {
			debug.MinY = coord.Y
		}
		if coord.Y > debug.MaxY {
			debug.MaxY = coord.Y
		}
	}

	s.Debug = debug
	return s
}
