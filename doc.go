// Package locustron is a 2D spatial partitioning library for axis-aligned
// bounding boxes (AABBs).
//
// Clients register objects with a position and size, reposition or remove
// them over time, and issue rectangular range queries that return every
// registered object whose bounding box may overlap the query window.
// Locustron targets interactive/game workloads where thousands of objects
// are inserted, moved, and queried every frame.
//
// The package owns the strategy-agnostic façade (this package, the
// Locustron type) plus the shared AABB geometry and the Strategy contract
// every back end must satisfy. The one concrete strategy shipped with this
// module — a uniform grid built on per-cell doubly linked lists — lives in
// the grid subpackage; a bolt-on viewport-culling helper that only ever
// reads the index (through Query and Count) lives in the viewport
// subpackage.
//
//	idx, err := locustron.New(locustron.DefaultConfig())
//	idx.Add(player, 30, 30, 10, 10)
//	hits, err := idx.Query(0, 0, 100, 100, nil)
//
// Locustron is single-threaded: every operation is synchronous, takes
// effect in program order, and performs no I/O. See grid.FixedGrid for the
// one strategy implementation shipped here.
package locustron
