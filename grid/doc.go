// Package grid implements Locustron's one concrete partitioning strategy:
// a uniform grid of cells, each holding a doubly linked list of object
// records, keyed by floored integer (gx, gy) cell coordinates.
//
// FixedGrid satisfies locustron.Strategy and registers itself under the
// name "fixed_grid" (locustron.DefaultStrategyName) as a side effect of
// being imported — the same self-registration shape
// veschin-d2/d2plugin uses for its layout engines (a plugin appends
// itself to a registry from init()), applied here across the
// locustron/grid package boundary so the façade package never has to
// import this one.
//
// All cell-list storage lives in a single arena (nodeArena) shared by
// every cell, indexed by nodeHandle rather than by pointer, so removal is
// an O(1) slot free instead of a garbage-collected pointer drop — the
// same preallocated-slice-of-indices discipline
// fight-club-go/internal/game/spatial uses throughout (SpatialGrid's
// []uint32 cells, SweepAndPrune's index-based active set).
package grid
