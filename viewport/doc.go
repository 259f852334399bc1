// Package viewport implements a bolt-on culling helper on top of a
// locustron.Locustron façade: it turns a viewport rectangle into a single
// Query call, expanding it by a symmetric "cull margin" so objects do not
// pop in and out as the viewport drifts slightly between frames, and
// tracks cumulative hit/miss statistics across calls.
//
// Viewport holds only a non-owning reference to the façade it was built
// with; it never mutates the index and performs no I/O.
package viewport
