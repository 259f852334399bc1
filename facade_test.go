package locustron_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamico/locustron-sub001"
	_ "github.com/adamico/locustron-sub001/grid"
)

type entity struct {
	name string
	kind string
}

func newIndex(t *testing.T) *locustron.Locustron {
	t.Helper()
	idx, err := locustron.NewWithCellSize(32)
	require.NoError(t, err)
	return idx
}

// S1 — an object spanning four cells is returned exactly once by every
// query that touches any of them.
func TestQuery_UniquenessAcrossCells(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A"}

	_, err := idx.Add(a, 30, 30, 10, 10)
	require.NoError(t, err)

	for _, q := range [][4]float64{{25, 25, 20, 20}, {35, 35, 20, 20}, {0, 0, 100, 100}} {
		hits, err := idx.Query(q[0], q[1], q[2], q[3], nil)
		require.NoError(t, err)
		require.Equal(t, []any{a}, hits)
	}
	require.Equal(t, 1, idx.Count())
}

// S2 — a move that stays within the same cell footprint only touches the
// stored bbox, not grid membership.
func TestUpdate_WithinSameCellFootprint(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A"}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)

	newW, newH := 8.0, 8.0
	require.NoError(t, idx.Update(a, 15, 20, &newW, &newH))

	hits, err := idx.Query(0, 0, 32, 32, nil)
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)

	box, err := idx.GetBBox(a)
	require.NoError(t, err)
	require.Equal(t, locustron.AABB{X: 15, Y: 20, W: 8, H: 8}, box)

	info := idx.GetStrategyInfo()
	require.Equal(t, 1, info.Stats.CellCount)
}

// S3 — a move across cells leaves only the destination cell occupied.
func TestUpdate_AcrossCells(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A"}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)

	w, h := 8.0, 8.0
	require.NoError(t, idx.Update(a, 100, 100, &w, &h))

	hits, err := idx.Query(0, 0, 50, 50, nil)
	require.NoError(t, err)
	require.Empty(t, hits)

	hits, err = idx.Query(95, 95, 20, 20, nil)
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)

	info := idx.GetStrategyInfo()
	require.Equal(t, 1, info.Stats.CellCount)
}

// S4 — removing an object's only node drops its cell.
func TestRemove_DropsEmptyCell(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A"}

	_, err := idx.Add(a, 0, 0, 8, 8)
	require.NoError(t, err)
	require.Equal(t, 1, idx.GetStrategyInfo().Stats.CellCount)

	require.NoError(t, idx.Remove(a))

	info := idx.GetStrategyInfo()
	require.Equal(t, 0, info.Stats.CellCount)
	require.Equal(t, 0, info.ObjectCount)
	require.Equal(t, 0, idx.Count())
}

// S5 — a duplicate add fails and leaves the index unchanged.
func TestAdd_DuplicateRejected(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A"}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)

	_, err = idx.Add(a, 20, 20, 8, 8)
	require.ErrorIs(t, err, locustron.ErrDuplicateRegistration)

	box, err := idx.GetBBox(a)
	require.NoError(t, err)
	require.Equal(t, locustron.AABB{X: 10, Y: 10, W: 8, H: 8}, box)
	require.Equal(t, 1, idx.Count())
}

// S6 — a query filter restricts the result set by predicate.
func TestQuery_Filter(t *testing.T) {
	idx := newIndex(t)
	a := &entity{name: "A", kind: "enemy"}
	b := &entity{name: "B", kind: "player"}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)
	_, err = idx.Add(b, 15, 15, 8, 8)
	require.NoError(t, err)

	hits, err := idx.Query(0, 0, 50, 50, func(obj any) bool {
		return obj.(*entity).kind == "enemy"
	})
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)
}

func TestAdd_RejectsNilIdentity(t *testing.T) {
	idx := newIndex(t)
	_, err := idx.Add(nil, 0, 0, 1, 1)
	require.ErrorIs(t, err, locustron.ErrInvalidInput)
}

func TestAdd_RejectsNonFiniteBBox(t *testing.T) {
	idx := newIndex(t)
	_, err := idx.Add(&entity{}, math.NaN(), 0, 1, 1)
	require.ErrorIs(t, err, locustron.ErrInvalidInput)
}

func TestAdd_RejectsNegativeExtent(t *testing.T) {
	idx := newIndex(t)
	_, err := idx.Add(&entity{}, 0, 0, -1, 1)
	require.ErrorIs(t, err, locustron.ErrInvalidInput)
}

func TestAdd_AllowsZeroExtentPoint(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}
	_, err := idx.Add(a, 32, 32, 0, 0)
	require.NoError(t, err)

	info := idx.GetStrategyInfo()
	require.Equal(t, 1, info.Stats.CellCount)

	hits, err := idx.Query(32, 32, 1, 1, nil)
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)
}

func TestUpdate_UnknownObject(t *testing.T) {
	idx := newIndex(t)
	err := idx.Update(&entity{}, 0, 0, nil, nil)
	require.ErrorIs(t, err, locustron.ErrUnknownObject)
}

func TestRemove_UnknownObject(t *testing.T) {
	idx := newIndex(t)
	err := idx.Remove(&entity{})
	require.ErrorIs(t, err, locustron.ErrUnknownObject)
}

func TestGetBBox_UnknownObject(t *testing.T) {
	idx := newIndex(t)
	_, err := idx.GetBBox(&entity{})
	require.ErrorIs(t, err, locustron.ErrUnknownObject)
}

func TestQuery_RejectsNonPositiveExtent(t *testing.T) {
	idx := newIndex(t)
	_, err := idx.Query(0, 0, 0, 10, nil)
	require.ErrorIs(t, err, locustron.ErrInvalidExtent)

	_, err = idx.Query(0, 0, 10, -1, nil)
	require.ErrorIs(t, err, locustron.ErrInvalidExtent)
}

// Invariant 7: add then remove restores the index.
func TestInvariant_AddRemoveRoundTrip(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}

	before := idx.GetStrategyInfo().Stats

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)
	require.NoError(t, idx.Remove(a))

	after := idx.GetStrategyInfo().Stats
	require.Equal(t, before, after)
}

// Invariant 8: update immediately after add with the same bbox is a no-op.
func TestInvariant_UpdateAfterAddIsNoOp(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)
	before := idx.GetStrategyInfo().Stats

	w, h := 8.0, 8.0
	require.NoError(t, idx.Update(a, 10, 10, &w, &h))

	after := idx.GetStrategyInfo().Stats
	require.Equal(t, before, after)
}

// Invariant 9: two identical consecutive updates equal one.
func TestInvariant_RepeatedIdenticalUpdate(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}

	_, err := idx.Add(a, 10, 10, 8, 8)
	require.NoError(t, err)

	w, h := 8.0, 8.0
	require.NoError(t, idx.Update(a, 50, 50, &w, &h))
	once := idx.GetStrategyInfo().Stats

	require.NoError(t, idx.Update(a, 50, 50, &w, &h))
	twice := idx.GetStrategyInfo().Stats

	require.Equal(t, once, twice)
}

// Invariant 10: clear equals removing every object.
func TestInvariant_ClearEqualsRemovingEveryObject(t *testing.T) {
	idxCleared := newIndex(t)
	idxRemoved := newIndex(t)

	objs := []*entity{{name: "A"}, {name: "B"}, {name: "C"}}
	for i, o := range objs {
		x := float64(i * 40)
		_, err := idxCleared.Add(o, x, x, 8, 8)
		require.NoError(t, err)
		_, err = idxRemoved.Add(o, x, x, 8, 8)
		require.NoError(t, err)
	}

	idxCleared.Clear()
	for _, o := range objs {
		require.NoError(t, idxRemoved.Remove(o))
	}

	require.Equal(t, idxRemoved.GetStrategyInfo().Stats, idxCleared.GetStrategyInfo().Stats)
	require.Equal(t, 0, idxCleared.Count())
}

// Invariant 11: a zero-extent object at a cell-boundary corner occupies
// exactly the cell whose top-left corner is that point.
func TestInvariant_ZeroExtentAtCellBoundary(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}

	_, err := idx.Add(a, 32, 64, 0, 0)
	require.NoError(t, err)

	hits, err := idx.Query(32, 64, 1, 1, nil)
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)

	hits, err = idx.Query(0, 0, 32, 64, nil)
	require.NoError(t, err)
	require.Empty(t, hits)
}

// Invariant 12: negative coordinates map to the correct floored cell.
func TestInvariant_NegativeCoordinatesFloorCorrectly(t *testing.T) {
	idx := newIndex(t)
	a := &entity{}

	_, err := idx.Add(a, -10, -10, 4, 4)
	require.NoError(t, err)

	hits, err := idx.Query(-32, -32, 32, 32, nil)
	require.NoError(t, err)
	require.Equal(t, []any{a}, hits)

	hits, err = idx.Query(0, 0, 32, 32, nil)
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := locustron.New(locustron.Config{Strategy: "quadtree"})
	require.ErrorIs(t, err, locustron.ErrUnknownStrategy)
}

func TestNew_DefaultConfig(t *testing.T) {
	idx, err := locustron.New(locustron.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, locustron.DefaultStrategyName, idx.GetStrategyInfo().Name)
	require.Equal(t, locustron.DefaultCellSize, idx.GetStrategyInfo().Stats.CellSize)
}
