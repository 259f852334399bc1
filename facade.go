package locustron

import "fmt"

// Locustron is the strategy-agnostic spatial-index façade. It owns exactly
// one Strategy instance, validates every operation before delegating to
// it, enforces identity uniqueness, and tracks the total object count. It
// performs no I/O and has no background activity.
//
// Count coherence (facade.count() == strategy.Count()) is asserted after
// every operation that changes the count (Add, Remove, Clear); a divergence is an invariant violation in a
// Strategy implementation, not a caller error, so it panics rather than
// returning an error.
//
// Locustron is not safe for concurrent use; see the package doc and §5 of
// the design for the single-threaded cooperative model this type assumes.
type Locustron struct {
	strategy Strategy
	count    int
	config   Config
}

// New constructs a façade using cfg.Strategy (DefaultStrategyName if
// empty) and cfg.StrategyConfig. It returns ErrUnknownStrategy if the
// named strategy has not been registered (the strategy's package must be
// imported, directly or transitively, for it to register itself).
func New(cfg Config) (*Locustron, error) {
	strategy, err := buildStrategy(cfg.Strategy, cfg.StrategyConfig)
	if err != nil {
		return nil, err
	}
	return &Locustron{strategy: strategy, config: cfg}, nil
}

// NewWithCellSize constructs a façade using the default (fixed-grid)
// strategy with the given cell size. This is the "legacy" bare-integer
// constructor form named in the design: an explicit second constructor
// rather than an overload resolved by argument shape.
func NewWithCellSize(cellSize int) (*Locustron, error) {
	return New(Config{Strategy: DefaultStrategyName, StrategyConfig: cellSize})
}

// Add registers obj at the given bbox. obj must be non-nil and not already
// registered; w and h must be non-negative and every coordinate finite.
// Returns obj on success so Add can be used inline at a call site.
func (l *Locustron) Add(obj any, x, y, w, h float64) (any, error) {
	if obj == nil {
		return nil, ErrInvalidInput
	}
	box := AABB{X: x, Y: y, W: w, H: h}
	if !box.IsFinite() || box.W < 0 || box.H < 0 {
		return nil, fmt.Errorf("locustron: add %v: %w", obj, ErrInvalidInput)
	}
	if l.strategy.Has(obj) {
		return nil, fmt.Errorf("locustron: add %v: %w", obj, ErrDuplicateRegistration)
	}

	l.strategy.Add(obj, box)
	l.count++
	invariant(l.count == l.strategy.Count(), "facade count diverged from strategy count after Add")
	return obj, nil
}

// Update replaces the bbox of a registered obj. w and h default to the
// object's current extent when nil, so callers can reposition without
// resizing.
func (l *Locustron) Update(obj any, x, y float64, w, h *float64) error {
	if obj == nil {
		return ErrInvalidInput
	}
	if !l.strategy.Has(obj) {
		return fmt.Errorf("locustron: update %v: %w", obj, ErrUnknownObject)
	}

	current := l.strategy.GetBBox(obj)
	box := AABB{X: x, Y: y, W: current.W, H: current.H}
	if w != nil {
		box.W = *w
	}
	if h != nil {
		box.H = *h
	}
	if !box.IsFinite() || box.W < 0 || box.H < 0 {
		return fmt.Errorf("locustron: update %v: %w", obj, ErrInvalidInput)
	}

	l.strategy.Update(obj, box)
	return nil
}

// Remove unregisters obj and all of its node handles.
func (l *Locustron) Remove(obj any) error {
	if obj == nil {
		return ErrInvalidInput
	}
	if !l.strategy.Has(obj) {
		return fmt.Errorf("locustron: remove %v: %w", obj, ErrUnknownObject)
	}

	l.strategy.Remove(obj)
	l.count--
	invariant(l.count == l.strategy.Count(), "facade count diverged from strategy count after Remove")
	return nil
}

// Query returns every registered object whose current bbox's cell
// rectangle intersects the query rectangle's cell rectangle, deduplicated,
// in unspecified order. filter, if non-nil, is applied to every candidate;
// rejected identities are still marked visited (never re-tested) but are
// excluded from the result. w and h must be positive.
func (l *Locustron) Query(x, y, w, h float64, filter func(obj any) bool) ([]any, error) {
	box := AABB{X: x, Y: y, W: w, H: h}
	if !box.IsFinite() {
		return nil, ErrInvalidInput
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidExtent
	}

	return l.strategy.Query(box, filter), nil
}

// GetBBox returns the current bbox of a registered obj.
func (l *Locustron) GetBBox(obj any) (AABB, error) {
	if obj == nil {
		return AABB{}, ErrInvalidInput
	}
	if !l.strategy.Has(obj) {
		return AABB{}, fmt.Errorf("locustron: get bbox %v: %w", obj, ErrUnknownObject)
	}
	return l.strategy.GetBBox(obj), nil
}

// Count returns the number of currently registered objects.
func (l *Locustron) Count() int {
	return l.count
}

// Clear empties the index. All node handles held by the strategy are
// invalidated.
func (l *Locustron) Clear() {
	l.strategy.Clear()
	l.count = 0
	invariant(l.strategy.Count() == 0, "strategy count non-zero after Clear")
}

// GetStrategyInfo returns the active strategy's name, description,
// object count, effective configuration, and statistics.
func (l *Locustron) GetStrategyInfo() StrategyInfo {
	return l.strategy.Info()
}
