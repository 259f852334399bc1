package viewport

// Rect describes a viewport: a world-space rectangle plus the symmetric
// margin applied to it before querying.
type Rect struct {
	X, Y       float64
	W, H       float64
	CullMargin float64
}

// DefaultX, DefaultY, DefaultW, and DefaultH are the defaults New applies
// when constructing a zero-value Rect.
const (
	DefaultX = 0
	DefaultY = 0
	DefaultW = 400
	DefaultH = 300
)

// DefaultCullMargin is the margin New applies; NewWide applies
// WideCullMargin instead.
const (
	DefaultCullMargin = 32
	WideCullMargin    = 64
)

// Stats are the cumulative statistics GetVisibleObjects refreshes on
// every call.
type Stats struct {
	TotalObjects   int
	VisibleObjects int
	CulledObjects  int
	CullRatio      float64
	QueryCount     int
}

// facade is the subset of *locustron.Locustron the viewport helper needs.
// Declaring it locally (rather than depending on the concrete type)
// keeps this package usable with any façade-shaped value, but in
// practice every caller passes a *locustron.Locustron.
type facade interface {
	Query(x, y, w, h float64, filter func(obj any) bool) ([]any, error)
	Count() int
}

// Viewport adapts a rectangular viewing region into repeated façade
// queries. It holds a non-owning reference to facade and never mutates
// the index.
type Viewport struct {
	facade facade
	rect   Rect
	stats  Stats
}

// New builds a Viewport bound to f, defaulting x=y=0, w=400, h=300,
// cull_margin=32 when rect is the zero value.
func New(f facade, rect Rect) *Viewport {
	if rect == (Rect{}) {
		rect = Rect{X: DefaultX, Y: DefaultY, W: DefaultW, H: DefaultH, CullMargin: DefaultCullMargin}
	}
	return &Viewport{facade: f, rect: rect}
}

// NewWide builds a Viewport the same way as New but with WideCullMargin
// as the default margin when rect.CullMargin is zero — the "convenience
// factory" with a higher default margin named in the design.
func NewWide(f facade, rect Rect) *Viewport {
	v := New(f, rect)
	if rect.CullMargin == 0 {
		v.rect.CullMargin = WideCullMargin
	}
	return v
}

// UpdateViewport repositions the viewport in place. w and h default to
// the current extent when nil, mirroring locustron.Locustron.Update's
// optional-dimension convention.
func (v *Viewport) UpdateViewport(x, y float64, w, h *float64) {
	v.rect.X = x
	v.rect.Y = y
	if w != nil {
		v.rect.W = *w
	}
	if h != nil {
		v.rect.H = *h
	}
}

// GetVisibleObjects issues one expanded query against the bound façade
// and refreshes stats. filter, if non-nil, is forwarded to Query
// unchanged.
func (v *Viewport) GetVisibleObjects(filter func(obj any) bool) ([]any, error) {
	m := v.rect.CullMargin
	hits, err := v.facade.Query(v.rect.X-m, v.rect.Y-m, v.rect.W+2*m, v.rect.H+2*m, filter)
	if err != nil {
		return nil, err
	}

	total := v.facade.Count()
	visible := len(hits)
	v.stats.TotalObjects = total
	v.stats.VisibleObjects = visible
	v.stats.CulledObjects = total - visible
	v.stats.CullRatio = float64(visible) / float64(max(total, 1))
	v.stats.QueryCount++

	return hits, nil
}

// IsPotentiallyVisible reports whether obj is among the result of a
// one-shot GetVisibleObjects call. It does not refresh the cumulative
// query_count beyond the single query it issues.
func (v *Viewport) IsPotentiallyVisible(obj any) (bool, error) {
	hits, err := v.GetVisibleObjects(nil)
	if err != nil {
		return false, err
	}
	for _, h := range hits {
		if h == obj {
			return true, nil
		}
	}
	return false, nil
}

// GetStats returns the statistics as of the last GetVisibleObjects call.
func (v *Viewport) GetStats() Stats {
	return v.stats
}

// GetViewport returns the current viewport rectangle.
func (v *Viewport) GetViewport() Rect {
	return v.rect
}
