// Package viewport holds the pan/zoom state of the timeline and the
// operations that change it.
package viewport

import (
	"github.com/ja-he/annales/internal/scale"
)

const (
	// DefaultMinScale is the smallest zoom factor (fully zoomed out).
	DefaultMinScale = 1.0
	// DefaultMaxScale is the largest zoom factor.
	DefaultMaxScale = 100.0
	// DefaultFactor is the zoom step of ZoomIn and ZoomOut.
	DefaultFactor = 1.5
)

// Transform is the pan offset (X, Y in pixels) and zoom factor K applied on
// top of the base scale, i.E. translate(X,Y) scale(K).
type Transform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Identity is the untransformed view.
var Identity = Transform{X: 0, Y: 0, K: 1}

// Apply composes the transform with a base scale.
func (t Transform) Apply(base scale.Scale) scale.Zoomed {
	return scale.Zoomed{Base: base, X: t.X, K: t.K}
}

// Engine owns a single Transform and is the only way to change it.
//
// K stays within [MinScale, MaxScale] on every path; X and Y are
// unconstrained so content can be dragged past its ends.
type Engine struct {
	minScale, maxScale float64
	factor             float64

	t Transform
}

// NewEngine returns an engine at the identity transform.
// Invalid extents (non-positive or inverted) fall back to the defaults.
func NewEngine(minScale, maxScale, factor float64) *Engine {
	if minScale <= 0 || maxScale < minScale {
		minScale, maxScale = DefaultMinScale, DefaultMaxScale
	}
	if factor <= 1 {
		factor = DefaultFactor
	}
	e := &Engine{minScale: minScale, maxScale: maxScale, factor: factor}
	e.Reset()
	return e
}

// NewDefaultEngine returns an engine with the default extent and factor.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultMinScale, DefaultMaxScale, DefaultFactor)
}

// clamp is the single scale-extent check.
func (e *Engine) clamp(k float64) float64 {
	switch {
	case k < e.minScale:
		return e.minScale
	case k > e.maxScale:
		return e.maxScale
	default:
		return k
	}
}

// Transform returns the current transform by value.
func (e *Engine) Transform() Transform { return e.t }

// ScaleExtent returns the allowed range of K.
func (e *Engine) ScaleExtent() (min, max float64) { return e.minScale, e.maxScale }

// ZoomIn multiplies K by the zoom factor.
func (e *Engine) ZoomIn() { e.ZoomBy(e.factor) }

// ZoomOut divides K by the zoom factor.
func (e *Engine) ZoomOut() { e.ZoomBy(1 / e.factor) }

// ZoomBy multiplies K by f, leaving the pan untouched.
func (e *Engine) ZoomBy(f float64) {
	e.t.K = e.clamp(e.t.K * f)
}

// ZoomInAround zooms in by the zoom factor around pixel px.
func (e *Engine) ZoomInAround(px float64) { e.ZoomAround(e.factor, px) }

// ZoomOutAround zooms out by the zoom factor around pixel px.
func (e *Engine) ZoomOutAround(px float64) { e.ZoomAround(1/e.factor, px) }

// ZoomAround multiplies K by f while keeping the content at pixel px where
// it is, as a wheel or pinch gesture does.
func (e *Engine) ZoomAround(f, px float64) {
	k := e.clamp(e.t.K * f)
	contentX := (px - e.t.X) / e.t.K
	e.t.X = px - contentX*k
	e.t.K = k
}

// ZoomTo sets the transform; K is clamped, X and Y are taken as given.
func (e *Engine) ZoomTo(x, y, k float64) {
	e.t = Transform{X: x, Y: y, K: e.clamp(k)}
}

// PanBy moves the content by the given pixel offsets.
func (e *Engine) PanBy(dx, dy float64) {
	e.t.X += dx
	e.t.Y += dy
}

// Reset returns to the identity transform (the whole timeline in view).
func (e *Engine) Reset() {
	e.ZoomTo(Identity.X, Identity.Y, Identity.K)
}

// GoToYear pans so that the year is at the viewport center, keeping K.
//
// The year's pixel is taken from the unzoomed base scale, so that the
// render-time translate(X,Y) scale(K) puts it at the center for any K.
func (e *Engine) GoToYear(base scale.Scale, viewportWidth, year float64) {
	center := viewportWidth / 2
	e.ZoomTo(center-base.Forward(year)*e.t.K, e.t.Y, e.t.K)
}

// ScrubTo is GoToYear with the year clamped into the timeline's domain.
func (e *Engine) ScrubTo(base scale.Scale, viewportWidth, year float64) {
	e.GoToYear(base, viewportWidth, scale.ClampYear(year))
}

// Recenter moves the middle of the timeline to the viewport center.
func (e *Engine) Recenter(base scale.Scale, viewportWidth float64) {
	e.GoToYear(base, viewportWidth, (scale.MinYear+scale.MaxYear)/2.0)
}

// CenterYear returns the year currently at the viewport center.
func (e *Engine) CenterYear(base scale.Scale, viewportWidth float64) float64 {
	return e.t.Apply(base).Invert(viewportWidth / 2)
}
