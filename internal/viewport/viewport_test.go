package viewport_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ja-he/annales/internal/scale"
	"github.com/ja-he/annales/internal/viewport"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestZoomClamp(t *testing.T) {
	t.Run("zoom in up to the maximum", func(t *testing.T) {
		e := viewport.NewDefaultEngine()
		e.ZoomTo(0, 0, 50)
		e.ZoomIn()
		if k := e.Transform().K; !approxEqual(k, 75) {
			t.Errorf("expected 75, got %f", k)
		}
		e.ZoomIn()
		if k := e.Transform().K; k != 100 {
			t.Errorf("expected clamp to 100, got %f", k)
		}
	})

	t.Run("zoom to is clamped", func(t *testing.T) {
		e := viewport.NewDefaultEngine()
		e.ZoomTo(10, 20, 0.1)
		if tf := e.Transform(); tf.K != 1 || tf.X != 10 || tf.Y != 20 {
			t.Errorf("unexpected transform %+v", tf)
		}
		e.ZoomTo(0, 0, 1000)
		if k := e.Transform().K; k != 100 {
			t.Errorf("expected 100, got %f", k)
		}
	})

	t.Run("any sequence stays in extent", func(t *testing.T) {
		e := viewport.NewEngine(1, 20, 1.5)
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			switch r.Intn(4) {
			case 0:
				e.ZoomIn()
			case 1:
				e.ZoomOut()
			case 2:
				e.ZoomTo(r.Float64()*100, 0, r.Float64()*50)
			case 3:
				e.ZoomAround(r.Float64()*4, r.Float64()*1000)
			}
			if k := e.Transform().K; k < 1 || k > 20 {
				t.Fatalf("step %d: k %f out of extent", i, k)
			}
		}
	})

	t.Run("invalid extents fall back to defaults", func(t *testing.T) {
		min, max := viewport.NewEngine(5, 2, 0.5).ScaleExtent()
		if min != viewport.DefaultMinScale || max != viewport.DefaultMaxScale {
			t.Errorf("unexpected extent [%f, %f]", min, max)
		}
	})
}

func TestPanAndReset(t *testing.T) {
	e := viewport.NewDefaultEngine()
	e.PanBy(-5000, 30)
	if tf := e.Transform(); tf.X != -5000 || tf.Y != 30 {
		t.Errorf("expected pan to be unconstrained, got %+v", tf)
	}
	e.ZoomIn()
	e.Reset()
	if tf := e.Transform(); tf != viewport.Identity {
		t.Errorf("expected identity, got %+v", tf)
	}
}

func TestGoToYear(t *testing.T) {
	const width = 1220
	base := scale.New(width)

	for _, k := range []float64{1, 3, 10, 100} {
		e := viewport.NewDefaultEngine()
		e.ZoomTo(123, 0, k)

		e.GoToYear(base, width, -43)
		first := e.Transform()
		if center := e.CenterYear(base, width); !approxEqual(center, -43) {
			t.Errorf("k=%f: expected center -43, got %f", k, center)
		}

		e.GoToYear(base, width, -43)
		if second := e.Transform(); !approxEqual(first.X, second.X) || first.K != second.K {
			t.Errorf("k=%f: repeated navigation moved the view (%+v, %+v)", k, first, second)
		}
	}

	t.Run("scrub clamps", func(t *testing.T) {
		e := viewport.NewDefaultEngine()
		e.ZoomTo(0, 0, 4)
		e.ScrubTo(base, width, 3000)
		if center := e.CenterYear(base, width); !approxEqual(center, scale.MaxYear) {
			t.Errorf("expected center %d, got %f", scale.MaxYear, center)
		}
	})

	t.Run("recenter", func(t *testing.T) {
		e := viewport.NewDefaultEngine()
		e.ZoomTo(0, 0, 2)
		e.Recenter(base, width)
		if center := e.CenterYear(base, width); !approxEqual(center, 472.5) {
			t.Errorf("expected center 472.5, got %f", center)
		}
	})
}

func TestZoomAround(t *testing.T) {
	const width = 1220
	base := scale.New(width)
	e := viewport.NewDefaultEngine()
	e.ZoomTo(-200, 0, 2)

	px := 400.0
	before := e.Transform().Apply(base).Invert(px)
	e.ZoomAround(1.5, px)
	after := e.Transform().Apply(base).Invert(px)

	if !approxEqual(before, after) {
		t.Errorf("expected year %f to stay at pixel %f, got %f", before, px, after)
	}
	if k := e.Transform().K; !approxEqual(k, 3) {
		t.Errorf("expected k 3, got %f", k)
	}
}

func TestStepZoomAround(t *testing.T) {
	// a factor of at most 1 falls back to the default for every zoom path
	e := viewport.NewEngine(1, 100, 0.8)

	e.ZoomIn()
	if k := e.Transform().K; !approxEqual(k, 1.5) {
		t.Errorf("expected key zoom to k 1.5, got %f", k)
	}
	e.ZoomInAround(600)
	if k := e.Transform().K; !approxEqual(k, 2.25) {
		t.Errorf("expected wheel zoom to k 2.25, got %f", k)
	}
	e.ZoomOutAround(600)
	if k := e.Transform().K; !approxEqual(k, 1.5) {
		t.Errorf("expected wheel zoom back to k 1.5, got %f", k)
	}
}
