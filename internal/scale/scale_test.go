package scale_test

import (
	"math"
	"testing"

	"github.com/ja-he/annales/internal/scale"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScale(t *testing.T) {
	s := scale.New(1220)

	t.Run("domain ends at margins", func(t *testing.T) {
		if x := s.Forward(scale.MinYear); !approxEqual(x, 50) {
			t.Errorf("expected first year at 50, got %f", x)
		}
		if x := s.Forward(scale.MaxYear); !approxEqual(x, 1170) {
			t.Errorf("expected last year at 1170, got %f", x)
		}
	})

	t.Run("invert is the inverse", func(t *testing.T) {
		for _, year := range []float64{-508, -43.5, 0, 476, 1453} {
			if result := s.Invert(s.Forward(year)); !approxEqual(result, year) {
				t.Errorf("expected %f, got %f", year, result)
			}
		}
	})

	t.Run("range follows width, domain does not", func(t *testing.T) {
		wide := scale.New(2020)
		min, max := wide.Range()
		if min != 50 || max != 1970 {
			t.Errorf("unexpected range [%f, %f]", min, max)
		}
		dMin, dMax := wide.Domain()
		if dMin != scale.MinYear || dMax != scale.MaxYear {
			t.Errorf("unexpected domain [%f, %f]", dMin, dMax)
		}
		if !approxEqual(wide.PixelsPerYear(), 1920.0/1961) {
			t.Errorf("unexpected slope %f", wide.PixelsPerYear())
		}
	})

	t.Run("degenerate range", func(t *testing.T) {
		if year := scale.New(100).Invert(50); year != scale.MinYear {
			t.Errorf("expected MinYear for degenerate range, got %f", year)
		}
	})

	t.Run("visible domain unzoomed is the whole domain", func(t *testing.T) {
		min, max := scale.VisibleDomain(s)
		if !approxEqual(min, scale.MinYear) || !approxEqual(max, scale.MaxYear) {
			t.Errorf("unexpected visible domain [%f, %f]", min, max)
		}
	})
}

func TestZoomed(t *testing.T) {
	base := scale.New(1220)
	z := scale.Zoomed{Base: base, X: -300, K: 2}

	if x := z.Forward(0); !approxEqual(x, base.Forward(0)*2-300) {
		t.Errorf("unexpected forward %f", x)
	}
	if year := z.Invert(z.Forward(800)); !approxEqual(year, 800) {
		t.Errorf("expected 800, got %f", year)
	}

	min, max := scale.VisibleDomain(z)
	if !approxEqual(max-min, 1961.0/2) {
		t.Errorf("expected half the domain visible, got %f years", max-min)
	}
}

func TestClampYear(t *testing.T) {
	for in, expected := range map[float64]float64{-1000: -508, -508: -508, 0: 0, 1453: 1453, 3000: 1453} {
		if result := scale.ClampYear(in); result != expected {
			t.Errorf("%f: expected %f, got %f", in, expected, result)
		}
	}
}
