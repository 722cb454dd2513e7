// Package scale maps astronomical years onto horizontal pixel positions.
//
// The domain is fixed; only the pixel range follows the viewport width. Zoom
// and pan are not part of the scale, they are applied on top of it (see
// package viewport).
package scale

const (
	// MinYear is the first year of the timeline (509 BCE).
	MinYear = -508
	// MaxYear is the last year of the timeline (1453 CE).
	MaxYear = 1453

	// MarginLeft and MarginRight keep the domain ends off the viewport edges.
	MarginLeft  = 50
	MarginRight = 50
)

// Scale is the linear mapping from [MinYear, MaxYear] to
// [MarginLeft, width-MarginRight].
type Scale struct {
	rangeMin, rangeMax float64
}

// New returns the scale for the given viewport width in pixels.
func New(viewportWidth float64) Scale {
	return Scale{
		rangeMin: MarginLeft,
		rangeMax: viewportWidth - MarginRight,
	}
}

// Forward maps a year coordinate to a pixel position.
func (s Scale) Forward(year float64) float64 {
	return s.rangeMin + (year-MinYear)/(MaxYear-MinYear)*(s.rangeMax-s.rangeMin)
}

// Invert maps a pixel position back to a year coordinate.
// Invert is undefined for a degenerate (zero-width) range; it returns
// MinYear then.
func (s Scale) Invert(px float64) float64 {
	if s.rangeMax == s.rangeMin {
		return MinYear
	}
	return MinYear + (px-s.rangeMin)/(s.rangeMax-s.rangeMin)*(MaxYear-MinYear)
}

// Range returns the pixel range.
func (s Scale) Range() (min, max float64) {
	return s.rangeMin, s.rangeMax
}

// Domain returns the year domain.
func (s Scale) Domain() (min, max float64) {
	return MinYear, MaxYear
}

// PixelsPerYear is the slope of the mapping.
func (s Scale) PixelsPerYear() float64 {
	return (s.rangeMax - s.rangeMin) / (MaxYear - MinYear)
}

// Mapper maps year coordinates to pixels.
// Both Scale and Zoomed are Mappers.
type Mapper interface {
	Forward(year float64) float64
	Invert(px float64) float64
	Range() (min, max float64)
}

// Zoomed is a scale with a pan offset X and a zoom factor K applied on top,
// i.E. the composition of the base scale with translate(X) scale(K).
type Zoomed struct {
	Base Scale
	X, K float64
}

// Forward maps a year coordinate to a pixel position on screen.
func (z Zoomed) Forward(year float64) float64 {
	return z.Base.Forward(year)*z.K + z.X
}

// Invert maps a pixel position on screen to a year coordinate.
func (z Zoomed) Invert(px float64) float64 {
	return z.Base.Invert((px - z.X) / z.K)
}

// Range returns the pixel range of the base scale; the visible area does not
// change with zoom.
func (z Zoomed) Range() (min, max float64) {
	return z.Base.Range()
}

// VisibleDomain returns the years visible within the pixel range.
func VisibleDomain(m Mapper) (min, max float64) {
	rangeMin, rangeMax := m.Range()
	return m.Invert(rangeMin), m.Invert(rangeMax)
}

// ClampYear clamps a year into [MinYear, MaxYear].
func ClampYear(year float64) float64 {
	switch {
	case year < MinYear:
		return MinYear
	case year > MaxYear:
		return MaxYear
	default:
		return year
	}
}
