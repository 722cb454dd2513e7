// Package axis plans the year ticks of the timeline axis.
//
// Tick intervals and label density come from fixed lookup tables rather than
// from measured label widths; the breakpoints are part of the look of the
// axis and must stay as they are.
package axis

import (
	"math"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/scale"
)

// CullMargin is how far (in pixels) past the range a tick may lie and still
// be emitted.
const CullMargin = 10

// Tick is a labeled tick on the axis.
type Tick struct {
	Year    int               `json:"year"`
	X       float64           `json:"x"`
	Label   string            `json:"label"`
	Display model.DisplayYear `json:"-"`
}

// Interval returns the tick interval in years for a visible span of years.
func Interval(span float64) int {
	switch {
	case span > 1000:
		return 100
	case span > 500:
		return 50
	case span > 200:
		return 25
	case span > 100:
		return 10
	case span > 50:
		return 5
	default:
		return 1
	}
}

// Generate returns every interval-aligned year covering [min, max].
func Generate(min, max float64, interval int) []int {
	i := float64(interval)
	start := int(math.Floor(min/i)) * interval
	end := int(math.Ceil(max/i)) * interval

	years := make([]int, 0, (end-start)/interval+1)
	for year := start; year <= end; year += interval {
		years = append(years, year)
	}
	return years
}

// keepAtZoom applies density culling for zoom factor k.
func keepAtZoom(year, interval int, k float64) bool {
	switch {
	case k < 2:
		return interval >= 100 || mod(year, interval*2) == 0
	case k < 5:
		return mod(year, interval) == 0
	default:
		return true
	}
}

// mod is the remainder with the sign of the divisor, so negative (BCE) years
// align the same way CE years do.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Plan returns the ticks to draw for the zoomed scale: interval picked from
// the visible span, thinned by zoom level, and culled to the pixel range.
func Plan(z scale.Zoomed) []Tick {
	min, max := scale.VisibleDomain(z)
	interval := Interval(max - min)
	rangeMin, rangeMax := z.Range()

	ticks := []Tick{}
	for _, year := range Generate(min, max, interval) {
		if !keepAtZoom(year, interval, z.K) {
			continue
		}
		x := z.Forward(float64(year))
		if x < rangeMin-CullMargin || x > rangeMax+CullMargin {
			continue
		}
		display := model.AstronomicalToDisplay(year)
		ticks = append(ticks, Tick{
			Year:    year,
			X:       x,
			Label:   display.String(),
			Display: display,
		})
	}
	return ticks
}
