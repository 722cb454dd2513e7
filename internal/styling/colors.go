package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.Clamped().RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0

	lightnessDelta := 1.0 - ltn
	newLightness := ltn + (lightnessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0

	darknessDelta := ltn
	newLightness := ltn - (darknessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}

// contrastingColor is black on light colors and white on dark ones.
func contrastingColor(color colorful.Color) colorful.Color {
	l, _, _ := color.Lab()
	if l > 0.6 {
		return black
	}
	return white
}
