// Package export writes composed frames to image files.
package export

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/layout"
)

// Options are the colors and font size used for everything that is not
// colored by its lane.
type Options struct {
	Background string
	AxisColor  string
	TextColor  string
	FontSize   float64
}

// DefaultOptions are used for any option left empty.
var DefaultOptions = Options{
	Background: "#ffffff",
	AxisColor:  "#333333",
	TextColor:  "#222222",
	FontSize:   12,
}

func (o Options) withDefaults() Options {
	if o.Background == "" {
		o.Background = DefaultOptions.Background
	}
	if o.AxisColor == "" {
		o.AxisColor = DefaultOptions.AxisColor
	}
	if o.TextColor == "" {
		o.TextColor = DefaultOptions.TextColor
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultOptions.FontSize
	}
	return o
}

// fallbackColor is used for lanes without a (valid) color.
const fallbackColor = "#888888"

// laneColor returns the lane's color normalized to "#rrggbb".
func laneColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	return c.Hex()
}

// tickLength is the length of a tick line below the axis.
const tickLength = 6

// axisLine is the y coordinate of the axis line within the frame.
func axisLine(f *frame.Frame) float64 {
	return f.AxisY() + layout.AxisHeight/4
}
