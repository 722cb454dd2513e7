// Package util holds small text and geometry helpers for the terminal UI.
package util

import (
	"strings"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle for the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns whether the cell lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt shortens s to at most length runes, marking a cut with "...".
func TruncateAt(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length <= 3:
		return string(r[:max(length, 0)])
	default:
		return string(append(r[:length-3], []rune("...")...))
	}
}

// PadCenter centers s in a string of the given width.
// Longer strings are returned unchanged.
func PadCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// Wrap breaks text into lines of at most width runes, breaking at spaces
// where possible. Existing line breaks are kept.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := []rune{}
		for _, word := range strings.Fields(paragraph) {
			w := []rune(word)
			for len(w) > width {
				if len(line) > 0 {
					lines = append(lines, string(line))
					line = []rune{}
				}
				lines = append(lines, string(w[:width]))
				w = w[width:]
			}
			switch {
			case len(line) == 0:
				line = append(line, w...)
			case len(line)+1+len(w) <= width:
				line = append(append(line, ' '), w...)
			default:
				lines = append(lines, string(line))
				line = append([]rune{}, w...)
			}
		}
		lines = append(lines, string(line))
	}
	return lines
}
