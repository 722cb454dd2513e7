package ui

import (
	"math"

	"github.com/ja-he/annales/internal/layout"
)

// Grid maps the pixel geometry of a frame onto terminal cells.
// Horizontally a column is PixelsPerColumn pixels wide; vertically every lane
// takes RowsPerLane rows.
type Grid struct {
	PixelsPerColumn float64
	RowsPerLane     int
}

// DefaultRowsPerLane are a label row and a shape row.
const DefaultRowsPerLane = 2

// Column returns the column containing pixel x.
func (g Grid) Column(x float64) int {
	return int(math.Floor(x / g.PixelsPerColumn))
}

// ColumnCenter returns the pixel at the center of the column.
func (g Grid) ColumnCenter(col int) float64 {
	return (float64(col) + 0.5) * g.PixelsPerColumn
}

// Width returns the pixel width of the given number of columns.
func (g Grid) Width(cols int) float64 {
	return float64(cols) * g.PixelsPerColumn
}

// Row returns the first row of a lane row with its top at laneY pixels.
func (g Grid) Row(laneY float64) int {
	return int(math.Floor(laneY / layout.LaneHeight * float64(g.RowsPerLane)))
}
