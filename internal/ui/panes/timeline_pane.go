package panes

import (
	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/layout"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// AxisRows is the number of rows the axis takes at the bottom of the
// timeline pane: one for tick marks, one for labels.
const AxisRows = 2

const (
	markerGlyph = '●'
	tickGlyph   = '┬'
	axisGlyph   = '─'
)

// TimelinePane draws the lanes of a frame with their markers and spans, the
// era bands behind them and the year axis below them.
type TimelinePane struct {
	ui.LeafPane

	frame func() *frame.Frame
	grid  ui.Grid

	lanes *styling.LaneStyling
}

// Draw draws this pane.
func (p *TimelinePane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	f := p.frame()
	if f == nil {
		return
	}
	lanesHeight := h - AxisRows

	for i := range f.Bands {
		p.drawBand(x, y, lanesHeight, &f.Bands[i])
	}
	for i := range f.Rows {
		row := &f.Rows[i]
		top := y + p.grid.Row(row.Y)
		if top < y || top+p.grid.RowsPerLane > y+lanesHeight {
			continue
		}
		p.drawLane(x, top, w, row)
	}
	p.drawAxis(x, y+lanesHeight, w, f)
}

func (p *TimelinePane) drawBand(x, y, h int, b *layout.Band) {
	first := p.grid.Column(b.X)
	last := p.grid.Column(b.X + b.Width)
	if last < first {
		return
	}
	width := last - first + 1
	p.Renderer.DrawBox(x+first, y, width, h, p.Stylesheet.EraBand)
	label := util.TruncateAt(b.Era.Label, width)
	p.Renderer.DrawText(x+first+(width-len([]rune(label)))/2, y, len([]rune(label)), 1, p.Stylesheet.EraBand.Italicized(), label)
}

func (p *TimelinePane) drawLane(x, top, w int, row *layout.LaneRow) {
	for i := range row.Shapes {
		shape := &row.Shapes[i]
		style := p.lanes.Get(row.Lane.ID)
		if shape.Style.Selected {
			style = p.Stylesheet.Selected
		}
		first := p.grid.Column(shape.X)

		switch shape.Kind {
		case layout.Marker:
			p.Renderer.DrawText(x+first, top+1, 1, 1, style.Bolded(), string(markerGlyph))
		case layout.Span:
			last := p.grid.Column(shape.X + shape.Width)
			width := last - first + 1
			p.Renderer.DrawBox(x+first, top+1, width, 1, style)
			if shape.ShowLabel {
				p.Renderer.DrawText(x+first, top, width, 1, p.Stylesheet.Normal, util.TruncateAt(shape.Title, width))
			}
		}
	}

	label := util.TruncateAt(row.Lane.Label, w)
	p.Renderer.DrawText(x, top, len([]rune(label)), 1, p.Stylesheet.LaneLabel.Bolded(), label)
}

func (p *TimelinePane) drawAxis(x, y, w int, f *frame.Frame) {
	p.Renderer.DrawBox(x, y, w, AxisRows, p.Stylesheet.Axis)
	line := make([]rune, w)
	for i := range line {
		line[i] = axisGlyph
	}

	labelEnd := -1
	for _, tick := range f.Ticks {
		col := p.grid.Column(tick.X)
		if col < 0 || col >= w {
			continue
		}
		line[col] = tickGlyph

		labelWidth := len([]rune(tick.Label))
		start := col - labelWidth/2
		if start <= labelEnd {
			continue
		}
		p.Renderer.DrawText(x+start, y+1, labelWidth, 1, p.Stylesheet.Axis, tick.Label)
		labelEnd = start + labelWidth
	}
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Axis, string(line))
}

// GetPositionInfo returns the year under the column and the event drawn at
// the position, if any.
func (p *TimelinePane) GetPositionInfo(px, py int) ui.PositionInfo {
	x, y, _, h := p.Dimensions()
	f := p.frame()
	if f == nil {
		return ui.NoPanePositionInfo{}
	}

	col := px - x
	pixelX := p.grid.ColumnCenter(col)
	info := ui.TimelinePanePositionInfo{Year: f.YearAt(pixelX)}
	if py >= y+h-AxisRows {
		return info
	}
	for i := range f.Bands {
		if col >= p.grid.Column(f.Bands[i].X) && col <= p.grid.Column(f.Bands[i].X+f.Bands[i].Width) {
			info.EraID = f.Bands[i].Era.ID
		}
	}

	for i := range f.Rows {
		top := y + p.grid.Row(f.Rows[i].Y)
		if py < top || py >= top+p.grid.RowsPerLane {
			continue
		}
		info.LaneID = f.Rows[i].Lane.ID
		if id, ok := p.hitCell(&f.Rows[i], col); ok {
			info.EventID = id
		} else if id, ok := f.Hit(pixelX, f.Rows[i].Y+layout.MarkerYOffset); ok {
			info.EventID = id
		}
		break
	}
	return info
}

// hitCell returns the event drawn in the column of the lane row, the same way
// drawLane places it. A marker glyph wins over a span bar below it.
func (p *TimelinePane) hitCell(row *layout.LaneRow, col int) (model.EventID, bool) {
	var spanHit model.EventID
	for i := len(row.Shapes) - 1; i >= 0; i-- {
		shape := &row.Shapes[i]
		first := p.grid.Column(shape.X)
		switch shape.Kind {
		case layout.Marker:
			if first == col {
				return shape.EventID, true
			}
		case layout.Span:
			if spanHit == "" && col >= first && col <= p.grid.Column(shape.X+shape.Width) {
				spanHit = shape.EventID
			}
		}
	}
	return spanHit, spanHit != ""
}

// NewTimelinePane constructs and returns a new TimelinePane.
func NewTimelinePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	frame func() *frame.Frame,
	grid ui.Grid,
	lanes *styling.LaneStyling,
) *TimelinePane {
	return &TimelinePane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		frame: frame,
		grid:  grid,
		lanes: lanes,
	}
}
