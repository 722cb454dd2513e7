// Package layout turns events into the geometry they are drawn as: point
// markers or spans, placed in lane rows.
package layout

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/scale"
)

// Vertical layout constants, shared by everything computing heights.
const (
	AxisHeight    = 60
	LaneHeight    = 80
	MarkerYOffset = 40
	SpanHeight    = 20
	BottomPadding = 100

	// MinSpanWidth is the pixel width below which a span is drawn as a
	// marker so it stays visible and clickable.
	MinSpanWidth = 2
	// MinLabelWidth is the pixel width a span needs to show its title inline.
	MinLabelWidth = 50
)

// Presentation attributes; these never influence geometry.
const (
	MarkerRadius         = 6
	SelectedMarkerRadius = 8
	StrokeWidth          = 1
	SelectedStrokeWidth  = 2
	SpanCornerRadius     = 4
)

// TotalHeight is the content height for the given number of lanes.
func TotalHeight(nLanes int) float64 {
	return AxisHeight + float64(nLanes)*LaneHeight + BottomPadding
}

// LaneY is the top of the lane row at the given index.
func LaneY(index int) float64 {
	return float64(index) * LaneHeight
}

// ShapeKind is what an event is drawn as.
type ShapeKind string

const (
	Marker ShapeKind = "marker"
	Span   ShapeKind = "span"
)

// Style holds the presentation attributes of a shape.
type Style struct {
	Color       string  `json:"color"`
	Radius      float64 `json:"radius,omitempty"`
	Selected    bool    `json:"selected"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Shape is the renderable geometry of one event.
// A marker is centered at (X, Y); a span's top left corner is (X, Y).
type Shape struct {
	EventID   model.EventID `json:"eventId"`
	Title     string        `json:"title"`
	LaneID    string        `json:"laneId"`
	Kind      ShapeKind     `json:"kind"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Width     float64       `json:"width,omitempty"`
	Height    float64       `json:"height,omitempty"`
	ShowLabel bool          `json:"showLabel"`
	Style     Style         `json:"style"`
}

// Contains returns whether the point lies on the shape.
func (s *Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case Marker:
		dx, dy := x-s.X, y-s.Y
		return dx*dx+dy*dy <= s.Style.Radius*s.Style.Radius
	case Span:
		return x >= s.X && x <= s.X+s.Width && y >= s.Y && y <= s.Y+s.Height
	}
	return false
}

// LaneRow is a laid out lane.
type LaneRow struct {
	Lane   model.Lane `json:"lane"`
	Y      float64    `json:"y"`
	Shapes []Shape    `json:"shapes"`
}

// Engine lays out events against a scale.
type Engine struct {
	Scale scale.Mapper
	// OffsetY shifts all lane rows vertically (the vertical pan).
	OffsetY float64

	// Selected is the ID of the selected event, if any.
	Selected model.EventID
}

// Event lays out a single event in a lane row with its top at laneY.
// The second return value is false for events of unknown type.
func (e *Engine) Event(ev *model.Event, lane model.Lane, laneY float64) (Shape, bool) {
	selected := e.Selected != "" && e.Selected == ev.ID
	shape := Shape{
		EventID: ev.ID,
		Title:   ev.Title,
		LaneID:  lane.ID,
		Style:   style(lane.Color, selected),
	}

	switch {
	case ev.Type == model.EventPoint:
		shape.Kind = Marker
		shape.X = e.Scale.Forward(model.ToCoordinate(ev.Date))
		shape.Y = laneY + MarkerYOffset

	case ev.Type.IsSpan():
		startX := e.Scale.Forward(model.ToCoordinate(ev.Date))
		endX := e.Scale.Forward(model.ToCoordinate(ev.End()))
		width := endX - startX

		if width < MinSpanWidth {
			shape.Kind = Marker
			shape.X = startX
			shape.Y = laneY + MarkerYOffset
			break
		}
		shape.Kind = Span
		shape.X = startX
		shape.Y = laneY + MarkerYOffset - SpanHeight/2
		shape.Width = width
		shape.Height = SpanHeight
		shape.ShowLabel = width > MinLabelWidth
		shape.Style.Radius = 0

	default:
		log.Warn().Str("event", ev.ID).Str("type", string(ev.Type)).Msg("not laying out event of unknown type")
		return Shape{}, false
	}

	return shape, true
}

func style(color string, selected bool) Style {
	if selected {
		return Style{Color: color, Radius: SelectedMarkerRadius, Selected: true, StrokeWidth: SelectedStrokeWidth}
	}
	return Style{Color: color, Radius: MarkerRadius, StrokeWidth: StrokeWidth}
}

// Lanes buckets the events into lanes ordered by Lane.Order and lays them
// out row by row. Events in unknown lanes are skipped.
func (e *Engine) Lanes(lanes []model.Lane, events []*model.Event) []LaneRow {
	sorted := model.SortedLanes(lanes)
	rows := make([]LaneRow, len(sorted))
	index := make(map[string]int, len(sorted))
	for i, lane := range sorted {
		rows[i] = LaneRow{Lane: lane, Y: LaneY(i) + e.OffsetY, Shapes: []Shape{}}
		index[lane.ID] = i
	}

	for _, ev := range events {
		i, ok := index[ev.CategoryID]
		if !ok {
			log.Debug().Str("event", ev.ID).Str("category", ev.CategoryID).Msg("skipping event in unknown lane")
			continue
		}
		if shape, ok := e.Event(ev, rows[i].Lane, rows[i].Y); ok {
			rows[i].Shapes = append(rows[i].Shapes, shape)
		}
	}
	return rows
}

// Band is a laid out era band, spanning the full content height.
type Band struct {
	Era    model.EraBand `json:"era"`
	X      float64       `json:"x"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
}

// LabelX is the horizontal center of the band.
func (b *Band) LabelX() float64 { return b.X + b.Width/2 }

// Eras lays out era bands in order, each height high.
func (e *Engine) Eras(eras []model.EraBand, height float64) []Band {
	sorted := make([]model.EraBand, len(eras))
	copy(sorted, eras)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	bands := make([]Band, 0, len(sorted))
	for _, era := range sorted {
		startX := e.Scale.Forward(model.ToCoordinate(era.Start))
		endX := e.Scale.Forward(model.ToCoordinate(era.End))
		bands = append(bands, Band{Era: era, X: startX, Width: endX - startX, Height: height})
	}
	return bands
}
