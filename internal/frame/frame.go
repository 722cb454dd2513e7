// Package frame runs one render pass: from a state snapshot and the loaded
// data it computes everything a renderer draws.
package frame

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/axis"
	"github.com/ja-he/annales/internal/layout"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/scale"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/viewport"
)

// Frame is the geometry of one render pass, in screen pixels.
type Frame struct {
	Width       float64            `json:"width"`
	TotalHeight float64            `json:"totalHeight"`
	Transform   viewport.Transform `json:"transform"`

	VisibleMin float64 `json:"visibleMin"`
	VisibleMax float64 `json:"visibleMax"`
	CenterYear float64 `json:"centerYear"`

	Ticks []axis.Tick      `json:"ticks"`
	Bands []layout.Band    `json:"bands"`
	Rows  []layout.LaneRow `json:"rows"`
	Shown []*model.Event   `json:"-"`
}

// AxisY is the top of the axis, which sits below the lanes.
func (f *Frame) AxisY() float64 {
	return f.TotalHeight - layout.AxisHeight
}

// Compose computes the frame for the snapshot.
// Only events passing the snapshot's filter are laid out.
func Compose(snap state.Snapshot, bundle *model.Bundle) Frame {
	zoomed := snap.Scale()
	visibleMin, visibleMax := scale.VisibleDomain(zoomed)

	shown := bundle.SortedEvents(snap.Filter)
	engine := layout.Engine{
		Scale:    zoomed,
		OffsetY:  snap.Transform.Y,
		Selected: snap.SelectedEventID,
	}
	totalHeight := layout.TotalHeight(len(bundle.Lanes))

	f := Frame{
		Width:       snap.ViewportWidth,
		TotalHeight: totalHeight,
		Transform:   snap.Transform,
		VisibleMin:  visibleMin,
		VisibleMax:  visibleMax,
		CenterYear:  snap.CenterYear(),
		Ticks:       axis.Plan(zoomed),
		Bands:       engine.Eras(bundle.Eras, totalHeight-layout.AxisHeight),
		Rows:        engine.Lanes(bundle.Lanes, shown),
		Shown:       shown,
	}

	log.Debug().
		Float64("k", snap.Transform.K).
		Int("ticks", len(f.Ticks)).
		Int("events", len(shown)).
		Msg("composed frame")
	return f
}

// Hit returns the ID of the event drawn at the given point, preferring
// markers over spans and later lanes' shapes over earlier ones when shapes
// overlap.
func (f *Frame) Hit(x, y float64) (model.EventID, bool) {
	var spanHit model.EventID
	for i := len(f.Rows) - 1; i >= 0; i-- {
		shapes := f.Rows[i].Shapes
		for j := len(shapes) - 1; j >= 0; j-- {
			if !shapes[j].Contains(x, y) {
				continue
			}
			if shapes[j].Kind == layout.Marker {
				return shapes[j].EventID, true
			}
			if spanHit == "" {
				spanHit = shapes[j].EventID
			}
		}
	}
	return spanHit, spanHit != ""
}

// ShownIDs returns the IDs of the shown events in date order.
func (f *Frame) ShownIDs() []model.EventID {
	ids := make([]model.EventID, 0, len(f.Shown))
	for _, e := range f.Shown {
		ids = append(ids, e.ID)
	}
	return ids
}

// Shape returns the shape of the event, if it was laid out.
func (f *Frame) Shape(id model.EventID) (*layout.Shape, bool) {
	for i := range f.Rows {
		for j := range f.Rows[i].Shapes {
			if f.Rows[i].Shapes[j].EventID == id {
				return &f.Rows[i].Shapes[j], true
			}
		}
	}
	return nil, false
}

// YearAt returns the (fractional) year drawn at pixel x.
func (f *Frame) YearAt(x float64) float64 {
	return f.Transform.Apply(scale.New(f.Width)).Invert(x)
}
