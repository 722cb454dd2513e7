package panes

import (
	"fmt"
	"math"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// StatusPane is a status bar showing the visible range of years, the zoom
// level, the active tour and the search query.
type StatusPane struct {
	ui.LeafPane

	snapshot func() state.Snapshot
	bundle   *model.Bundle
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	bgStyle := p.Stylesheet.Status
	emphStyle := bgStyle.DefaultEmphasized()
	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	snap := p.snapshot()
	zoomed := snap.Scale()
	visibleMin := zoomed.Invert(0)
	visibleMax := zoomed.Invert(snap.ViewportWidth)

	left := fmt.Sprintf(" %s - %s ", yearString(visibleMin), yearString(visibleMax))
	p.Renderer.DrawText(x, y, len([]rune(left)), 1, emphStyle, left)

	middle := p.tourString(snap)
	if middle == "" && snap.Filter.Query != "" {
		middle = "/" + snap.Filter.Query
	}
	middle = util.TruncateAt(middle, max(w-2*len([]rune(left)), 0))
	p.Renderer.DrawText(x+(w-len([]rune(middle)))/2, y, len([]rune(middle)), 1, bgStyle.Italicized(), middle)

	right := fmt.Sprintf(" center %s  zoom %.2fx ", yearString(snap.CenterYear()), snap.Transform.K)
	p.Renderer.DrawText(x+w-len([]rune(right)), y, len([]rune(right)), 1, emphStyle, right)
}

func (p *StatusPane) tourString(snap state.Snapshot) string {
	if !snap.Tour.Playing {
		return ""
	}
	tour := p.bundle.TourByID(snap.Tour.TourID)
	if tour == nil {
		return ""
	}
	return fmt.Sprintf("tour: %s (%d/%d)", tour.Title, snap.Tour.StepIndex+1, len(tour.Steps))
}

// yearString formats a fractional coordinate as the display year it falls in.
func yearString(coordinate float64) string {
	return model.FormatYear(int(math.Floor(coordinate)))
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	snapshot func() state.Snapshot,
	bundle *model.Bundle,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		snapshot: snapshot,
		bundle:   bundle,
	}
}
