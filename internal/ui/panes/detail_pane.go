package panes

import (
	"fmt"
	"strings"

	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// DetailPane shows the selected event: its date, lane, summary and
// narrative, the people and places involved, its sources and, during a tour,
// the narration of the current step.
type DetailPane struct {
	ui.LeafPane

	snapshot func() state.Snapshot
	bundle   *model.Bundle

	scrollOffset int
}

type detailLine struct {
	style styling.DrawStyling
	text  string
}

// Draw draws this pane.
func (p *DetailPane) Draw() {
	x, y, w, h := p.Dimensions()
	style := p.Stylesheet.Detail
	if p.HasFocus() {
		style = style.DarkenedBG(10)
	}
	p.Renderer.DrawBox(x, y, w, h, style)

	const pad = 1
	lines := p.lines(style, w-2*pad)
	p.scrollOffset = max(min(p.scrollOffset, len(lines)-h), 0)
	for row := 0; row < h && p.scrollOffset+row < len(lines); row++ {
		line := lines[p.scrollOffset+row]
		p.Renderer.DrawText(x+pad, y+row, w-2*pad, 1, line.style, line.text)
	}
}

func (p *DetailPane) lines(style styling.DrawStyling, width int) []detailLine {
	snap := p.snapshot()
	e := p.bundle.EventByID(snap.SelectedEventID)
	if e == nil {
		if snap.SelectedRange != nil {
			return []detailLine{{style.DefaultEmphasized(), "Selected " + model.FormatRange(*snap.SelectedRange)}}
		}
		return []detailLine{{style.DefaultDimmed().Italicized(), "No event selected"}}
	}

	lines := []detailLine{}
	add := func(s styling.DrawStyling, text string) {
		for _, l := range util.Wrap(text, width) {
			lines = append(lines, detailLine{s, l})
		}
	}

	add(style.DefaultEmphasized().Bolded(), e.Title)
	meta := e.FormattedDate()
	if lane := p.bundle.LaneByID(e.CategoryID); lane != nil {
		meta += " | " + lane.Label
	}
	add(style.Italicized(), meta)
	if e.Date.CalendarNote != "" {
		add(style.DefaultDimmed(), e.Date.CalendarNote)
	}

	if narration := p.narration(snap, e.ID); narration != "" {
		lines = append(lines, detailLine{style, ""})
		add(style.Italicized(), narration)
	}

	if e.Summary != "" {
		lines = append(lines, detailLine{style, ""})
		add(style, e.Summary)
	}

	if e.Narrative != "" {
		lines = append(lines, detailLine{style, ""})
		add(style, e.Narrative)
	}

	if len(e.People) > 0 {
		names := make([]string, 0, len(e.People))
		for _, ref := range e.People {
			name := ref.PersonID
			if person := p.bundle.PersonByID(ref.PersonID); person != nil {
				name = person.Name
			}
			if ref.Role != "" {
				name += " (" + ref.Role + ")"
			}
			names = append(names, name)
		}
		lines = append(lines, detailLine{style, ""})
		add(style, "People: "+strings.Join(names, ", "))
	}

	if len(e.Places) > 0 {
		names := make([]string, 0, len(e.Places))
		var daylight string
		for _, ref := range e.Places {
			place := p.bundle.PlaceByID(ref.PlaceID)
			if place == nil {
				names = append(names, ref.PlaceID)
				continue
			}
			names = append(names, place.Name)
			if sun, ok := model.SunTimesAt(e.Date, place); ok && daylight == "" {
				daylight = fmt.Sprintf("At %s: %s", place.Name, sun)
			}
		}
		add(style, "Places: "+strings.Join(names, ", "))
		if daylight != "" {
			add(style.DefaultDimmed(), daylight)
		}
	}

	if len(e.Tags) > 0 {
		add(style.DefaultDimmed(), "Tags: "+strings.Join(e.Tags, ", "))
	}

	if len(e.Sources) > 0 {
		lines = append(lines, detailLine{style, ""})
		add(style.Bolded(), "Sources")
		for i := range e.Sources {
			add(style, fmt.Sprintf("%d. %s", i+1, e.Sources[i].Citation()))
			if e.Sources[i].URL != "" {
				add(style.DefaultDimmed(), e.Sources[i].URL)
			}
		}
	}
	return lines
}

func (p *DetailPane) narration(snap state.Snapshot, id model.EventID) string {
	step, ok := snap.Tour.CurrentStep(p.bundle.TourByID(snap.Tour.TourID))
	if !ok || step.EventID != id {
		return ""
	}
	return step.Narration
}

// ScrollUp scrolls the content up by one line.
func (p *DetailPane) ScrollUp() {
	if p.scrollOffset > 0 {
		p.scrollOffset--
	}
}

// ScrollDown scrolls the content down by one line.
// The offset is clamped to the content on the next draw.
func (p *DetailPane) ScrollDown() { p.scrollOffset++ }

// ResetScroll scrolls back to the top, e.g. when the selection changes.
func (p *DetailPane) ResetScroll() { p.scrollOffset = 0 }

// NewDetailPane constructs and returns a new DetailPane.
func NewDetailPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	visible func() bool,
	snapshot func() state.Snapshot,
	bundle *model.Bundle,
) *DetailPane {
	return &DetailPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        visible,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		snapshot: snapshot,
		bundle:   bundle,
	}
}
