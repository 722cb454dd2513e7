package control

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/control/action"
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/layout"
	"github.com/ja-he/annales/internal/model"
)

// DefaultTimelineBindings binds keys to the actions of TimelineActions.
var DefaultTimelineBindings = map[input.Keyspec]string{
	"+":       "zoom-in",
	"=":       "zoom-in",
	"-":       "zoom-out",
	"h":       "pan-left",
	"l":       "pan-right",
	"<left>":  "pan-left",
	"<right>": "pan-right",
	"K":       "pan-up",
	"J":       "pan-down",
	"0":       "fit-all",
	"c":       "recenter",
	"j":       "select-next",
	"k":       "select-prev",
	"<home>":  "select-first",
	"<end>":   "select-last",
	"G":       "select-last",
	"f":       "focus-selected",
	"<esc>":   "clear-selection",
	"t":       "tour-next",
	"T":       "tour-prev",
	"X":       "tour-exit",
	"<c-l>":   "clear-filters",
}

// TimelineActions returns the named actions on the session's timeline state.
func TimelineActions(d *ControlData) action.Registry {
	simple := func(explanation string, f func()) action.Action {
		return action.NewSimple(func() string { return explanation }, f)
	}
	return action.Registry{
		"zoom-in":         simple("zoom in", d.Store.ZoomIn),
		"zoom-out":        simple("zoom out", d.Store.ZoomOut),
		"pan-left":        simple("pan towards earlier years", func() { d.Store.PanBy(d.PanStep, 0) }),
		"pan-right":       simple("pan towards later years", func() { d.Store.PanBy(-d.PanStep, 0) }),
		"pan-up":          simple("scroll lanes up", func() { d.Store.PanBy(0, layout.LaneHeight) }),
		"pan-down":        simple("scroll lanes down", func() { d.Store.PanBy(0, -layout.LaneHeight) }),
		"fit-all":         simple("fit the whole timeline", d.Store.FitAll),
		"recenter":        simple("center the middle of the timeline", d.Store.Recenter),
		"select-next":     simple("select next event", func() { d.Store.SelectNext(d.ShownIDs()); d.centerSelected() }),
		"select-prev":     simple("select previous event", func() { d.Store.SelectPrev(d.ShownIDs()); d.centerSelected() }),
		"select-first":    simple("select first event", func() { d.Store.SelectFirst(d.ShownIDs()); d.centerSelected() }),
		"select-last":     simple("select last event", func() { d.Store.SelectLast(d.ShownIDs()); d.centerSelected() }),
		"focus-selected":  simple("center the selected event", d.centerSelected),
		"clear-selection": simple("clear selection", d.Store.ClearSelection),
		"tour-next":       simple("start tour or go to its next step", d.TourNext),
		"tour-prev":       simple("go to previous tour step", d.TourPrev),
		"tour-exit":       simple("exit tour", d.Store.ExitTour),
		"clear-filters":   simple("clear search and filters", d.Store.ClearFilters),
	}
}

// centerSelected centers the selected event, keeping the zoom level.
func (d *ControlData) centerSelected() {
	if e := d.SelectedEvent(); e != nil {
		d.Store.FocusEvent(e, nil)
	}
}

// TourNext starts the first tour if none is playing and otherwise advances
// it. Advancing past the last step ends the tour.
func (d *ControlData) TourNext() {
	snap := d.Store.Snapshot()
	if !snap.Tour.Playing {
		if len(d.Bundle.Tours) == 0 {
			log.Info().Msg("no tours to start")
			return
		}
		d.Store.StartTour(d.Bundle.Tours[0].ID)
	} else {
		d.Store.NextStep()
	}
	d.focusTourStep()
}

// TourPrev goes back one step of the playing tour.
func (d *ControlData) TourPrev() {
	if !d.Store.Snapshot().Tour.Playing {
		return
	}
	d.Store.PrevStep()
	d.focusTourStep()
}

// StartTourAt starts the tour at the given (zero-based) step and focuses the
// step's event.
func (d *ControlData) StartTourAt(tourID string, step int) error {
	tour := d.Bundle.TourByID(tourID)
	if tour == nil {
		return fmt.Errorf("no tour '%s'", tourID)
	}
	if step < 0 || step >= len(tour.Steps) {
		return fmt.Errorf("tour '%s' has no step %d (it has %d)", tourID, step+1, len(tour.Steps))
	}
	d.Store.StartTour(tourID)
	d.Store.JumpToStep(step)
	d.focusTourStep()
	return nil
}

// SelectEra selects the date range of the era band with the given ID.
func (d *ControlData) SelectEra(eraID string) {
	era := d.Bundle.EraByID(eraID)
	if era == nil {
		log.Debug().Str("era", eraID).Msg("no era to select")
		return
	}
	d.Store.SelectRange(era.Range())
}

// focusTourStep focuses the current step's event at the step's zoom level,
// or ends the tour when it has run out of steps.
func (d *ControlData) focusTourStep() {
	snap := d.Store.Snapshot()
	step, ok := snap.Tour.CurrentStep(d.Bundle.TourByID(snap.Tour.TourID))
	if !ok {
		log.Debug().Str("tour", snap.Tour.TourID).Int("step", snap.Tour.StepIndex).Msg("tour finished")
		d.Store.ExitTour()
		return
	}
	e := d.Bundle.EventByID(step.EventID)
	if e == nil {
		log.Warn().Str("tour", snap.Tour.TourID).Str("event", step.EventID).Msg("tour step refers to unknown event")
		return
	}
	d.Store.FocusEvent(e, step.ZoomLevel)
}

// Bind resolves the action names of the bindings against the registry.
// Configured bindings are applied over the defaults; binding a key to "" or
// "none" removes it.
func Bind(
	registry action.Registry,
	defaults map[input.Keyspec]string,
	configured map[string]string,
) (map[input.Keyspec]action.Action, error) {
	names := make(map[input.Keyspec]string, len(defaults)+len(configured))
	for spec, name := range defaults {
		names[spec] = name
	}
	for spec, name := range configured {
		names[input.Keyspec(spec)] = name
	}

	result := make(map[input.Keyspec]action.Action, len(names))
	for spec, name := range names {
		if name == "" || name == "none" {
			continue
		}
		a, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("key '%s' is bound to unknown action '%s'", spec, name)
		}
		result[spec] = a
	}
	return result, nil
}

// InvalidYearMessage is shown for year text that does not parse.
const InvalidYearMessage = "Invalid year. Please enter a year between 1 and 9999"

// GoToYearText parses the year text and centers the year, clamped into the
// timeline's domain. Malformed text is rejected with InvalidYearMessage and
// changes nothing.
func (d *ControlData) GoToYearText(text string) error {
	year, err := model.ParseYear(text)
	if err != nil {
		log.Debug().Err(err).Str("text", text).Msg("rejecting go-to-year input")
		return errors.New(InvalidYearMessage)
	}
	d.Store.ScrubTo(float64(year))
	return nil
}

// Search sets the search query; the empty query shows all events.
func (d *ControlData) Search(query string) error {
	d.Store.SetSearchQuery(query)
	return nil
}
