package state_test

import (
	"math"
	"testing"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/viewport"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSelection(t *testing.T) {
	s := state.NewStore(nil, 1220)

	s.SelectEvent("actium")
	s.SelectRange(model.DateRange{Start: model.HistoricalDate{Year: -30}, End: model.HistoricalDate{Year: 14}})
	snap := s.Snapshot()
	if snap.SelectedEventID != "" || snap.SelectedRange == nil {
		t.Errorf("expected only a range selected, got event '%s' range %v", snap.SelectedEventID, snap.SelectedRange)
	}

	s.SelectEvent("actium")
	snap = s.Snapshot()
	if snap.SelectedEventID != "actium" || snap.SelectedRange != nil {
		t.Errorf("expected only an event selected, got event '%s' range %v", snap.SelectedEventID, snap.SelectedRange)
	}

	s.ClearSelection()
	snap = s.Snapshot()
	if snap.SelectedEventID != "" || snap.SelectedRange != nil {
		t.Error("expected nothing selected")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := state.NewStore(nil, 1220)
	s.SetFilter(model.Filter{Tags: []string{"war"}})
	s.SelectRange(model.DateRange{Start: model.HistoricalDate{Year: 1}})

	snap := s.Snapshot()
	snap.Filter.Tags[0] = "peace"
	snap.SelectedRange.Start.Year = 99

	fresh := s.Snapshot()
	if fresh.Filter.Tags[0] != "war" || fresh.SelectedRange.Start.Year != 1 {
		t.Error("changing a snapshot changed the store")
	}
}

func TestSubscribe(t *testing.T) {
	s := state.NewStore(nil, 1220)

	var calls []float64
	unsubscribe := s.Subscribe(func(snap state.Snapshot) { calls = append(calls, snap.Transform.K) })

	s.ZoomIn()
	s.ZoomOut()
	if len(calls) != 2 || !approxEqual(calls[0], 1.5) || !approxEqual(calls[1], 1) {
		t.Errorf("unexpected notifications %v", calls)
	}

	unsubscribe()
	s.ZoomIn()
	if len(calls) != 2 {
		t.Errorf("expected no notification after unsubscribing, got %d", len(calls))
	}
}

func TestViewportWidth(t *testing.T) {
	s := state.NewStore(viewport.NewDefaultEngine(), 0)
	if s.Snapshot().ViewportWidth != state.DefaultViewportWidth {
		t.Errorf("expected default width, got %f", s.Snapshot().ViewportWidth)
	}

	s.ZoomTo(-250, 12, 3)
	before := s.Snapshot().Transform
	s.SetViewportWidth(800)
	after := s.Snapshot()
	if after.Transform != before {
		t.Errorf("resize changed the transform from %+v to %+v", before, after.Transform)
	}
	if after.ViewportWidth != 800 {
		t.Errorf("expected width 800, got %f", after.ViewportWidth)
	}

	s.SetViewportWidth(-5)
	if s.Snapshot().ViewportWidth != 800 {
		t.Error("expected non-positive width to be ignored")
	}
}

func TestWheelZoom(t *testing.T) {
	s := state.NewStore(viewport.NewEngine(1, 100, 0.8), 1220)

	px := 300.0
	before := s.Snapshot()
	s.ZoomInAround(px)
	after := s.Snapshot()
	if !approxEqual(after.Transform.K, 1.5) {
		t.Errorf("expected wheel zoom in to k 1.5, got %f", after.Transform.K)
	}
	if !approxEqual(before.Scale().Invert(px), after.Scale().Invert(px)) {
		t.Errorf("expected the year under pixel %f to stay", px)
	}

	s.ZoomOutAround(px)
	if k := s.Snapshot().Transform.K; !approxEqual(k, 1) {
		t.Errorf("expected wheel zoom out to k 1, got %f", k)
	}
}

func TestNavigation(t *testing.T) {
	s := state.NewStore(nil, 1220)

	s.ZoomTo(0, 0, 4)
	s.ScrubTo(-43)
	snap := s.Snapshot()
	if !approxEqual(snap.CenterYear(), -43) {
		t.Errorf("expected center -43, got %f", snap.CenterYear())
	}

	s.ScrubTo(-3000)
	snap = s.Snapshot()
	if !approxEqual(snap.CenterYear(), -508) {
		t.Errorf("expected center -508, got %f", snap.CenterYear())
	}

	s.FitAll()
	if s.Snapshot().Transform != viewport.Identity {
		t.Error("expected identity after fit all")
	}

	zoom := 10.0
	e := &model.Event{ID: "actium", Date: model.HistoricalDate{Year: -30, Month: 9, Day: 2}}
	s.FocusEvent(e, &zoom)
	snap = s.Snapshot()
	if snap.Transform.K != 10 || snap.SelectedEventID != "actium" {
		t.Errorf("unexpected state after focus %+v", snap)
	}
	if !approxEqual(snap.CenterYear(), model.ToCoordinate(e.Date)) {
		t.Errorf("expected event centered, got %f", snap.CenterYear())
	}
}

func TestSelectionStepping(t *testing.T) {
	ids := []model.EventID{"a", "b", "c"}
	s := state.NewStore(nil, 1220)

	s.SelectPrev(ids)
	if s.Snapshot().SelectedEventID != "" {
		t.Error("expected no selection from stepping back with nothing selected")
	}
	s.SelectNext(ids)
	s.SelectNext(ids)
	s.SelectNext(ids)
	s.SelectNext(ids)
	if id := s.Snapshot().SelectedEventID; id != "c" {
		t.Errorf("expected stepping to stop at 'c', got '%s'", id)
	}
	s.SelectPrev(ids)
	if id := s.Snapshot().SelectedEventID; id != "b" {
		t.Errorf("expected 'b', got '%s'", id)
	}
	s.SelectFirst(ids)
	if id := s.Snapshot().SelectedEventID; id != "a" {
		t.Errorf("expected 'a', got '%s'", id)
	}
	s.SelectLast(ids)
	if id := s.Snapshot().SelectedEventID; id != "c" {
		t.Errorf("expected 'c', got '%s'", id)
	}
	s.SelectNext(nil)
	if id := s.Snapshot().SelectedEventID; id != "c" {
		t.Errorf("expected selection to survive an empty list, got '%s'", id)
	}
}

func TestTour(t *testing.T) {
	tour := &model.Tour{ID: "rise", Steps: []model.TourStep{{EventID: "a"}, {EventID: "b"}}}
	s := state.NewStore(nil, 1220)

	if _, ok := s.Snapshot().Tour.CurrentStep(tour); ok {
		t.Error("expected no step before starting")
	}

	s.StartTour("rise")
	s.PrevStep()
	step, ok := s.Snapshot().Tour.CurrentStep(tour)
	if !ok || step.EventID != "a" {
		t.Errorf("expected first step, got %v", step)
	}

	s.NextStep()
	s.NextStep()
	if _, ok := s.Snapshot().Tour.CurrentStep(tour); ok {
		t.Error("expected no step past the end")
	}

	s.JumpToStep(1)
	if step, ok := s.Snapshot().Tour.CurrentStep(tour); !ok || step.EventID != "b" {
		t.Errorf("expected second step, got %v", step)
	}
	if _, ok := s.Snapshot().Tour.CurrentStep(&model.Tour{ID: "other", Steps: tour.Steps}); ok {
		t.Error("expected no step for a different tour")
	}

	s.ExitTour()
	if s.Snapshot().Tour.Playing {
		t.Error("expected tour to have ended")
	}
}

func TestFilterUpdates(t *testing.T) {
	s := state.NewStore(nil, 1220)
	s.SetFilter(model.Filter{Tags: []string{"war"}, Query: "old"})
	s.SetSearchQuery("actium")
	f := s.Snapshot().Filter
	if f.Query != "actium" || len(f.Tags) != 1 {
		t.Errorf("unexpected filter %+v", f)
	}
	s.ClearFilters()
	if f := s.Snapshot().Filter; !f.IsEmpty() {
		t.Errorf("expected empty filter, got %+v", f)
	}
}
