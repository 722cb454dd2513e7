// Package state holds the application state of a timeline session: the
// viewport (width and pan/zoom transform), the selection, the active tour and
// the event filter.
//
// Every field has exactly one way of being written, which is a Store method.
// Readers take a Snapshot and use only that for a whole render pass, so they
// never see a change half-way through.
package state

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/scale"
	"github.com/ja-he/annales/internal/viewport"
)

// DefaultViewportWidth is the width assumed until the first resize.
const DefaultViewportWidth = 1200

// TourState is the progress through a guided tour.
type TourState struct {
	TourID    string
	StepIndex int
	Playing   bool
}

// Snapshot is a consistent copy of the state at one point in time.
type Snapshot struct {
	Transform     viewport.Transform
	MinScale      float64
	MaxScale      float64
	ViewportWidth float64

	SelectedEventID model.EventID
	SelectedRange   *model.DateRange

	Tour   TourState
	Filter model.Filter
}

// BaseScale is the unzoomed scale for the snapshot's viewport width.
func (s *Snapshot) BaseScale() scale.Scale {
	return scale.New(s.ViewportWidth)
}

// Scale is the zoomed scale of the snapshot.
func (s *Snapshot) Scale() scale.Zoomed {
	return s.Transform.Apply(s.BaseScale())
}

// CenterYear is the year at the middle of the viewport.
func (s *Snapshot) CenterYear() float64 {
	return s.Scale().Invert(s.ViewportWidth / 2)
}

// Store is the single owner of the session state.
type Store struct {
	mtx sync.Mutex

	zoom          *viewport.Engine
	viewportWidth float64

	selectedEventID model.EventID
	selectedRange   *model.DateRange

	tour   TourState
	filter model.Filter

	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// NewStore returns a store with the given zoom engine and viewport width.
func NewStore(zoom *viewport.Engine, viewportWidth float64) *Store {
	if zoom == nil {
		zoom = viewport.NewDefaultEngine()
	}
	if viewportWidth <= 0 {
		viewportWidth = DefaultViewportWidth
	}
	return &Store{
		zoom:          zoom,
		viewportWidth: viewportWidth,
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// change. Subscribers are called in registration order, outside the lock.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		for i := range s.subscribers {
			if s.subscribers[i].id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() Snapshot {
	minScale, maxScale := s.zoom.ScaleExtent()
	var selectedRange *model.DateRange
	if s.selectedRange != nil {
		r := *s.selectedRange
		selectedRange = &r
	}
	return Snapshot{
		Transform:       s.zoom.Transform(),
		MinScale:        minScale,
		MaxScale:        maxScale,
		ViewportWidth:   s.viewportWidth,
		SelectedEventID: s.selectedEventID,
		SelectedRange:   selectedRange,
		Tour:            s.tour,
		Filter:          s.filter.Clone(),
	}
}

// update applies the mutation under the lock and then notifies subscribers.
func (s *Store) update(mutate func()) {
	s.mtx.Lock()
	mutate()
	snap := s.snapshot()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mtx.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

func (s *Store) base() scale.Scale { return scale.New(s.viewportWidth) }

// SetViewportWidth pushes a new viewport width (e.g. after a resize).
// The transform is left as it is.
func (s *Store) SetViewportWidth(width float64) {
	if width <= 0 {
		log.Warn().Float64("width", width).Msg("ignoring non-positive viewport width")
		return
	}
	s.update(func() { s.viewportWidth = width })
}

// ZoomIn zooms in by the engine's factor.
func (s *Store) ZoomIn() { s.update(s.zoom.ZoomIn) }

// ZoomOut zooms out by the engine's factor.
func (s *Store) ZoomOut() { s.update(s.zoom.ZoomOut) }

// ZoomInAround zooms in by one step keeping the content at pixel px in place.
func (s *Store) ZoomInAround(px float64) {
	s.update(func() { s.zoom.ZoomInAround(px) })
}

// ZoomOutAround zooms out by one step keeping the content at pixel px in
// place.
func (s *Store) ZoomOutAround(px float64) {
	s.update(func() { s.zoom.ZoomOutAround(px) })
}

// ZoomTo sets the transform (K clamped).
func (s *Store) ZoomTo(x, y, k float64) {
	s.update(func() { s.zoom.ZoomTo(x, y, k) })
}

// ZoomAround zooms by f keeping the content at pixel px in place.
func (s *Store) ZoomAround(f, px float64) {
	s.update(func() { s.zoom.ZoomAround(f, px) })
}

// PanBy pans by the given pixel offsets.
func (s *Store) PanBy(dx, dy float64) {
	s.update(func() { s.zoom.PanBy(dx, dy) })
}

// FitAll resets to the identity transform.
func (s *Store) FitAll() { s.update(s.zoom.Reset) }

// ScrubTo centers the given year, clamped into the timeline's domain.
func (s *Store) ScrubTo(year float64) {
	s.update(func() { s.zoom.ScrubTo(s.base(), s.viewportWidth, year) })
}

// Recenter centers the middle of the timeline.
func (s *Store) Recenter() {
	s.update(func() { s.zoom.Recenter(s.base(), s.viewportWidth) })
}

// SelectEvent selects an event and clears any selected range.
func (s *Store) SelectEvent(id model.EventID) {
	s.update(func() {
		s.selectedEventID = id
		s.selectedRange = nil
	})
}

// SelectRange selects a range and clears any selected event.
func (s *Store) SelectRange(r model.DateRange) {
	s.update(func() {
		s.selectedRange = &r
		s.selectedEventID = ""
	})
}

// ClearSelection clears the selected event and range.
func (s *Store) ClearSelection() {
	s.update(func() {
		s.selectedEventID = ""
		s.selectedRange = nil
	})
}

// FocusEvent selects the event and centers its start, optionally setting the
// zoom level first.
func (s *Store) FocusEvent(e *model.Event, zoomLevel *float64) {
	s.update(func() {
		if zoomLevel != nil {
			t := s.zoom.Transform()
			s.zoom.ZoomTo(t.X, t.Y, *zoomLevel)
		}
		s.zoom.GoToYear(s.base(), s.viewportWidth, model.ToCoordinate(e.Date))
		s.selectedEventID = e.ID
		s.selectedRange = nil
	})
}

// SetFilter replaces the event filter.
func (s *Store) SetFilter(f model.Filter) {
	s.update(func() { s.filter = f.Clone() })
}

// SetSearchQuery sets only the search query of the filter.
func (s *Store) SetSearchQuery(query string) {
	s.update(func() { s.filter.Query = query })
}

// ClearFilters removes all filtering.
func (s *Store) ClearFilters() {
	s.update(func() { s.filter = model.Filter{} })
}
