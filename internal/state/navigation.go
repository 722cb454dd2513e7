package state

import (
	"github.com/ja-he/annales/internal/model"
)

// The selection steppers walk an ordered list of event IDs (as currently
// shown). They never wrap around.

func indexOf(ids []model.EventID, id model.EventID) int {
	for i := range ids {
		if ids[i] == id {
			return i
		}
	}
	return -1
}

// SelectNext selects the event after the selected one; with nothing
// selected it selects the first.
func (s *Store) SelectNext(ids []model.EventID) {
	if len(ids) == 0 {
		return
	}
	s.update(func() {
		i := indexOf(ids, s.selectedEventID)
		switch {
		case i == -1:
			s.selectedEventID = ids[0]
		case i < len(ids)-1:
			s.selectedEventID = ids[i+1]
		default:
			return
		}
		s.selectedRange = nil
	})
}

// SelectPrev selects the event before the selected one. Nothing happens at
// the first event or with nothing selected.
func (s *Store) SelectPrev(ids []model.EventID) {
	if len(ids) == 0 {
		return
	}
	s.update(func() {
		i := indexOf(ids, s.selectedEventID)
		if i > 0 {
			s.selectedEventID = ids[i-1]
			s.selectedRange = nil
		}
	})
}

// SelectFirst selects the first event.
func (s *Store) SelectFirst(ids []model.EventID) {
	if len(ids) == 0 {
		return
	}
	s.SelectEvent(ids[0])
}

// SelectLast selects the last event.
func (s *Store) SelectLast(ids []model.EventID) {
	if len(ids) == 0 {
		return
	}
	s.SelectEvent(ids[len(ids)-1])
}

// StartTour starts the tour with the given ID at its first step.
func (s *Store) StartTour(tourID string) {
	s.update(func() {
		s.tour = TourState{TourID: tourID, StepIndex: 0, Playing: true}
	})
}

// NextStep advances the tour by one step.
// Whether the step exists is up to the caller (see CurrentStep).
func (s *Store) NextStep() {
	s.update(func() { s.tour.StepIndex++ })
}

// PrevStep goes back one step, never below the first.
func (s *Store) PrevStep() {
	s.update(func() {
		if s.tour.StepIndex > 0 {
			s.tour.StepIndex--
		}
	})
}

// JumpToStep sets the tour step.
func (s *Store) JumpToStep(index int) {
	s.update(func() { s.tour.StepIndex = index })
}

// ExitTour ends the tour.
func (s *Store) ExitTour() {
	s.update(func() { s.tour = TourState{} })
}

// CurrentStep returns the current step of the active tour, if the tour is
// playing and the step exists.
func (t TourState) CurrentStep(tour *model.Tour) (*model.TourStep, bool) {
	if !t.Playing || tour == nil || tour.ID != t.TourID {
		return nil, false
	}
	if t.StepIndex < 0 || t.StepIndex >= len(tour.Steps) {
		return nil, false
	}
	return &tour.Steps[t.StepIndex], true
}
