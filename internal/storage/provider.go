package storage

import (
	"errors"
	"fmt"

	"github.com/ja-he/annales/internal/model"
)

// ErrMissingFile is returned when a required data file does not exist.
var ErrMissingFile = errors.New("required data file missing")

// DataProvider is the abstracted data provider, which can be implemented over
// various storage systems.
//
// The timeline is read-only, so a provider only has to load the complete
// data set once.
type DataProvider interface {
	Load() (*model.Bundle, error)
}

// Validate checks the loaded data for problems the timeline can live with and
// returns a description of each. Nothing is removed from the bundle.
func Validate(b *model.Bundle) []string {
	var problems []string

	seen := make(map[model.EventID]bool, len(b.Events))
	for _, e := range b.Events {
		if seen[e.ID] {
			problems = append(problems, fmt.Sprintf("duplicate event id '%s'", e.ID))
		}
		seen[e.ID] = true

		if !e.Type.Valid() {
			problems = append(problems, fmt.Sprintf("event '%s' has unknown type '%s'", e.ID, e.Type))
			continue
		}
		if e.Type.IsSpan() && model.ToCoordinate(e.End()) < model.ToCoordinate(e.Date) {
			problems = append(problems, fmt.Sprintf("event '%s' ends before it starts", e.ID))
		}
		if b.LaneByID(e.CategoryID) == nil {
			problems = append(problems, fmt.Sprintf("event '%s' is in unknown lane '%s'", e.ID, e.CategoryID))
		}
	}

	for _, t := range b.Tours {
		for i, step := range t.Steps {
			if b.EventByID(step.EventID) == nil {
				problems = append(problems, fmt.Sprintf("tour '%s' step %d refers to unknown event '%s'", t.ID, i, step.EventID))
			}
		}
	}
	return problems
}
