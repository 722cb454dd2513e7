package model

import (
	"sort"
)

// Bundle is all data making up a timeline, as loaded once by a data
// provider. It is not mutated after loading.
type Bundle struct {
	Events []Event   `yaml:"events" json:"events"`
	Lanes  []Lane    `yaml:"lanes" json:"lanes"`
	Eras   []EraBand `yaml:"eras" json:"eras"`
	Tags   []Tag     `yaml:"tags" json:"tags"`
	People []Person  `yaml:"people" json:"people"`
	Places []Place   `yaml:"places" json:"places"`
	Tours  []Tour    `yaml:"tours" json:"tours"`
}

// EventByID returns the event with the given ID or nil.
func (b *Bundle) EventByID(id EventID) *Event {
	for i := range b.Events {
		if b.Events[i].ID == id {
			return &b.Events[i]
		}
	}
	return nil
}

// PlaceByID returns the place with the given ID or nil.
func (b *Bundle) PlaceByID(id string) *Place {
	for i := range b.Places {
		if b.Places[i].ID == id {
			return &b.Places[i]
		}
	}
	return nil
}

// PersonByID returns the person with the given ID or nil.
func (b *Bundle) PersonByID(id string) *Person {
	for i := range b.People {
		if b.People[i].ID == id {
			return &b.People[i]
		}
	}
	return nil
}

// LaneByID returns the lane with the given ID or nil.
func (b *Bundle) LaneByID(id string) *Lane {
	for i := range b.Lanes {
		if b.Lanes[i].ID == id {
			return &b.Lanes[i]
		}
	}
	return nil
}

// EraByID returns the era band with the given ID or nil.
func (b *Bundle) EraByID(id string) *EraBand {
	for i := range b.Eras {
		if b.Eras[i].ID == id {
			return &b.Eras[i]
		}
	}
	return nil
}

// TourByID returns the tour with the given ID or nil.
func (b *Bundle) TourByID(id string) *Tour {
	for i := range b.Tours {
		if b.Tours[i].ID == id {
			return &b.Tours[i]
		}
	}
	return nil
}

// SortedEvents returns pointers to the bundle's events that pass the filter,
// ordered by date.
func (b *Bundle) SortedEvents(f Filter) []*Event {
	result := make([]*Event, 0, len(b.Events))
	for i := range b.Events {
		if f.Matches(&b.Events[i], b.Eras) {
			result = append(result, &b.Events[i])
		}
	}
	sort.Stable(ByDate(result))
	return result
}
