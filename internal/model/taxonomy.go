package model

import "sort"

// A Lane is a horizontal track of the timeline; events are placed in the
// lane matching their category.
type Lane struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"` // hex, e.g. "#8B0000"
	Order int    `yaml:"order" json:"order"` // top to bottom
}

// ByOrder sorts lanes top to bottom.
type ByOrder []Lane

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }

// SortedLanes returns a copy of the lanes in display order.
func SortedLanes(lanes []Lane) []Lane {
	sorted := make([]Lane, len(lanes))
	copy(sorted, lanes)
	sort.Stable(ByOrder(sorted))
	return sorted
}

// An EraBand is a broad period rendered behind the lanes.
type EraBand struct {
	ID    string         `yaml:"id" json:"id"`
	Label string         `yaml:"label" json:"label"`
	Start HistoricalDate `yaml:"start" json:"start"`
	End   HistoricalDate `yaml:"end" json:"end"`
	Color string         `yaml:"color" json:"color"`
	Order int            `yaml:"order" json:"order"`
}

// Range returns the range the era covers.
func (e *EraBand) Range() DateRange {
	return DateRange{Start: e.Start, End: e.End}
}

type Tag struct {
	ID       string `yaml:"id" json:"id"`
	Label    string `yaml:"label" json:"label"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

type Person struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name"`
	Born     *HistoricalDate `yaml:"born,omitempty" json:"born,omitempty"`
	Died     *HistoricalDate `yaml:"died,omitempty" json:"died,omitempty"`
	Title    string          `yaml:"title,omitempty" json:"title,omitempty"`
	ShortBio string          `yaml:"shortBio,omitempty" json:"shortBio,omitempty"`
}

// Place is a location events can refer to. Coordinates are optional.
type Place struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	ModernName string   `yaml:"modernName,omitempty" json:"modernName,omitempty"`
	Latitude   *float64 `yaml:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  *float64 `yaml:"longitude,omitempty" json:"longitude,omitempty"`
}

// HasCoordinates returns whether both latitude and longitude are known.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// TourStep is a single stop of a guided tour.
type TourStep struct {
	EventID   EventID  `yaml:"eventId" json:"eventId"`
	Narration string   `yaml:"narration" json:"narration"`
	ZoomLevel *float64 `yaml:"zoomLevel,omitempty" json:"zoomLevel,omitempty"`
}

// Tour is a guided sequence of events.
type Tour struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Steps       []TourStep `yaml:"steps" json:"steps"`
}
