package model

import (
	"fmt"
	"strings"
)

// EventID uniquely identifies an event, e.g. "battle-of-actium".
type EventID = string

// EventType determines the shape an event is drawn as.
type EventType string

const (
	EventPoint   EventType = "point"
	EventRange   EventType = "range"
	EventReign   EventType = "reign"
	EventEraBand EventType = "era-band"
)

// IsSpan returns whether events of this type cover a stretch of time.
func (t EventType) IsSpan() bool {
	switch t {
	case EventRange, EventReign, EventEraBand:
		return true
	}
	return false
}

// Valid returns whether this is a known event type.
func (t EventType) Valid() bool {
	return t == EventPoint || t.IsSpan()
}

// An Event is a single dated entry on the timeline.
type Event struct {
	ID      EventID         `yaml:"id" json:"id"`
	Type    EventType       `yaml:"type" json:"type"`
	Title   string          `yaml:"title" json:"title"`
	Date    HistoricalDate  `yaml:"date" json:"date"`
	EndDate *HistoricalDate `yaml:"endDate,omitempty" json:"endDate,omitempty"`

	Summary   string `yaml:"summary" json:"summary"`
	Narrative string `yaml:"narrative" json:"narrative"`

	CategoryID string   `yaml:"categoryId" json:"categoryId"`
	Tags       []string `yaml:"tags" json:"tags"`

	People          []PersonRef `yaml:"people" json:"people"`
	Places          []PlaceRef  `yaml:"places" json:"places"`
	Images          []ImageMeta `yaml:"images" json:"images"`
	Sources         []Source    `yaml:"sources" json:"sources"`
	RelatedEventIDs []EventID   `yaml:"relatedEventIds" json:"relatedEventIds"`
}

// End returns the end date of the event; the start date if it has none.
func (e *Event) End() HistoricalDate {
	if e.EndDate == nil {
		return e.Date
	}
	return *e.EndDate
}

// Range returns the range the event covers (possibly zero-length).
func (e *Event) Range() DateRange {
	return DateRange{Start: e.Date, End: e.End()}
}

// FormattedDate is the event's date formatted for display, as a range for
// span events with an end date.
func (e *Event) FormattedDate() string {
	if e.Type.IsSpan() && e.EndDate != nil {
		return FormatRange(e.Range())
	}
	return Format(e.Date)
}

// Overlaps returns whether the event covers any part of the given range
// (bounds inclusive).
func (e *Event) Overlaps(r DateRange) bool {
	return ToCoordinate(e.Date) <= ToCoordinate(r.End) && ToCoordinate(e.End()) >= ToCoordinate(r.Start)
}

// HasTag returns whether the event carries any of the given tags.
func (e *Event) HasTag(tags ...string) bool {
	return anyShared(e.Tags, tags)
}

// InvolvesPerson returns whether any of the given people is referenced.
func (e *Event) InvolvesPerson(ids ...string) bool {
	refs := make([]string, 0, len(e.People))
	for _, p := range e.People {
		refs = append(refs, p.PersonID)
	}
	return anyShared(refs, ids)
}

// TakesPlaceAt returns whether any of the given places is referenced.
func (e *Event) TakesPlaceAt(ids ...string) bool {
	refs := make([]string, 0, len(e.Places))
	for _, p := range e.Places {
		refs = append(refs, p.PlaceID)
	}
	return anyShared(refs, ids)
}

// MatchesQuery returns whether the query is contained (case-insensitively)
// in the event's title or summary.
func (e *Event) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Summary), q)
}

func anyShared(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// ByDate sorts events by start date, longer events first on equal start.
type ByDate []*Event

func (a ByDate) Len() int      { return len(a) }
func (a ByDate) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByDate) Less(i, j int) bool {
	byStart := Compare(a[i].Date, a[j].Date)
	if byStart != 0 {
		return byStart < 0
	}
	return Less(a[j].End(), a[i].End())
}

type PersonRef struct {
	PersonID string `yaml:"personId" json:"personId"`
	Role     string `yaml:"role,omitempty" json:"role,omitempty"`
}

type PlaceRef struct {
	PlaceID string `yaml:"placeId" json:"placeId"`
	Context string `yaml:"context,omitempty" json:"context,omitempty"`
}

type ImageMeta struct {
	URL           string `yaml:"url" json:"url"`
	Caption       string `yaml:"caption" json:"caption"`
	Attribution   string `yaml:"attribution" json:"attribution"`
	License       string `yaml:"license" json:"license"`
	SourcePageURL string `yaml:"sourcePageUrl,omitempty" json:"sourcePageUrl,omitempty"`
}

// Source is a reference backing an event.
type Source struct {
	ID           string `yaml:"id" json:"id"`
	Type         string `yaml:"type" json:"type"` // ancient-primary, modern-secondary, web, other
	Author       string `yaml:"author,omitempty" json:"author,omitempty"`
	Title        string `yaml:"title" json:"title"`
	Publication  string `yaml:"publication,omitempty" json:"publication,omitempty"`
	Year         int    `yaml:"year,omitempty" json:"year,omitempty"`
	URL          string `yaml:"url,omitempty" json:"url,omitempty"`
	AccessedDate string `yaml:"accessedDate,omitempty" json:"accessedDate,omitempty"`
	Verified     bool   `yaml:"verified" json:"verified"`
	Notes        string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Citation returns the source as a single line, e.g.
// "Plutarch, Life of Antony. Parallel Lives (100)". Unverified sources are
// marked as such.
func (s *Source) Citation() string {
	var b strings.Builder
	if s.Author != "" {
		b.WriteString(s.Author + ", ")
	}
	b.WriteString(s.Title)
	if s.Publication != "" {
		b.WriteString(". " + s.Publication)
	}
	if s.Year != 0 {
		fmt.Fprintf(&b, " (%d)", s.Year)
	}
	if !s.Verified {
		b.WriteString(" [unverified]")
	}
	return b.String()
}
