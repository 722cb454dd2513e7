package model

// Filter restricts which events are shown.
// Empty fields do not restrict; non-empty fields must all match.
type Filter struct {
	Eras       []string
	Categories []string
	Tags       []string
	People     []string
	Places     []string
	Query      string
}

// IsEmpty returns whether the filter lets every event through.
func (f *Filter) IsEmpty() bool {
	return len(f.Eras) == 0 && len(f.Categories) == 0 && len(f.Tags) == 0 &&
		len(f.People) == 0 && len(f.Places) == 0 && f.Query == ""
}

// Matches returns whether the event passes the filter.
// Era IDs are resolved against the given eras; an event matches an era it
// overlaps.
func (f *Filter) Matches(e *Event, eras []EraBand) bool {
	if len(f.Categories) > 0 && !anyShared([]string{e.CategoryID}, f.Categories) {
		return false
	}
	if len(f.Tags) > 0 && !e.HasTag(f.Tags...) {
		return false
	}
	if len(f.People) > 0 && !e.InvolvesPerson(f.People...) {
		return false
	}
	if len(f.Places) > 0 && !e.TakesPlaceAt(f.Places...) {
		return false
	}
	if len(f.Eras) > 0 {
		inEra := false
		for i := range eras {
			if anyShared([]string{eras[i].ID}, f.Eras) && e.Overlaps(eras[i].Range()) {
				inEra = true
				break
			}
		}
		if !inEra {
			return false
		}
	}
	return e.MatchesQuery(f.Query)
}

// Clone returns a deep copy of the filter.
func (f Filter) Clone() Filter {
	clone := func(s []string) []string {
		if s == nil {
			return nil
		}
		return append([]string(nil), s...)
	}
	return Filter{
		Eras:       clone(f.Eras),
		Categories: clone(f.Categories),
		Tags:       clone(f.Tags),
		People:     clone(f.People),
		Places:     clone(f.Places),
		Query:      f.Query,
	}
}
