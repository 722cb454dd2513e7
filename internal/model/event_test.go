package model_test

import (
	"testing"
	"time"

	"github.com/ja-he/annales/internal/model"
)

func year(y int) model.HistoricalDate {
	return model.HistoricalDate{Year: y, Precision: model.PrecisionYear}
}

func yearPtr(y int) *model.HistoricalDate {
	d := year(y)
	return &d
}

func testBundle() *model.Bundle {
	return &model.Bundle{
		Lanes: []model.Lane{
			{ID: "culture", Label: "Culture", Order: 2},
			{ID: "politics", Label: "Politics", Order: 1},
		},
		Eras: []model.EraBand{
			{ID: "republic", Start: year(-508), End: year(-26)},
			{ID: "empire", Start: year(-26), End: year(476)},
		},
		Events: []model.Event{
			{
				ID: "augustus", Type: model.EventReign, Title: "Reign of Augustus",
				Date: year(-26), EndDate: yearPtr(14), CategoryID: "politics",
				People: []model.PersonRef{{PersonID: "augustus", Role: "princeps"}},
			},
			{
				ID: "founding", Type: model.EventPoint, Title: "Founding of the Republic",
				Date: year(-508), CategoryID: "politics", Tags: []string{"constitution"},
			},
			{
				ID: "aeneid", Type: model.EventPoint, Title: "Aeneid",
				Summary: "Virgil's epic", Date: year(-18), CategoryID: "culture",
				Places: []model.PlaceRef{{PlaceID: "rome"}},
			},
			{
				ID: "principate", Type: model.EventRange, Title: "Principate",
				Date: year(-26), EndDate: yearPtr(284), CategoryID: "politics",
			},
		},
	}
}

func TestEventRange(t *testing.T) {
	b := testBundle()

	t.Run("point event ends where it starts", func(t *testing.T) {
		e := b.EventByID("founding")
		if e.End() != e.Date {
			t.Errorf("expected end %v, got %v", e.Date, e.End())
		}
		if e.FormattedDate() != "509 BCE" {
			t.Errorf("unexpected formatted date '%s'", e.FormattedDate())
		}
	})
	t.Run("span event formats as range", func(t *testing.T) {
		e := b.EventByID("augustus")
		if e.FormattedDate() != "27 BCE – 14 CE" {
			t.Errorf("unexpected formatted date '%s'", e.FormattedDate())
		}
	})
	t.Run("overlap is inclusive", func(t *testing.T) {
		e := b.EventByID("augustus")
		if !e.Overlaps(model.DateRange{Start: year(14), End: year(100)}) {
			t.Error("expected overlap at the shared end year")
		}
		if e.Overlaps(model.DateRange{Start: year(15), End: year(100)}) {
			t.Error("expected no overlap after the end")
		}
	})
	t.Run("types", func(t *testing.T) {
		if model.EventPoint.IsSpan() || !model.EventReign.IsSpan() || !model.EventEraBand.IsSpan() {
			t.Error("unexpected span classification")
		}
		if model.EventType("battle").Valid() {
			t.Error("expected unknown type to be invalid")
		}
	})
}

func TestSortedEvents(t *testing.T) {
	b := testBundle()

	t.Run("by date, longer first", func(t *testing.T) {
		sorted := b.SortedEvents(model.Filter{})
		expected := []model.EventID{"founding", "principate", "augustus", "aeneid"}
		if len(sorted) != len(expected) {
			t.Fatalf("expected %d events, got %d", len(expected), len(sorted))
		}
		for i := range expected {
			if sorted[i].ID != expected[i] {
				t.Errorf("position %d: expected '%s', got '%s'", i, expected[i], sorted[i].ID)
			}
		}
	})

	t.Run("lanes by order", func(t *testing.T) {
		lanes := model.SortedLanes(b.Lanes)
		if lanes[0].ID != "politics" || lanes[1].ID != "culture" {
			t.Errorf("unexpected lane order %v", lanes)
		}
		if b.Lanes[0].ID != "culture" {
			t.Error("sorting lanes modified the bundle")
		}
	})
}

func TestFilter(t *testing.T) {
	b := testBundle()

	ids := func(f model.Filter) []model.EventID {
		result := []model.EventID{}
		for _, e := range b.SortedEvents(f) {
			result = append(result, e.ID)
		}
		return result
	}
	equal := func(a, b []model.EventID) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	for name, tc := range map[string]struct {
		filter   model.Filter
		expected []model.EventID
	}{
		"category": {model.Filter{Categories: []string{"culture"}}, []model.EventID{"aeneid"}},
		"tag":      {model.Filter{Tags: []string{"constitution"}}, []model.EventID{"founding"}},
		"person":   {model.Filter{People: []string{"augustus"}}, []model.EventID{"augustus"}},
		"place":    {model.Filter{Places: []string{"rome"}}, []model.EventID{"aeneid"}},
		"query in summary, case-insensitive": {
			model.Filter{Query: "VIRGIL"}, []model.EventID{"aeneid"},
		},
		"era overlap": {
			model.Filter{Eras: []string{"republic"}}, []model.EventID{"founding", "principate", "augustus"},
		},
		"all fields must match": {
			model.Filter{Categories: []string{"politics"}, Query: "reign"}, []model.EventID{"augustus"},
		},
		"unknown era matches nothing": {
			model.Filter{Eras: []string{"byzantium"}}, []model.EventID{},
		},
	} {
		t.Run(name, func(t *testing.T) {
			if result := ids(tc.filter); !equal(result, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, result)
			}
		})
	}

	t.Run("clone is independent", func(t *testing.T) {
		f := model.Filter{Tags: []string{"a"}}
		c := f.Clone()
		c.Tags[0] = "b"
		if f.Tags[0] != "a" {
			t.Error("clone shares its slices with the original")
		}
		if !(&model.Filter{}).IsEmpty() || f.IsEmpty() {
			t.Error("unexpected emptiness")
		}
	})
}

func TestSunTimesAt(t *testing.T) {
	lat, lon := 41.01, 28.98
	constantinople := &model.Place{ID: "constantinople", Latitude: &lat, Longitude: &lon}
	fall := model.HistoricalDate{Year: 1453, Month: 5, Day: 29, Precision: model.PrecisionExact}

	t.Run("exact date at known place", func(t *testing.T) {
		times, ok := model.SunTimesAt(fall, constantinople)
		if !ok {
			t.Fatal("expected sun times")
		}
		if !times.Rise.Before(times.Set) {
			t.Errorf("expected sunrise %s before sunset %s", times.Rise, times.Set)
		}
		if times.DayLength() < 13*time.Hour+30*time.Minute || times.DayLength() > 15*time.Hour+30*time.Minute {
			t.Errorf("unexpected day length %s", times.DayLength())
		}
	})
	t.Run("imprecise date", func(t *testing.T) {
		if _, ok := model.SunTimesAt(year(1453), constantinople); ok {
			t.Error("expected no sun times for a year-precision date")
		}
	})
	t.Run("place without coordinates", func(t *testing.T) {
		if _, ok := model.SunTimesAt(fall, &model.Place{ID: "somewhere"}); ok {
			t.Error("expected no sun times without coordinates")
		}
		if _, ok := model.SunTimesAt(fall, nil); ok {
			t.Error("expected no sun times without a place")
		}
	})
}

func TestSourceCitation(t *testing.T) {
	testCases := []struct {
		source   model.Source
		expected string
	}{
		{
			source:   model.Source{Author: "Plutarch", Title: "Life of Antony", Publication: "Parallel Lives", Year: 100, Verified: true},
			expected: "Plutarch, Life of Antony. Parallel Lives (100)",
		},
		{
			source:   model.Source{Title: "Res Gestae Divi Augusti", Verified: true},
			expected: "Res Gestae Divi Augusti",
		},
		{
			source:   model.Source{Author: "Syme", Title: "The Roman Revolution", Year: 1939},
			expected: "Syme, The Roman Revolution (1939) [unverified]",
		},
	}

	for _, tc := range testCases {
		if actual := tc.source.Citation(); actual != tc.expected {
			t.Errorf("expected '%s', got '%s'", tc.expected, actual)
		}
	}
}
