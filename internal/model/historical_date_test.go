package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ja-he/annales/internal/model"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToCoordinate(t *testing.T) {
	t.Run("year only", func(t *testing.T) {
		if c := model.ToCoordinate(model.HistoricalDate{Year: -508, Precision: model.PrecisionYear}); c != -508 {
			t.Errorf("expected -508, got %f", c)
		}
	})
	t.Run("month and day", func(t *testing.T) {
		d := model.HistoricalDate{Year: -43, Month: 3, Day: 15, Precision: model.PrecisionExact}
		expected := -43 + 2.0/12 + 14.0/365
		if c := model.ToCoordinate(d); !approxEqual(c, expected) {
			t.Errorf("expected %f, got %f", expected, c)
		}
	})
	t.Run("day without month is ignored", func(t *testing.T) {
		d := model.HistoricalDate{Year: 800, Day: 25}
		if c := model.ToCoordinate(d); c != 800 {
			t.Errorf("expected 800, got %f", c)
		}
	})
	t.Run("first of january is the year itself", func(t *testing.T) {
		d := model.HistoricalDate{Year: 1453, Month: 1, Day: 1, Precision: model.PrecisionExact}
		if c := model.ToCoordinate(d); c != 1453 {
			t.Errorf("expected 1453, got %f", c)
		}
	})
}

func TestCompare(t *testing.T) {
	early := model.HistoricalDate{Year: -30, Month: 8}
	late := model.HistoricalDate{Year: -30, Month: 9, Day: 2}

	if !model.Less(early, late) {
		t.Error("expected august before september")
	}
	if model.Less(late, early) {
		t.Error("expected september not before august")
	}
	if model.Compare(early, early) != 0 {
		t.Error("expected a date to compare equal to itself")
	}
	if model.Compare(late, early) <= 0 {
		t.Error("expected positive comparison for the later date")
	}
}

func TestAstronomicalToDisplay(t *testing.T) {
	for _, tc := range []struct {
		year     int
		expected model.DisplayYear
	}{
		{0, model.DisplayYear{Value: 1, Era: model.BCE}},
		{-1, model.DisplayYear{Value: 2, Era: model.BCE}},
		{-508, model.DisplayYear{Value: 509, Era: model.BCE}},
		{1, model.DisplayYear{Value: 1, Era: model.CE}},
		{1453, model.DisplayYear{Value: 1453, Era: model.CE}},
	} {
		result := model.AstronomicalToDisplay(tc.year)
		if result != tc.expected {
			t.Errorf("year %d: expected %v, got %v", tc.year, tc.expected, result)
		}
		if result.Value == 0 {
			t.Errorf("year %d: display value zero", tc.year)
		}
	}

	if s := model.FormatYear(-508); s != "509 BCE" {
		t.Errorf("expected '509 BCE', got '%s'", s)
	}
}

func TestFormat(t *testing.T) {
	for name, tc := range map[string]struct {
		date     model.HistoricalDate
		expected string
	}{
		"exact": {
			model.HistoricalDate{Year: -43, Month: 3, Day: 15, Precision: model.PrecisionExact},
			"15 Mar 44 BCE",
		},
		"exact missing day falls back to month": {
			model.HistoricalDate{Year: 800, Month: 12, Precision: model.PrecisionExact},
			"Dec 800 CE",
		},
		"month": {
			model.HistoricalDate{Year: 1453, Month: 5, Precision: model.PrecisionMonth},
			"May 1453 CE",
		},
		"month missing falls back to year": {
			model.HistoricalDate{Year: 1453, Precision: model.PrecisionMonth},
			"1453 CE",
		},
		"year": {
			model.HistoricalDate{Year: -508, Precision: model.PrecisionYear},
			"509 BCE",
		},
		"approximate decade": {
			model.HistoricalDate{Year: -259, Precision: model.PrecisionDecade, Approximate: true},
			"c. 260s BCE",
		},
		"century": {
			model.HistoricalDate{Year: -249, Precision: model.PrecisionCentury},
			"3rd century BCE",
		},
		"eleventh century": {
			model.HistoricalDate{Year: 1066, Precision: model.PrecisionCentury},
			"11th century CE",
		},
		"first century CE": {
			model.HistoricalDate{Year: 79, Precision: model.PrecisionCentury},
			"1st century CE",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if result := model.Format(tc.date); result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	t.Run("within one era", func(t *testing.T) {
		r := model.DateRange{
			Start: model.HistoricalDate{Year: -263, Precision: model.PrecisionYear},
			End:   model.HistoricalDate{Year: -240, Precision: model.PrecisionYear},
		}
		if result := model.FormatRange(r); result != "264–241 BCE" {
			t.Errorf("expected '264–241 BCE', got '%s'", result)
		}
	})
	t.Run("across eras", func(t *testing.T) {
		r := model.DateRange{
			Start: model.HistoricalDate{Year: -26, Precision: model.PrecisionYear},
			End:   model.HistoricalDate{Year: 14, Precision: model.PrecisionYear},
		}
		if result := model.FormatRange(r); result != "27 BCE – 14 CE" {
			t.Errorf("expected '27 BCE – 14 CE', got '%s'", result)
		}
	})
}

func TestParseYear(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for text, expected := range map[string]int{
			"509 BCE":  -508,
			"1 BCE":    0,
			"1 bc":     0,
			"79":       79,
			"79 ad":    79,
			"  44BC  ": -43,
			"1453 CE":  1453,
		} {
			result, err := model.ParseYear(text)
			if err != nil {
				t.Errorf("'%s': unexpected error: %s", text, err)
				continue
			}
			if result != expected {
				t.Errorf("'%s': expected %d, got %d", text, expected, result)
			}
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{"", "   ", "12.5 BCE", "abc", "-44", "44 BCE BCE", "BCE"} {
			_, err := model.ParseYear(text)
			if !errors.Is(err, model.ErrInvalidYear) {
				t.Errorf("'%s': expected invalid year error, got %v", text, err)
			}
		}
	})
	t.Run("round trip for CE years", func(t *testing.T) {
		for _, year := range []int{1, 79, 800, 1453} {
			formatted := model.Format(model.HistoricalDate{Year: year, Precision: model.PrecisionYear})
			parsed, err := model.ParseYear(formatted)
			if err != nil || parsed != year {
				t.Errorf("year %d formatted as '%s' parsed to %d (err %v)", year, formatted, parsed, err)
			}
		}
	})
}

func TestCompareIsMonotonic(t *testing.T) {
	for y := -600; y < 1500; y++ {
		a := model.HistoricalDate{Year: y, Precision: model.PrecisionYear}
		b := model.HistoricalDate{Year: y + 1, Precision: model.PrecisionYear}
		if model.Compare(a, b) >= 0 {
			t.Fatalf("expected year %d before year %d", y, y+1)
		}
	}
}
