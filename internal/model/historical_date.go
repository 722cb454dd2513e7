package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Precision is how precisely a historical date is known.
type Precision string

const (
	PrecisionExact   Precision = "exact"
	PrecisionMonth   Precision = "month"
	PrecisionYear    Precision = "year"
	PrecisionDecade  Precision = "decade"
	PrecisionCentury Precision = "century"
)

// Era is the display era of a year.
type Era string

const (
	BCE Era = "BCE"
	CE  Era = "CE"
)

// HistoricalDate is a date as far as it is known.
//
// Year uses astronomical numbering (1 BCE = 0, 2 BCE = -1, 1 CE = 1).
// Month and Day are 1-based; zero means absent. Day is only meaningful when
// Month is present.
type HistoricalDate struct {
	Year         int       `yaml:"year" json:"year"`
	Month        int       `yaml:"month,omitempty" json:"month,omitempty"`
	Day          int       `yaml:"day,omitempty" json:"day,omitempty"`
	Precision    Precision `yaml:"precision" json:"precision"`
	Approximate  bool      `yaml:"approximate" json:"approximate"`
	CalendarNote string    `yaml:"calendarNote,omitempty" json:"calendarNote,omitempty"`
}

// DateRange is a start and an end date, start not after end.
type DateRange struct {
	Start HistoricalDate `yaml:"start" json:"start"`
	End   HistoricalDate `yaml:"end" json:"end"`
}

// ToCoordinate converts a date to its axis coordinate.
//
// Months are a flat twelfth of a year and days a flat 1/365th, regardless of
// month length or leap years. The coordinate is for positioning only.
func ToCoordinate(d HistoricalDate) float64 {
	var monthFraction, dayFraction float64
	if d.Month != 0 {
		monthFraction = float64(d.Month-1) / 12
		if d.Day != 0 {
			dayFraction = float64(d.Day-1) / 365
		}
	}
	return float64(d.Year) + monthFraction + dayFraction
}

// Compare returns a negative value if a is before b, a positive one if a is
// after b and zero if both share a coordinate.
func Compare(a, b HistoricalDate) float64 {
	return ToCoordinate(a) - ToCoordinate(b)
}

// Less reports whether a is before b.
func Less(a, b HistoricalDate) bool {
	return Compare(a, b) < 0
}

// DisplayYear is a year as displayed, i.E. without a year zero.
type DisplayYear struct {
	Value int
	Era   Era
}

func (y DisplayYear) String() string {
	return fmt.Sprintf("%d %s", y.Value, y.Era)
}

// AstronomicalToDisplay converts an astronomical year to its display value
// and era. The display value is never 0.
func AstronomicalToDisplay(year int) DisplayYear {
	if year <= 0 {
		return DisplayYear{Value: -year + 1, Era: BCE}
	}
	return DisplayYear{Value: year, Era: CE}
}

// FormatYear formats an astronomical year for display, e.g. "509 BCE".
func FormatYear(year int) string {
	return AstronomicalToDisplay(year).String()
}

var monthAbbreviations = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbreviations[month-1]
}

// Format formats the date according to its precision, e.g. "15 Mar 44 BCE",
// "c. 260s BCE" or "3rd century BCE".
func Format(d HistoricalDate) string {
	y := AstronomicalToDisplay(d.Year)
	prefix := ""
	if d.Approximate {
		prefix = "c. "
	}

	switch d.Precision {
	case PrecisionDecade:
		decade := (y.Value / 10) * 10
		return fmt.Sprintf("%s%ds %s", prefix, decade, y.Era)
	case PrecisionCentury:
		century := (y.Value + 99) / 100
		return fmt.Sprintf("%s%s century %s", prefix, ordinal(century), y.Era)
	case PrecisionExact:
		if d.Month != 0 && d.Day != 0 {
			return fmt.Sprintf("%s%d %s %d %s", prefix, d.Day, monthName(d.Month), y.Value, y.Era)
		}
		fallthrough
	case PrecisionMonth:
		if d.Month != 0 {
			return fmt.Sprintf("%s%s %d %s", prefix, monthName(d.Month), y.Value, y.Era)
		}
	}
	return fmt.Sprintf("%s%d %s", prefix, y.Value, y.Era)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FormatRange formats a date range.
// Within one era the start omits its era ("264–241 BCE"), across eras both
// are shown ("27 BCE – 14 CE").
func FormatRange(r DateRange) string {
	startEra := AstronomicalToDisplay(r.Start.Year).Era
	endEra := AstronomicalToDisplay(r.End.Year).Era

	if startEra == endEra {
		start := strings.Replace(Format(r.Start), " "+string(startEra), "", 1)
		return start + "–" + Format(r.End)
	}
	return Format(r.Start) + " – " + Format(r.End)
}

// ErrInvalidYear is returned for year text that is not a whole number with
// an optional era.
var ErrInvalidYear = errors.New("invalid year")

var yearPattern = regexp.MustCompile(`(?i)^(\d+)\s*(BCE|BC|CE|AD)?$`)

// ParseYear parses year text such as "509 BCE", "44" or "79 ad" to an
// astronomical year.
// Years without era are CE. Anything else, including decimals and empty
// text, yields ErrInvalidYear.
// Range is not checked here.
func ParseYear(text string) (int, error) {
	match := yearPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, fmt.Errorf("'%s' is not a year (%w)", text, ErrInvalidYear)
	}

	value, err := strconv.Atoi(match[1])
	if err != nil || value > math.MaxInt32 {
		return 0, fmt.Errorf("'%s' is out of representable range (%w)", text, ErrInvalidYear)
	}

	switch strings.ToUpper(match[2]) {
	case "BCE", "BC":
		if value == 1 {
			return 0, nil
		}
		return -(value - 1), nil
	default:
		return value, nil
	}
}
