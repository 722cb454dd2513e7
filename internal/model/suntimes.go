package model

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes represents the sunrise and sunset (UTC) of a date at a place.
type SunTimes struct {
	Rise, Set time.Time
}

// DayLength is the time between sunrise and sunset.
func (s SunTimes) DayLength() time.Duration {
	return s.Set.Sub(s.Rise)
}

func (s SunTimes) String() string {
	return fmt.Sprintf("sunrise %s, sunset %s UTC (%s of daylight)",
		s.Rise.Format("15:04"), s.Set.Format("15:04"), s.DayLength().Round(time.Minute))
}

// SunTimesAt returns sunrise and sunset at the place on the date.
//
// The date is treated as proleptic Gregorian, which is close enough for a
// day length but not a calendar conversion. Only exact dates at places with
// known coordinates have sun times; the second return value reports whether
// there are any (also false during polar day or night).
func SunTimesAt(d HistoricalDate, p *Place) (SunTimes, bool) {
	if p == nil || !p.HasCoordinates() || d.Precision != PrecisionExact || d.Month == 0 || d.Day == 0 {
		return SunTimes{}, false
	}

	rise, set := sunrise.SunriseSunset(*p.Latitude, *p.Longitude, d.Year, time.Month(d.Month), d.Day)
	if rise.IsZero() || set.IsZero() {
		return SunTimes{}, false
	}
	return SunTimes{Rise: rise.UTC(), Set: set.UTC()}, true
}
