// Package dates parses the two date formats carried by the upstream sheets
// and computes calendar-day differences for staleness alerting.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"patiodash/internal/textfold"
)

// months maps folded three-letter prefixes of Spanish and English month
// names to the calendar month. Shared prefixes (mar, may, jun, jul, sep,
// oct, nov) cover both languages with one entry.
var months = map[string]time.Month{
	"ene": time.January, "feb": time.February, "mar": time.March,
	"abr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dic": time.December,
	"jan": time.January, "apr": time.April, "aug": time.August,
	"dec": time.December,
}

var (
	spaces     = regexp.MustCompile(`\s+`)
	dotNetExpr = regexp.MustCompile(`Date\((\d+)\)`)
)

// ParseFechaTexto parses "dd/MonthName/yy[yy] [HH:MM]" with Spanish or
// English month names, tolerant of extra whitespace. Two-digit years get
// 2000 added; a missing time part defaults to 00:00. A nil loc means
// time.Local. The second return is false on any malformed input; the
// function never panics on bad data.
func ParseFechaTexto(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	clean := spaces.ReplaceAllString(strings.TrimSpace(raw), " ")
	if clean == "" {
		return time.Time{}, false
	}

	fechaPart, horaPart, hasHora := strings.Cut(clean, " ")
	parts := strings.Split(fechaPart, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	mes := textfold.Fold(parts[1])
	if len(mes) > 3 {
		mes = mes[:3]
	}
	month, ok := months[mes]
	if !ok {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if hasHora {
		// Only the first token after the date is the time; trailing text
		// such as annotations after "HH:MM" is ignored.
		horaTok, _, _ := strings.Cut(horaPart, " ")
		hhStr, mmStr, _ := strings.Cut(horaTok, ":")
		if v, err := strconv.Atoi(hhStr); err == nil {
			hour = v
		}
		if v, err := strconv.Atoi(mmStr); err == nil {
			minute = v
		}
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, loc)
	// time.Date normalizes out-of-range components; reject the rollover.
	if t.Day() != day || t.Month() != month || t.Hour() != hour {
		return time.Time{}, false
	}
	return t, true
}

// ParseDotNetDate extracts a legacy "Date(<ms>)" timestamp embedded anywhere
// in raw, e.g. "/Date(1766642400000)/". The integer is interpreted as
// milliseconds since the Unix epoch. Returns false when no such pattern is
// present or the number does not fit.
func ParseDotNetDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	m := dotNetExpr.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).In(loc), true
}

// CalendarDays returns the whole-day difference now−then, ignoring
// time-of-day on both sides: each is truncated to its local midnight before
// the millisecond difference is floor-divided by one day.
func CalendarDays(now, then time.Time) int {
	a := midnight(now)
	b := midnight(then)
	diff := a.UnixMilli() - b.UnixMilli()
	const dayMs = 24 * 60 * 60 * 1000
	if diff < 0 && diff%dayMs != 0 {
		return int(diff/dayMs) - 1
	}
	return int(diff / dayMs)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
