// Package filter narrows the working record sets before aggregation. Every
// filter reads from the unfiltered base set; there is no incremental update.
package filter

import (
	"strings"
	"time"

	"patiodash/internal/dates"
	"patiodash/internal/domain"
)

// General filters general-progress records by process stage and patio.
// An empty value or the "Todos" sentinel bypasses that predicate.
type General struct {
	Proceso string
	Patio   string
}

// Apply returns the rows passing both predicates. The input is not
// modified.
func (f General) Apply(rows []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		if !bypass(f.Proceso) && r.Get(domain.FieldProceso) != f.Proceso {
			continue
		}
		if !bypass(f.Patio) &&
			r.Get(domain.FieldPatioRec) != f.Patio &&
			r.Get(domain.FieldPatio) != f.Patio {
			continue
		}
		out = append(out, r)
	}
	return out
}

func bypass(v string) bool {
	return v == "" || v == domain.FilterAll
}

// DateRange bounds weighing-station records by their Fecha field at local
// calendar-day granularity: From compares at start of day, To at end of
// day, both inclusive. A record whose Fecha does not parse is always
// excluded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseRange builds a DateRange from "YYYY-MM-DD" query values. Blank
// values leave that bound open; malformed values are treated as blank.
func ParseRange(from, to string, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	var r DateRange
	if t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(from), loc); err == nil {
		r.From = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(to), loc); err == nil {
		end := t.Add(24*time.Hour - time.Second)
		r.To = &end
	}
	return r
}

// Apply returns the rows whose parsed Fecha falls inside the range.
func (r DateRange) Apply(rows []domain.Record, loc *time.Location) []domain.Record {
	out := make([]domain.Record, 0, len(rows))
	for _, rec := range rows {
		d, ok := dates.ParseDotNetDate(rec.Get(domain.FieldFecha), loc)
		if !ok {
			continue
		}
		if r.From != nil && d.Before(*r.From) {
			continue
		}
		if r.To != nil && d.After(*r.To) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
