// Package staleness flags patios whose oldest unassigned lot has sat too
// long, based on the last-activity lookup sheet.
package staleness

import (
	"strings"
	"time"

	"patiodash/internal/dates"
	"patiodash/internal/domain"
)

// Evaluator computes per-patio staleness against a configured day threshold.
type Evaluator struct {
	alertDays int
	loc       *time.Location
}

// New builds an Evaluator. A nil loc means time.Local.
func New(alertDays int, loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.Local
	}
	return &Evaluator{alertDays: alertDays, loc: loc}
}

// Evaluate looks the patio up in the last-activity table (case and
// whitespace insensitive on PatioRec), parses its UltimaFechaRecibida and
// returns the day difference against now. A lookup miss or unparseable date
// returns nil: the patio renders without any annotation, not with a false
// one.
func (e *Evaluator) Evaluate(patio string, fechas []domain.Record, now time.Time) *domain.StalenessInfo {
	want := strings.TrimSpace(patio)

	for _, rec := range fechas {
		if !strings.EqualFold(strings.TrimSpace(rec.Get(domain.FieldPatioRec)), want) {
			continue
		}
		last, ok := dates.ParseFechaTexto(rec.Get(domain.FieldUltimaFecha), e.loc)
		if !ok {
			return nil
		}
		diff := dates.CalendarDays(now, last)
		return &domain.StalenessInfo{
			LastSeen:    last,
			DaysElapsed: diff,
			Alert:       diff >= e.alertDays,
		}
	}
	return nil
}
