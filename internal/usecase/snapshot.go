package usecase

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"patiodash/internal/aggregate"
	"patiodash/internal/classify"
	"patiodash/internal/dates"
	"patiodash/internal/domain"
	"patiodash/internal/filter"
	"patiodash/internal/procorder"
	"patiodash/internal/staleness"
)

// SnapshotBuilder assembles the consumer-facing summaries from raw source
// results. Building is pure: every call recomputes from the unfiltered base
// set, so filter changes never depend on a previous narrowing.
type SnapshotBuilder struct {
	classifier *classify.Classifier
	sorter     *procorder.Sorter
	staleness  *staleness.Evaluator
	loc        *time.Location
}

// NewSnapshotBuilder wires the pipeline components. A nil loc means
// time.Local.
func NewSnapshotBuilder(c *classify.Classifier, s *procorder.Sorter, e *staleness.Evaluator, loc *time.Location) *SnapshotBuilder {
	if loc == nil {
		loc = time.Local
	}
	return &SnapshotBuilder{
		classifier: c,
		sorter:     s,
		staleness:  e,
		loc:        loc,
	}
}

// Bascula builds the weighing-station summary: grand total, Arabica
// sections per location (each grouped by status), and one Robusta section
// grouped by status.
func (b *SnapshotBuilder) Bascula(res SourceResult, rng filter.DateRange) domain.BasculaSummary {
	if res.Err != nil {
		return domain.BasculaSummary{Error: "Error cargando báscula: " + res.Err.Error()}
	}

	rows := rng.Apply(res.Rows, b.loc)
	summary := domain.BasculaSummary{Total: aggregate.SumBascula(rows)}

	var arabica, robusta []domain.Record
	for _, r := range rows {
		if b.classifier.Categorize(r) == domain.CategoryRobusta {
			robusta = append(robusta, r)
		} else {
			arabica = append(arabica, r)
		}
	}

	byLocation := aggregate.GroupBy(arabica, aggregate.LocationKey)
	keys := append([]string(nil), byLocation.Keys...)
	b.sortLocations(keys)
	for _, loc := range keys {
		summary.Sections = append(summary.Sections, domain.BasculaSection{
			Category: domain.CategoryArabica,
			Location: loc,
			Statuses: b.statusGroups(byLocation.ByKey[loc]),
		})
	}

	if len(robusta) > 0 {
		summary.Sections = append(summary.Sections, domain.BasculaSection{
			Category: domain.CategoryRobusta,
			Statuses: b.statusGroups(robusta),
		})
	}

	return summary
}

// sortLocations orders the Arabica location keys: the blank sentinel first,
// then Spanish collation. The collator is built per call: collate.Collator
// mutates internal state on compare and snapshots build concurrently.
func (b *SnapshotBuilder) sortLocations(keys []string) {
	coll := collate.New(language.Spanish)
	sort.SliceStable(keys, func(i, j int) bool {
		a, c := keys[i], keys[j]
		aSin := strings.EqualFold(a, domain.SinUbicacion)
		cSin := strings.EqualFold(c, domain.SinUbicacion)
		switch {
		case aSin && !cSin:
			return true
		case cSin && !aSin:
			return false
		default:
			return coll.CompareString(a, c) < 0
		}
	})
}

func (b *SnapshotBuilder) statusGroups(rows []domain.Record) []domain.StatusGroup {
	byStatus := aggregate.GroupBy(rows, aggregate.StatusKey)
	groups := make([]domain.StatusGroup, 0, len(byStatus.Keys))
	for _, st := range byStatus.Keys {
		groups = append(groups, domain.StatusGroup{
			Status: st,
			Totals: aggregate.SumBascula(byStatus.ByKey[st]),
		})
	}
	return groups
}

// General builds the general-progress summary: patio groups in order of
// first appearance after process-order sorting, each with optional
// staleness annotation and process-ordered line items.
func (b *SnapshotBuilder) General(gen, fechas SourceResult, f filter.General, now time.Time) domain.GeneralSummary {
	if gen.Err != nil {
		return domain.GeneralSummary{Error: "Error cargando datos: " + gen.Err.Error()}
	}

	rows := f.Apply(gen.Rows)
	b.sorter.Sort(rows)

	summary := domain.GeneralSummary{Total: aggregate.SumGeneral(rows)}

	byPatio := aggregate.GroupBy(rows, aggregate.PatioKey)
	for _, patio := range byPatio.Keys {
		group := domain.PatioGroup{
			Patio:     patio,
			Staleness: b.staleness.Evaluate(patio, fechas.Rows, now),
		}
		for _, r := range byPatio.ByKey[patio] {
			group.Lines = append(group.Lines, aggregate.Line(r))
		}
		summary.Patios = append(summary.Patios, group)
	}

	return summary
}

// Options lists the distinct filter values observed in the current general
// dataset plus the available bascula date range, with "to" preset to the
// most recent date.
func (b *SnapshotBuilder) Options(gen, bascula SourceResult) domain.FilterOptions {
	opts := domain.FilterOptions{
		Procesos: []string{domain.FilterAll},
		Patios:   []string{domain.FilterAll},
	}

	seenProc := map[string]struct{}{}
	seenPatio := map[string]struct{}{}
	for _, r := range gen.Rows {
		if p := r.Get(domain.FieldProceso); p != "" {
			if _, ok := seenProc[p]; !ok {
				seenProc[p] = struct{}{}
				opts.Procesos = append(opts.Procesos, p)
			}
		}
		patio := strings.TrimSpace(r.Get(domain.FieldPatioRec))
		if patio == "" {
			patio = strings.TrimSpace(r.Get(domain.FieldPatio))
		}
		if patio != "" {
			if _, ok := seenPatio[patio]; !ok {
				seenPatio[patio] = struct{}{}
				opts.Patios = append(opts.Patios, patio)
			}
		}
	}

	var minDate, maxDate time.Time
	for _, r := range bascula.Rows {
		d, ok := dates.ParseDotNetDate(r.Get(domain.FieldFecha), b.loc)
		if !ok {
			continue
		}
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}
		if maxDate.IsZero() || d.After(maxDate) {
			maxDate = d
		}
	}
	if !minDate.IsZero() {
		opts.DateMin = minDate.Format("2006-01-02")
		opts.DateMax = maxDate.Format("2006-01-02")
	}

	return opts
}
