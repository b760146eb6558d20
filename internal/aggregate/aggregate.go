// Package aggregate groups records and sums their numeric fields.
package aggregate

import (
	"strconv"
	"strings"

	"patiodash/internal/domain"
)

// QQToKilos converts quintales to kilograms on the weighing-station path.
const QQToKilos = 46

// Groups partitions records by a string key, preserving the order in which
// keys first appear in the input rather than sorting them.
type Groups struct {
	Keys  []string
	ByKey map[string][]domain.Record
}

// GroupBy partitions rows using the given key extractor.
func GroupBy(rows []domain.Record, key func(domain.Record) string) Groups {
	g := Groups{ByKey: make(map[string][]domain.Record)}
	for _, r := range rows {
		k := key(r)
		if _, seen := g.ByKey[k]; !seen {
			g.Keys = append(g.Keys, k)
		}
		g.ByKey[k] = append(g.ByKey[k], r)
	}
	return g
}

// LocationKey extracts Ubicacion with the blank sentinel fallback.
func LocationKey(r domain.Record) string {
	if v := strings.TrimSpace(r.Get(domain.FieldUbicacion)); v != "" {
		return v
	}
	return domain.SinUbicacion
}

// StatusKey extracts Status with the blank sentinel fallback.
func StatusKey(r domain.Record) string {
	if v := strings.TrimSpace(r.Get(domain.FieldStatus)); v != "" {
		return v
	}
	return domain.SinStatus
}

// PatioKey extracts PatioRec, falling back to Patio, then the sentinel.
func PatioKey(r domain.Record) string {
	if v := strings.TrimSpace(r.Get(domain.FieldPatioRec)); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.Get(domain.FieldPatio)); v != "" {
		return v
	}
	return domain.SinPatio
}

// SumBascula totals a group of weighing-station records: one truck per
// record, SACOS and QQS NETOS summed from source fields, kilos derived from
// the quintal total. Missing or non-numeric fields count as zero.
func SumBascula(rows []domain.Record) domain.BasculaAggregate {
	var agg domain.BasculaAggregate
	for _, r := range rows {
		agg.Trucks++
		agg.Sacos += numeric(r.Get(domain.FieldSacos))
		agg.QQs += numeric(r.Get(domain.FieldQQsNetos))
	}
	agg.Kilos = agg.QQs * QQToKilos
	return agg
}

// SumGeneral totals a group of general-progress records. Kilos and QQs come
// independently from source fields here; there is no derived relation.
func SumGeneral(rows []domain.Record) domain.GeneralAggregate {
	var agg domain.GeneralAggregate
	for _, r := range rows {
		agg.Records++
		agg.CantSacos += numeric(r.Get(domain.FieldCantSacos))
		agg.Kilos += numeric(r.Get(domain.FieldKilos))
		agg.QQs += numeric(r.Get(domain.FieldQQs))
		agg.Lotes += numeric(r.Get(domain.FieldLotes))
	}
	return agg
}

// Line converts one general-progress record into its card values.
func Line(r domain.Record) domain.GeneralLine {
	return domain.GeneralLine{
		Proceso:   r.Get(domain.FieldProceso),
		CantSacos: numeric(r.Get(domain.FieldCantSacos)),
		Kilos:     numeric(r.Get(domain.FieldKilos)),
		QQs:       numeric(r.Get(domain.FieldQQs)),
		Lotes:     numeric(r.Get(domain.FieldLotes)),
	}
}

func numeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
