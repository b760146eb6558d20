package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"patiodash/internal/domain"
)

func basculaRow(ubicacion, status, sacos, qqs string) domain.Record {
	return domain.Record{
		domain.FieldUbicacion: ubicacion,
		domain.FieldStatus:    status,
		domain.FieldSacos:     sacos,
		domain.FieldQQsNetos:  qqs,
	}
}

func TestGroupByInsertionOrder(t *testing.T) {
	t.Parallel()

	rows := []domain.Record{
		basculaRow("Patio B", "", "1", "1"),
		basculaRow("Patio A", "", "1", "1"),
		basculaRow("Patio B", "", "1", "1"),
		basculaRow("", "", "1", "1"),
	}

	g := GroupBy(rows, LocationKey)
	require.Equal(t, []string{"Patio B", "Patio A", domain.SinUbicacion}, g.Keys)
	require.Len(t, g.ByKey["Patio B"], 2)
	require.Len(t, g.ByKey[domain.SinUbicacion], 1)
}

func TestSumBascula(t *testing.T) {
	t.Parallel()

	rows := []domain.Record{
		basculaRow("", "", "100", "250.5"),
		basculaRow("", "", "50", "249.5"),
		basculaRow("", "", "junk", ""), // non-numeric fields count as zero
	}

	agg := SumBascula(rows)
	require.Equal(t, 3, agg.Trucks)
	require.InDelta(t, 150, agg.Sacos, 1e-9)
	require.InDelta(t, 500, agg.QQs, 1e-9)
	require.InDelta(t, 500*QQToKilos, agg.Kilos, 1e-9)
}

func TestSumGeneral(t *testing.T) {
	t.Parallel()

	rows := []domain.Record{
		{domain.FieldCantSacos: "10", domain.FieldKilos: "460", domain.FieldQQs: "10", domain.FieldLotes: "1"},
		{domain.FieldCantSacos: "5", domain.FieldKilos: "230", domain.FieldQQs: "5", domain.FieldLotes: "2"},
	}

	agg := SumGeneral(rows)
	require.Equal(t, 2, agg.Records)
	require.InDelta(t, 15, agg.CantSacos, 1e-9)
	require.InDelta(t, 690, agg.Kilos, 1e-9)
	require.InDelta(t, 15, agg.QQs, 1e-9)
	require.InDelta(t, 3, agg.Lotes, 1e-9)
}

// Splitting a record set by any key and summing the parts must equal the
// aggregate of the whole set.
func TestSumBasculaAdditivity(t *testing.T) {
	t.Parallel()

	rows := []domain.Record{
		basculaRow("Patio A", "Pesado", "10", "20.25"),
		basculaRow("Patio B", "En Espera", "7", "14.75"),
		basculaRow("Patio A", "En Espera", "3", "8"),
		basculaRow("", "Pesado", "4", "9.5"),
	}

	whole := SumBascula(rows)
	g := GroupBy(rows, LocationKey)

	var trucks int
	var sacos, qqs, kilos float64
	for _, key := range g.Keys {
		part := SumBascula(g.ByKey[key])
		trucks += part.Trucks
		sacos += part.Sacos
		qqs += part.QQs
		kilos += part.Kilos
	}

	require.Equal(t, whole.Trucks, trucks)
	require.InDelta(t, whole.Sacos, sacos, 1e-9)
	require.InDelta(t, whole.QQs, qqs, 1e-9)
	require.InDelta(t, whole.Kilos, kilos, 1e-9)
}

func TestPatioKeyFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Norte", PatioKey(domain.Record{domain.FieldPatioRec: "Norte", domain.FieldPatio: "Viejo"}))
	require.Equal(t, "Viejo", PatioKey(domain.Record{domain.FieldPatio: "Viejo"}))
	require.Equal(t, domain.SinPatio, PatioKey(domain.Record{domain.FieldPatioRec: "  "}))
}

func TestFormatter(t *testing.T) {
	t.Parallel()

	f := NewFormatter()
	require.Equal(t, "12.345", f.Count(12345))
	require.Equal(t, "1.234,56", f.QQs(1234.56))
	require.Equal(t, "10", f.QQs(10))
	require.Equal(t, "57.500", f.Kilos(57500))
}
