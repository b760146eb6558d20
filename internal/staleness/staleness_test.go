package staleness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"patiodash/internal/domain"
)

var managua = time.FixedZone("CST", -6*60*60)

func fechasTable(rows ...[2]string) []domain.Record {
	out := make([]domain.Record, len(rows))
	for i, row := range rows {
		out[i] = domain.Record{
			domain.FieldPatioRec:    row[0],
			domain.FieldUltimaFecha: row[1],
		}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	e := New(3, managua)
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, managua)

	t.Run("three days triggers alert at any time of day", func(t *testing.T) {
		info := e.Evaluate("Patio Norte", fechasTable([2]string{"Patio Norte", "07/Jun/25 23:45"}), now)
		require.NotNil(t, info)
		require.Equal(t, 3, info.DaysElapsed)
		require.True(t, info.Alert)
	})

	t.Run("two days does not", func(t *testing.T) {
		info := e.Evaluate("Patio Norte", fechasTable([2]string{"Patio Norte", "08/Jun/25 01:00"}), now)
		require.NotNil(t, info)
		require.Equal(t, 2, info.DaysElapsed)
		require.False(t, info.Alert)
	})

	t.Run("lookup is case and whitespace insensitive", func(t *testing.T) {
		info := e.Evaluate("patio norte", fechasTable([2]string{"  PATIO NORTE  ", "01/Jun/25"}), now)
		require.NotNil(t, info)
		require.True(t, info.Alert)
	})

	t.Run("lookup miss yields no annotation", func(t *testing.T) {
		require.Nil(t, e.Evaluate("Patio Sur", fechasTable([2]string{"Patio Norte", "07/Jun/25"}), now))
	})

	t.Run("unparseable date yields no annotation", func(t *testing.T) {
		require.Nil(t, e.Evaluate("Patio Norte", fechasTable([2]string{"Patio Norte", "pronto"}), now))
	})

	t.Run("empty table yields no annotation", func(t *testing.T) {
		require.Nil(t, e.Evaluate("Patio Norte", nil, now))
	})
}
