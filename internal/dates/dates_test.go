package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var managua = time.FixedZone("CST", -6*60*60)

func TestParseFechaTextoMonths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		month time.Month
	}{
		{"Ene", time.January}, {"Feb", time.February}, {"Mar", time.March},
		{"Abr", time.April}, {"May", time.May}, {"Jun", time.June},
		{"Jul", time.July}, {"Ago", time.August}, {"Sep", time.September},
		{"Oct", time.October}, {"Nov", time.November}, {"Dic", time.December},
		{"Jan", time.January}, {"Apr", time.April}, {"Aug", time.August},
		{"Dec", time.December},
		// Full names and diacritics reduce to the same prefix.
		{"Enero", time.January}, {"DICIEMBRE", time.December},
	}

	for _, tc := range cases {
		got, ok := ParseFechaTexto("15/"+tc.token+"/25", managua)
		require.True(t, ok, "month token %q", tc.token)
		require.Equal(t, tc.month, got.Month(), "month token %q", tc.token)
		require.Equal(t, 2025, got.Year())
		require.Equal(t, 15, got.Day())
	}
}

func TestParseFechaTexto(t *testing.T) {
	t.Parallel()

	t.Run("with time", func(t *testing.T) {
		got, ok := ParseFechaTexto("01/Ene/25 08:30", managua)
		require.True(t, ok)
		require.Equal(t, time.Date(2025, time.January, 1, 8, 30, 0, 0, managua), got)
	})

	t.Run("four digit year and extra whitespace", func(t *testing.T) {
		got, ok := ParseFechaTexto("  3/dic/2024   14:05 ", managua)
		require.True(t, ok)
		require.Equal(t, time.Date(2024, time.December, 3, 14, 5, 0, 0, managua), got)
	})

	t.Run("time defaults to midnight", func(t *testing.T) {
		got, ok := ParseFechaTexto("28/Feb/25", managua)
		require.True(t, ok)
		require.Equal(t, 0, got.Hour())
		require.Equal(t, 0, got.Minute())
	})

	t.Run("trailing text after the time is ignored", func(t *testing.T) {
		got, ok := ParseFechaTexto("01/Ene/25 08:30 extra", managua)
		require.True(t, ok)
		require.Equal(t, 8, got.Hour())
		require.Equal(t, 30, got.Minute())
	})

	t.Run("minutes default to zero", func(t *testing.T) {
		got, ok := ParseFechaTexto("28/Feb/25 7", managua)
		require.True(t, ok)
		require.Equal(t, 7, got.Hour())
		require.Equal(t, 0, got.Minute())
	})

	t.Run("rejects unknown month token", func(t *testing.T) {
		_, ok := ParseFechaTexto("01/Xyz/25", managua)
		require.False(t, ok)
	})

	t.Run("rejects non numeric day or year", func(t *testing.T) {
		_, ok := ParseFechaTexto("uno/Ene/25", managua)
		require.False(t, ok)
		_, ok = ParseFechaTexto("01/Ene/veinte", managua)
		require.False(t, ok)
	})

	t.Run("rejects impossible calendar dates", func(t *testing.T) {
		_, ok := ParseFechaTexto("31/Feb/25", managua)
		require.False(t, ok)
	})

	t.Run("rejects empty and fragmentary input", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "01/Ene", "01-Ene-25"} {
			_, ok := ParseFechaTexto(raw, managua)
			require.False(t, ok, "input %q", raw)
		}
	})
}

func TestParseDotNetDate(t *testing.T) {
	t.Parallel()

	got, ok := ParseDotNetDate("/Date(1766642400000)/", managua)
	require.True(t, ok)
	require.Equal(t, int64(1766642400000), got.UnixMilli())

	got, ok = ParseDotNetDate("prefix Date(0) suffix", managua)
	require.True(t, ok)
	require.Equal(t, int64(0), got.UnixMilli())

	for _, raw := range []string{"garbage", "", "Date()", "Date(abc)"} {
		_, ok := ParseDotNetDate(raw, managua)
		require.False(t, ok, "input %q", raw)
	}
}

func TestCalendarDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 9, 15, 0, 0, managua)

	// Time-of-day on either side never changes the result.
	threeDaysAgo := time.Date(2025, time.March, 7, 23, 59, 0, 0, managua)
	require.Equal(t, 3, CalendarDays(now, threeDaysAgo))

	twoDaysAgo := time.Date(2025, time.March, 8, 0, 1, 0, 0, managua)
	require.Equal(t, 2, CalendarDays(now, twoDaysAgo))

	require.Equal(t, 0, CalendarDays(now, now))
	require.Equal(t, -1, CalendarDays(threeDaysAgo, now.Add(-48*time.Hour)))
}
