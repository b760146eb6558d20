package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"patiodash/internal/domain"
)

func newTestClassifier() *Classifier {
	return New([]string{"Nueva Guinea", "El Rama"}, []string{"Patio Waswali"})
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()

	cases := []struct {
		name    string
		cliente string
		ubic    string
		want    domain.Category
	}{
		{"listed client exact", "El Rama", "Patio Central", domain.CategoryRobusta},
		{"listed client case and whitespace", "  eL rAmA  ", "", domain.CategoryRobusta},
		{"other listed client", "nueva guinea", "Patio Norte", domain.CategoryRobusta},
		{"listed patio regardless of client", "Exportadora X", "Patio Waswali", domain.CategoryRobusta},
		{"listed patio case insensitive", "", " PATIO WASWALI ", domain.CategoryRobusta},
		{"unlisted combination", "Exportadora X", "Patio Central", domain.CategoryArabica},
		{"empty fields", "", "", domain.CategoryArabica},
		{"substring is not a match", "El Ramal", "", domain.CategoryArabica},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := domain.Record{
				domain.FieldCliente:   tc.cliente,
				domain.FieldUbicacion: tc.ubic,
			}
			require.Equal(t, tc.want, c.Categorize(rec))
		})
	}
}
