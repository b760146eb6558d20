package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"patiodash/internal/aggregate"
	"patiodash/internal/classify"
	"patiodash/internal/domain"
	"patiodash/internal/procorder"
	"patiodash/internal/staleness"
	"patiodash/internal/usecase"
)

var managua = time.FixedZone("CST", -6*60*60)

func newTestServer(t *testing.T) (*Server, *usecase.Store) {
	t.Helper()

	builder := usecase.NewSnapshotBuilder(
		classify.New([]string{"El Rama"}, []string{"Patio Waswali"}),
		procorder.New([]string{"Tendido", "Envio", "Almacén"}),
		staleness.New(3, managua),
		managua,
	)
	store := usecase.NewStore()
	return New(store, builder, aggregate.NewFormatter(), managua, nil), store
}

func seedStore(store *usecase.Store) {
	day := time.Date(2025, time.July, 10, 9, 0, 0, 0, managua)
	bascula := usecase.SourceResult{Rows: []domain.Record{
		{
			domain.FieldCliente:   "Exportadora X",
			domain.FieldUbicacion: "Patio Central",
			domain.FieldStatus:    "Pesado",
			domain.FieldSacos:     "100",
			domain.FieldQQsNetos:  "1250",
			domain.FieldFecha:     fmt.Sprintf("/Date(%d)/", day.UnixMilli()),
		},
	}}
	general := usecase.SourceResult{Rows: []domain.Record{
		{domain.FieldPatioRec: "Patio Norte", domain.FieldProceso: "Envio", domain.FieldKilos: "460", domain.FieldQQs: "10"},
		{domain.FieldPatioRec: "Patio Norte", domain.FieldProceso: "Tendido", domain.FieldKilos: "230", domain.FieldQQs: "5"},
	}}
	store.Update(bascula, general, usecase.SourceResult{}, day)
}

func getJSON(t *testing.T, s *Server, path string, out any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestBasculaEndpoint(t *testing.T) {
	t.Parallel()

	s, store := newTestServer(t)
	seedStore(store)

	var resp struct {
		Total struct {
			Camiones int     `json:"camiones"`
			Kilos    float64 `json:"kilos"`
		} `json:"total"`
		TotalDisplay struct {
			Kilos string `json:"kilos"`
			QQs   string `json:"qqs"`
		} `json:"totalDisplay"`
		Sections []struct {
			Category string `json:"category"`
			Location string `json:"location"`
		} `json:"sections"`
	}
	getJSON(t, s, "/api/bascula", &resp)

	require.Equal(t, 1, resp.Total.Camiones)
	require.InDelta(t, 1250*46, resp.Total.Kilos, 1e-9)
	require.Equal(t, "57.500", resp.TotalDisplay.Kilos)
	require.Equal(t, "1.250", resp.TotalDisplay.QQs)
	require.Len(t, resp.Sections, 1)
	require.Equal(t, "Patio Central", resp.Sections[0].Location)
}

func TestBasculaEndpointDateFilter(t *testing.T) {
	t.Parallel()

	s, store := newTestServer(t)
	seedStore(store)

	var resp struct {
		Total struct {
			Camiones int `json:"camiones"`
		} `json:"total"`
	}
	getJSON(t, s, "/api/bascula?from=2025-08-01", &resp)
	require.Zero(t, resp.Total.Camiones)
}

func TestGeneralEndpointOrdersAndFilters(t *testing.T) {
	t.Parallel()

	s, store := newTestServer(t)
	seedStore(store)

	var resp domain.GeneralSummary
	getJSON(t, s, "/api/general", &resp)
	require.Len(t, resp.Patios, 1)
	require.Equal(t, "Tendido", resp.Patios[0].Lines[0].Proceso)
	require.Equal(t, "Envio", resp.Patios[0].Lines[1].Proceso)

	var filtered domain.GeneralSummary
	getJSON(t, s, "/api/general?proceso=Envio", &filtered)
	require.Equal(t, 1, filtered.Total.Records)
}

func TestFiltersEndpoint(t *testing.T) {
	t.Parallel()

	s, store := newTestServer(t)
	seedStore(store)

	var resp domain.FilterOptions
	getJSON(t, s, "/api/filters", &resp)
	require.Equal(t, []string{"Todos", "Envio", "Tendido"}, resp.Procesos)
	require.Equal(t, []string{"Todos", "Patio Norte"}, resp.Patios)
	require.Equal(t, "2025-07-10", resp.DateMax)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	s, store := newTestServer(t)

	var before map[string]any
	getJSON(t, s, "/healthz", &before)
	require.Nil(t, before["basculaRefreshedAt"])

	seedStore(store)

	var after map[string]any
	getJSON(t, s, "/healthz", &after)
	require.NotNil(t, after["generalRefreshedAt"])
}
