package domain

import "time"

// Record is one row from a tabular or JSON source: field name → string value.
// Records are immutable once parsed; callers read fields through Get.
type Record map[string]string

// Get returns the named field or an empty string when it is absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Field names carried by the upstream sheets and the bascula JSON feed.
const (
	FieldProceso     = "Proceso"
	FieldPatioRec    = "PatioRec"
	FieldPatio       = "Patio"
	FieldCantSacos   = "CantSacos"
	FieldKilos       = "Kilos"
	FieldQQs         = "QQs"
	FieldLotes       = "Lotes"
	FieldCliente     = "CLIENTE O AGENCIA"
	FieldUbicacion   = "Ubicacion"
	FieldStatus      = "Status"
	FieldSacos       = "SACOS"
	FieldQQsNetos    = "QQS NETOS"
	FieldFecha       = "Fecha"
	FieldUltimaFecha = "UltimaFechaRecibida"
)

// Sentinel labels for blank grouping keys and the filter bypass value.
const (
	SinUbicacion = "Sin Ubicación"
	SinStatus    = "Sin Status"
	SinPatio     = "Sin Patio"
	FilterAll    = "Todos"
)

// Category is the inferred coffee-variety bucket of a bascula record.
type Category string

const (
	CategoryArabica Category = "Arabigo"
	CategoryRobusta Category = "Robusta"
)

// BasculaAggregate sums one group of weighing-station records.
// Kilos is always derived as QQs * 46, never read from a source field.
type BasculaAggregate struct {
	Trucks int     `json:"camiones"`
	Sacos  float64 `json:"sacos"`
	QQs    float64 `json:"qqs"`
	Kilos  float64 `json:"kilos"`
}

// GeneralAggregate sums one group of general-progress records.
type GeneralAggregate struct {
	Records   int     `json:"registros"`
	CantSacos float64 `json:"cantSacos"`
	Kilos     float64 `json:"kilos"`
	QQs       float64 `json:"qqs"`
	Lotes     float64 `json:"lotes"`
}

// StalenessInfo annotates a patio whose oldest unassigned lot is known.
type StalenessInfo struct {
	LastSeen    time.Time `json:"lastSeen"`
	DaysElapsed int       `json:"daysElapsed"`
	Alert       bool      `json:"alert"`
}

// StatusGroup is one status bucket inside a bascula section.
type StatusGroup struct {
	Status string           `json:"status"`
	Totals BasculaAggregate `json:"totals"`
}

// BasculaSection is one rendered block: a location of the Arabica bucket or
// the single Robusta block.
type BasculaSection struct {
	Category Category      `json:"category"`
	Location string        `json:"location,omitempty"`
	Statuses []StatusGroup `json:"statuses"`
}

// BasculaSummary is the consumer-facing output of the weighing-station path.
type BasculaSummary struct {
	Error    string           `json:"error,omitempty"`
	Total    BasculaAggregate `json:"total"`
	Sections []BasculaSection `json:"sections"`
}

// GeneralLine is one process-stage card inside a patio group.
type GeneralLine struct {
	Proceso   string  `json:"proceso"`
	CantSacos float64 `json:"cantSacos"`
	Kilos     float64 `json:"kilos"`
	QQs       float64 `json:"qqs"`
	Lotes     float64 `json:"lotes"`
}

// PatioGroup is one patio block of the general-progress path. Staleness is
// nil when the last-activity table has no parseable entry for the patio.
type PatioGroup struct {
	Patio     string         `json:"patio"`
	Staleness *StalenessInfo `json:"staleness,omitempty"`
	Lines     []GeneralLine  `json:"lines"`
}

// GeneralSummary is the consumer-facing output of the general-progress path.
type GeneralSummary struct {
	Error  string           `json:"error,omitempty"`
	Total  GeneralAggregate `json:"total"`
	Patios []PatioGroup     `json:"patios"`
}

// FilterOptions feeds the consumer's select inputs: distinct values observed
// in the current general dataset plus the available bascula date range.
type FilterOptions struct {
	Procesos []string `json:"procesos"`
	Patios   []string `json:"patios"`
	DateMin  string   `json:"dateMin,omitempty"`
	DateMax  string   `json:"dateMax,omitempty"`
}
