// Package tabular converts published-sheet CSV exports into records.
//
// The parser is deliberately naive: rows are split on bare commas with no
// quoting or escaping support, because the upstream exports never quote. An
// embedded comma inside a field shifts every later value in that row. This
// is a documented constraint of the feed format, not a bug to fix here;
// swapping in encoding/csv would silently change how such rows degrade.
package tabular

import (
	"strings"

	"patiodash/internal/domain"
)

// Parse reads header+rows delimited text and returns one record per data
// line, mapping header[i] to the trimmed value at position i. Empty input
// yields an empty slice, never an error.
func Parse(text string) []domain.Record {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Record{}
	}

	lines := strings.Split(text, "\n")
	headers := splitTrim(lines[0])

	records := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitTrim(line)
		rec := make(domain.Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
