// Package procorder orders general-progress records by the domain's process
// sequence. The sequence itself ships in configuration because its
// membership has drifted across deployments.
package procorder

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"patiodash/internal/domain"
)

// Sorter compares process-stage labels against a configured sequence.
// Stages absent from the sequence are retained and ordered after all known
// stages, tie-broken by Spanish collation. A Sorter is shared across API
// handlers and the refresh goroutine; collate.Collator mutates internal
// state on every compare, so access to it is serialized.
type Sorter struct {
	index map[string]int
	mu    sync.Mutex
	coll  *collate.Collator
}

// New builds a Sorter over the configured stage sequence.
func New(order []string) *Sorter {
	idx := make(map[string]int, len(order))
	for i, stage := range order {
		idx[stage] = i
	}
	return &Sorter{index: idx, coll: collate.New(language.Spanish)}
}

// Less reports whether stage a orders before stage b.
func (s *Sorter) Less(a, b string) bool {
	ia, aKnown := s.index[a]
	ib, bKnown := s.index[b]
	switch {
	case aKnown && bKnown:
		return ia < ib
	case aKnown:
		return true
	case bKnown:
		return false
	default:
		return s.compare(a, b) < 0
	}
}

func (s *Sorter) compare(a, b string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.CompareString(a, b)
}

// Sort orders rows in place by their Proceso field. The sort is stable so
// same-stage rows keep their source order.
func (s *Sorter) Sort(rows []domain.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		return s.Less(rows[i].Get(domain.FieldProceso), rows[j].Get(domain.FieldProceso))
	})
}
