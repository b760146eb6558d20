package usecase

import (
	"sync"
	"time"

	"patiodash/internal/domain"
)

// SourceResult is the typed outcome of one feed fetch: either rows or the
// error that prevented them. A failed source never aborts the refresh; its
// error is carried into the affected output section instead.
type SourceResult struct {
	Rows []domain.Record
	Err  error
}

// Store is the explicit application state: the last-loaded record sets,
// replaced wholesale on every refresh cycle. Readers get consistent copies
// of the references; records themselves are never mutated after parsing.
type Store struct {
	mu        sync.RWMutex
	bascula   SourceResult
	general   SourceResult
	fechas    SourceResult
	basculaAt time.Time
	generalAt time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Update replaces all three datasets. A section's refresh timestamp only
// advances when its source loaded without error.
func (s *Store) Update(bascula, general, fechas SourceResult, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bascula = bascula
	s.general = general
	s.fechas = fechas
	if bascula.Err == nil {
		s.basculaAt = at
	}
	if general.Err == nil {
		s.generalAt = at
	}
}

// Sources returns the current datasets.
func (s *Store) Sources() (bascula, general, fechas SourceResult) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bascula, s.general, s.fechas
}

// RefreshedAt returns the per-section last successful refresh times.
func (s *Store) RefreshedAt() (basculaAt, generalAt time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.basculaAt, s.generalAt
}
