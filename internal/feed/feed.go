package feed

import (
	"context"
	"fmt"

	"patiodash/internal/domain"
)

// Request carries all parameters required to execute one sheet pull.
type Request struct {
	FeedName string
	URL      string
}

// Strategy fetches and parses one published-sheet export format (CSV
// export, pubhtml table, etc.).
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, req Request) ([]domain.Record, error)
}

// Registry keeps a mapping from strategy names to their implementations.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// Register adds or replaces a strategy implementation.
func (r *Registry) Register(s Strategy) {
	if r.strategies == nil {
		r.strategies = map[string]Strategy{}
	}
	r.strategies[s.Name()] = s
}

// Resolve returns a strategy by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Strategy, error) {
	if s, ok := r.strategies[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("sheet strategy %s is not registered", name)
}
