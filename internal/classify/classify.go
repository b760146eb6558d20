// Package classify infers the coffee-variety bucket of a weighing-station
// record from its client and location fields.
package classify

import (
	"patiodash/internal/domain"
	"patiodash/internal/textfold"
)

// Classifier holds the configured allow-lists. The business rule is a closed
// set of exact (folded) string matches; names come from configuration so the
// rule can change without a rebuild.
type Classifier struct {
	clients map[string]struct{}
	patios  map[string]struct{}
}

// New folds the configured Robusta client names and patio names into lookup
// sets.
func New(robustaClients, robustaPatios []string) *Classifier {
	c := &Classifier{
		clients: make(map[string]struct{}, len(robustaClients)),
		patios:  make(map[string]struct{}, len(robustaPatios)),
	}
	for _, name := range robustaClients {
		c.clients[textfold.Fold(name)] = struct{}{}
	}
	for _, name := range robustaPatios {
		c.patios[textfold.Fold(name)] = struct{}{}
	}
	return c
}

// Categorize returns Robusta when the record's client is a listed agency or
// its location is a listed patio; everything else is Arabica.
func (c *Classifier) Categorize(r domain.Record) domain.Category {
	if _, ok := c.clients[textfold.Fold(r.Get(domain.FieldCliente))]; ok {
		return domain.CategoryRobusta
	}
	if _, ok := c.patios[textfold.Fold(r.Get(domain.FieldUbicacion))]; ok {
		return domain.CategoryRobusta
	}
	return domain.CategoryArabica
}
