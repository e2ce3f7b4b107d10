// Package filter decides which salary records are kept for the current
// selection of years, seniorities, contract types and company sizes.
package filter

import (
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Set is a membership set of selected values. A nil or empty Set selects
// nothing.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding vals.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is selected.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Criteria is the selection for each filterable field.
type Criteria struct {
	Years        Set[int]
	Seniorities  Set[string]
	Contracts    Set[string]
	CompanySizes Set[string]
}

// Matches reports whether r passes every field of c.
func Matches(r models.Record, c Criteria) bool {
	return c.Years.Has(r.Year) &&
		c.Seniorities.Has(r.Seniority) &&
		c.Contracts.Has(r.Contract) &&
		c.CompanySizes.Has(r.CompanySize)
}

// Apply returns the records that match c, in their original order.
func Apply(records []models.Record, c Criteria) []models.Record {
	var out []models.Record
	for _, r := range records {
		if Matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Predicate returns Matches bound to c.
func (c Criteria) Predicate() func(models.Record) bool {
	return func(r models.Record) bool { return Matches(r, c) }
}
