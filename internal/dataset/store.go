package dataset

import (
	"slices"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Store holds the loaded records. It is never modified after NewStore, so it
// may be shared by concurrent requests without locking.
type Store struct {
	records []models.Record
	domain  filter.Domain
}

// NewStore copies records into a new Store.
func NewStore(records []models.Record) *Store {
	owned := slices.Clone(records)
	return &Store{
		records: owned,
		domain:  filter.DomainOf(owned),
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of every record.
func (s *Store) Records() []models.Record {
	return slices.Clone(s.records)
}

// Domain returns the filter choices observed in the data.
func (s *Store) Domain() filter.Domain {
	return filter.Domain{
		Years:        slices.Clone(s.domain.Years),
		Seniorities:  slices.Clone(s.domain.Seniorities),
		Contracts:    slices.Clone(s.domain.Contracts),
		CompanySizes: slices.Clone(s.domain.CompanySizes),
	}
}

// Select returns the records for which keep reports true, in load order.
func (s *Store) Select(keep func(models.Record) bool) []models.Record {
	var out []models.Record
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
